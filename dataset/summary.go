package dataset

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnSummary captures per-column descriptive statistics.
type ColumnSummary struct {
	Name     string
	Kind     Kind
	Count    int // non-missing cells
	Missing  int
	Distinct int // categorical only
	// Numeric statistics over non-missing cells.
	Mean float64
	Std  float64
	Min  float64
	Max  float64
}

// Summarize computes a summary for every column, in column order.
func Summarize(ds *Dataset) []ColumnSummary {
	out := make([]ColumnSummary, 0, ds.NumColumns())
	for _, name := range ds.Names() {
		c, _ := ds.Column(name)
		s := ColumnSummary{Name: c.Name, Kind: c.Kind}
		if c.Kind == Numeric {
			present := presentValues(c.Floats)
			s.Count = len(present)
			s.Missing = len(c.Floats) - len(present)
			if len(present) > 0 {
				s.Mean = stat.Mean(present, nil)
				s.Min = floats.Min(present)
				s.Max = floats.Max(present)
			} else {
				s.Mean, s.Min, s.Max = math.NaN(), math.NaN(), math.NaN()
			}
			if len(present) > 1 {
				s.Std = stat.StdDev(present, nil)
			} else {
				s.Std = math.NaN()
			}
		} else {
			distinct := make(map[string]bool)
			for _, v := range c.Labels {
				if v == "" {
					s.Missing++
					continue
				}
				s.Count++
				distinct[v] = true
			}
			s.Distinct = len(distinct)
		}
		out = append(out, s)
	}
	return out
}

// CorrMatrix is a symmetric Pearson correlation matrix over numeric columns.
type CorrMatrix struct {
	Columns []string
	Values  [][]float64 // Values[i][j] is corr(Columns[i], Columns[j])
}

// At returns the correlation between two columns by name.
func (m *CorrMatrix) At(a, b string) (float64, bool) {
	ai, bi := -1, -1
	for i, name := range m.Columns {
		if name == a {
			ai = i
		}
		if name == b {
			bi = i
		}
	}
	if ai < 0 || bi < 0 {
		return 0, false
	}
	return m.Values[ai][bi], true
}

// Correlations computes the Pearson correlation matrix across all numeric
// columns, using pairwise-complete rows. A pair with fewer than two complete
// rows, or with zero variance, yields NaN.
func Correlations(ds *Dataset) *CorrMatrix {
	names := ds.NumericNames()
	m := &CorrMatrix{
		Columns: names,
		Values:  make([][]float64, len(names)),
	}
	cols := make([][]float64, len(names))
	for i, name := range names {
		cols[i], _ = ds.Floats(name)
		m.Values[i] = make([]float64, len(names))
	}
	for i := range names {
		m.Values[i][i] = 1
		for j := i + 1; j < len(names); j++ {
			r := pairCorrelation(cols[i], cols[j])
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}

// pairCorrelation computes Pearson correlation over rows where both cells
// are present.
func pairCorrelation(x, y []float64) float64 {
	var xs, ys []float64
	for i := range x {
		if IsMissing(x[i]) || IsMissing(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}

// PairCorr is a named correlation with a target column.
type PairCorr struct {
	Column string
	R      float64
}

// TargetCorrelations returns the correlation of every other numeric column
// with the target, sorted by descending absolute value. NaN correlations
// sort last.
func TargetCorrelations(ds *Dataset, target string) ([]PairCorr, error) {
	tv, err := ds.Floats(target)
	if err != nil {
		return nil, err
	}
	var out []PairCorr
	for _, name := range ds.NumericNames() {
		if name == target {
			continue
		}
		v, _ := ds.Floats(name)
		out = append(out, PairCorr{Column: name, R: pairCorrelation(tv, v)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := math.Abs(out[i].R), math.Abs(out[j].R)
		if math.IsNaN(rj) {
			return !math.IsNaN(ri)
		}
		if math.IsNaN(ri) {
			return false
		}
		return ri > rj
	})
	return out, nil
}

func presentValues(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !IsMissing(v) {
			out = append(out, v)
		}
	}
	return out
}
