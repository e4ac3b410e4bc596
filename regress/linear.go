package regress

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/croftproj/goregeval/dataset"
)

// Linear fits ordinary least squares regression. The normal equations are
// never formed directly; the design matrix is solved by gonum's QR-based
// least squares, so a rank-deficient design surfaces as a fit error.
type Linear struct {
	// Features lists the columns to regress on. Empty means every numeric
	// column except the target.
	Features []string
	// Intercept includes a constant term. NewLinear enables it.
	Intercept bool
}

// NewLinear returns a least-squares trainer with an intercept term.
func NewLinear() *Linear {
	return &Linear{Intercept: true}
}

// Name returns the family name.
func (l *Linear) Name() string { return "linear" }

// Fit solves the least-squares problem over the training rows.
func (l *Linear) Fit(train *dataset.Dataset, target string) (Predictor, error) {
	y, err := train.Floats(target)
	if err != nil {
		return nil, err
	}
	feats := featureNames(train, l.Features, target)
	if len(feats) == 0 {
		return nil, errors.New("regress: no feature columns")
	}

	n := train.Len()
	p := len(feats)
	unknowns := p
	if l.Intercept {
		unknowns++
	}
	if n < unknowns {
		return nil, fmt.Errorf("regress: %d rows cannot determine %d coefficients", n, unknowns)
	}

	cols := make([][]float64, p)
	for i, name := range feats {
		cols[i], err = train.Floats(name)
		if err != nil {
			return nil, err
		}
	}

	design := mat.NewDense(n, unknowns, nil)
	for r := 0; r < n; r++ {
		c := 0
		if l.Intercept {
			design.Set(r, 0, 1)
			c = 1
		}
		for i := range cols {
			v := cols[i][r]
			if !isFinite(v) {
				return nil, fmt.Errorf("regress: non-finite value in feature %q at row %d", feats[i], r)
			}
			design.Set(r, c+i, v)
		}
	}
	rhs := mat.NewVecDense(n, nil)
	for r := 0; r < n; r++ {
		if !isFinite(y[r]) {
			return nil, fmt.Errorf("regress: non-finite value in target %q at row %d", target, r)
		}
		rhs.SetVec(r, y[r])
	}

	var beta mat.VecDense
	if err := beta.SolveVec(design, rhs); err != nil {
		return nil, fmt.Errorf("regress: singular design matrix: %w", err)
	}

	m := &LinearModel{
		target:   target,
		features: feats,
		coeffs:   make([]float64, p),
	}
	offset := 0
	if l.Intercept {
		m.intercept = beta.AtVec(0)
		offset = 1
	}
	for i := 0; i < p; i++ {
		m.coeffs[i] = beta.AtVec(offset + i)
	}
	return m, nil
}

// LinearModel is a fitted least-squares regression.
type LinearModel struct {
	target    string
	features  []string
	intercept float64
	coeffs    []float64
}

// Predict returns the linear combination of the feature columns for every
// row. Missing feature cells propagate NaN into the prediction.
func (m *LinearModel) Predict(rows *dataset.Dataset) ([]float64, error) {
	cols := make([][]float64, len(m.features))
	var err error
	for i, name := range m.features {
		cols[i], err = rows.Floats(name)
		if err != nil {
			return nil, err
		}
	}
	out := make([]float64, rows.Len())
	for r := range out {
		v := m.intercept
		for i := range cols {
			v += m.coeffs[i] * cols[i][r]
		}
		out[r] = v
	}
	return out, nil
}

// Intercept returns the constant term (zero when fitted without one).
func (m *LinearModel) Intercept() float64 { return m.intercept }

// Coefficients returns the fitted coefficients aligned with Features.
func (m *LinearModel) Coefficients() []float64 {
	out := make([]float64, len(m.coeffs))
	copy(out, m.coeffs)
	return out
}

// Features returns the feature column names in coefficient order.
func (m *LinearModel) Features() []string {
	out := make([]string, len(m.features))
	copy(out, m.features)
	return out
}

// String renders the fitted equation, e.g.
// "Sales = 2.9041*TV + 0.1875*Radio + 4.6251".
func (m *LinearModel) String() string {
	var b strings.Builder
	b.WriteString(m.target)
	b.WriteString(" =")
	for i, name := range m.features {
		if i > 0 {
			b.WriteString(" +")
		}
		fmt.Fprintf(&b, " %.4f*%s", m.coeffs[i], name)
	}
	fmt.Fprintf(&b, " + %.4f", m.intercept)
	return b.String()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
