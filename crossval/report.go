package crossval

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// DefaultPrecision is the number of decimal places used by String.
const DefaultPrecision = 4

// Report holds cross-validated scores: one row per requested metric, one
// column per fold, plus Mean and StdDev aggregate columns. StdDev is the
// sample standard deviation across folds. Cell values are kept at full
// precision; rounding happens only when rendering.
type Report struct {
	MetricNames []string
	NumFolds    int
	Cells       [][]float64 // Cells[i][j]: metric i scored on fold j+1
	Means       []float64
	StdDevs     []float64
}

func newReport(names []string, scores []map[string]float64) *Report {
	r := &Report{
		MetricNames: append([]string(nil), names...),
		NumFolds:    len(scores),
		Cells:       make([][]float64, len(names)),
		Means:       make([]float64, len(names)),
		StdDevs:     make([]float64, len(names)),
	}
	for i, name := range names {
		row := make([]float64, len(scores))
		for j, s := range scores {
			row[j] = s[name]
		}
		r.Cells[i] = row
		r.Means[i] = stat.Mean(row, nil)
		r.StdDevs[i] = stat.StdDev(row, nil)
	}
	return r
}

// Columns returns the report width: NumFolds fold columns plus Mean and
// StdDev.
func (r *Report) Columns() int { return r.NumFolds + 2 }

func (r *Report) rowIndex(name string) int {
	for i, n := range r.MetricNames {
		if n == name {
			return i
		}
	}
	return -1
}

// Mean returns the cross-fold mean of the named metric.
func (r *Report) Mean(name string) (float64, bool) {
	i := r.rowIndex(name)
	if i < 0 {
		return 0, false
	}
	return r.Means[i], true
}

// StdDev returns the cross-fold sample standard deviation of the named
// metric.
func (r *Report) StdDev(name string) (float64, bool) {
	i := r.rowIndex(name)
	if i < 0 {
		return 0, false
	}
	return r.StdDevs[i], true
}

// Row returns the full report row for the named metric: the per-fold values
// followed by the mean and standard deviation.
func (r *Report) Row(name string) ([]float64, bool) {
	i := r.rowIndex(name)
	if i < 0 {
		return nil, false
	}
	row := make([]float64, 0, r.Columns())
	row = append(row, r.Cells[i]...)
	row = append(row, r.Means[i], r.StdDevs[i])
	return row, true
}

// String renders the report as a fixed-width table at DefaultPrecision
// decimal places. Non-finite cells render as NaN, +Inf or -Inf.
func (r *Report) String() string {
	return r.render(DefaultPrecision)
}

// Render writes the report as a fixed-width table with the given number of
// decimal places.
func (r *Report) Render(w io.Writer, precision int) error {
	_, err := io.WriteString(w, r.render(precision))
	return err
}

func (r *Report) render(precision int) string {
	headers := make([]string, 0, r.Columns()+1)
	headers = append(headers, "Metric")
	for j := 1; j <= r.NumFolds; j++ {
		headers = append(headers, fmt.Sprintf("Fold %d", j))
	}
	headers = append(headers, "Mean", "StdDev")

	rows := make([][]string, len(r.MetricNames))
	for i, name := range r.MetricNames {
		row := make([]string, 0, len(headers))
		row = append(row, name)
		for _, v := range r.Cells[i] {
			row = append(row, strconv.FormatFloat(v, 'f', precision, 64))
		}
		row = append(row,
			strconv.FormatFloat(r.Means[i], 'f', precision, 64),
			strconv.FormatFloat(r.StdDevs[i], 'f', precision, 64))
		rows[i] = row
	}

	widths := make([]int, len(headers))
	for j, h := range headers {
		widths[j] = len(h)
	}
	for _, row := range rows {
		for j, cell := range row {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(row []string) {
		for j, cell := range row {
			if j == 0 {
				fmt.Fprintf(&b, "%-*s", widths[j], cell)
			} else {
				fmt.Fprintf(&b, "  %*s", widths[j], cell)
			}
		}
		b.WriteByte('\n')
	}
	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}

// WriteCSV writes the report as CSV at full precision, one record per
// metric.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, r.Columns()+1)
	header = append(header, "metric")
	for j := 1; j <= r.NumFolds; j++ {
		header = append(header, fmt.Sprintf("fold_%d", j))
	}
	header = append(header, "mean", "stddev")
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, name := range r.MetricNames {
		record := make([]string, 0, len(header))
		record = append(record, name)
		for _, v := range r.Cells[i] {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		record = append(record,
			strconv.FormatFloat(r.Means[i], 'g', -1, 64),
			strconv.FormatFloat(r.StdDevs[i], 'g', -1, 64))
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
