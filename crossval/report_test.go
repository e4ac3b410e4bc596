package crossval

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *Report {
	return &Report{
		MetricNames: []string{"MAE", "R2"},
		NumFolds:    3,
		Cells: [][]float64{
			{1.25, 1.5, 1.75},
			{0.5, 0.25, 0.75},
		},
		Means:   []float64{1.5, 0.5},
		StdDevs: []float64{0.25, 0.25},
	}
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestReportString(t *testing.T) {
	g := newGoldie(t)
	g.Assert(t, "report_text", []byte(sampleReport().String()))
}

func TestReportWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().WriteCSV(&buf))

	g := newGoldie(t)
	g.Assert(t, "report_csv", buf.Bytes())
}

func TestReportRenderPrecision(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().Render(&buf, 2))
	out := buf.String()

	assert.Contains(t, out, "1.25")
	assert.Contains(t, out, "0.25")
	assert.NotContains(t, out, "1.2500")
}

func TestReportRendersNonFinite(t *testing.T) {
	r := &Report{
		MetricNames: []string{"MAPE"},
		NumFolds:    2,
		Cells:       [][]float64{{math.NaN(), math.Inf(1)}},
		Means:       []float64{math.NaN()},
		StdDevs:     []float64{math.NaN()},
	}
	out := r.String()
	assert.Contains(t, out, "NaN")
	assert.Contains(t, out, "+Inf")

	var buf bytes.Buffer
	require.NoError(t, r.WriteCSV(&buf))
	assert.Contains(t, buf.String(), "NaN")
}

func TestReportAccessors(t *testing.T) {
	r := sampleReport()

	assert.Equal(t, 5, r.Columns())

	mean, ok := r.Mean("MAE")
	require.True(t, ok)
	assert.Equal(t, 1.5, mean)

	std, ok := r.StdDev("R2")
	require.True(t, ok)
	assert.Equal(t, 0.25, std)

	row, ok := r.Row("MAE")
	require.True(t, ok)
	assert.Equal(t, []float64{1.25, 1.5, 1.75, 1.5, 0.25}, row)

	_, ok = r.Mean("bogus")
	assert.False(t, ok)
	_, ok = r.StdDev("bogus")
	assert.False(t, ok)
	_, ok = r.Row("bogus")
	assert.False(t, ok)
}

func TestReportHeaderNumbering(t *testing.T) {
	out := sampleReport().String()
	assert.Contains(t, out, "Fold 1")
	assert.Contains(t, out, "Fold 3")
	assert.False(t, strings.Contains(out, "Fold 0"))
}
