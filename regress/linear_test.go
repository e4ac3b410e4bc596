package regress

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/croftproj/goregeval/dataset"
)

func makeDataset(t *testing.T, names []string, cols ...[]float64) *dataset.Dataset {
	t.Helper()
	dcols := make([]dataset.Column, len(names))
	for i, name := range names {
		dcols[i] = dataset.Column{Name: name, Kind: dataset.Numeric, Floats: cols[i]}
	}
	ds, err := dataset.New(dcols...)
	require.NoError(t, err)
	return ds
}

func TestLinearRecoversLine(t *testing.T) {
	x := make([]float64, 10)
	y := make([]float64, 10)
	for i := range x {
		x[i] = float64(i)
		y[i] = 3 + 2*x[i]
	}
	ds := makeDataset(t, []string{"x", "y"}, x, y)

	model, err := NewLinear().Fit(ds, "y")
	require.NoError(t, err)
	lm, ok := model.(*LinearModel)
	require.True(t, ok)

	assert.InDelta(t, 3, lm.Intercept(), 1e-8)
	require.Len(t, lm.Coefficients(), 1)
	assert.InDelta(t, 2, lm.Coefficients()[0], 1e-8)
	assert.Equal(t, []string{"x"}, lm.Features())
}

func TestLinearRecoversTwoFeatures(t *testing.T) {
	a := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []float64{5, 3, 8, 1, 9, 2, 7, 4, 6, 0}
	y := make([]float64, len(a))
	for i := range y {
		y[i] = 1 + 2*a[i] - 0.5*b[i]
	}
	ds := makeDataset(t, []string{"a", "b", "y"}, a, b, y)

	model, err := NewLinear().Fit(ds, "y")
	require.NoError(t, err)
	lm := model.(*LinearModel)

	assert.InDelta(t, 1, lm.Intercept(), 1e-8)
	require.Len(t, lm.Coefficients(), 2)
	assert.InDelta(t, 2, lm.Coefficients()[0], 1e-8)
	assert.InDelta(t, -0.5, lm.Coefficients()[1], 1e-8)
}

func TestLinearExplicitFeatures(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	junk := []float64{9, 1, 7, 3, 5, 2}
	y := make([]float64, len(x))
	for i := range y {
		y[i] = 5 + 4*x[i]
	}
	ds := makeDataset(t, []string{"x", "junk", "y"}, x, junk, y)

	trainer := NewLinear()
	trainer.Features = []string{"x"}
	model, err := trainer.Fit(ds, "y")
	require.NoError(t, err)
	lm := model.(*LinearModel)

	assert.Equal(t, []string{"x"}, lm.Features())
	assert.InDelta(t, 5, lm.Intercept(), 1e-8)
	assert.InDelta(t, 4, lm.Coefficients()[0], 1e-8)
}

func TestLinearWithoutIntercept(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}
	ds := makeDataset(t, []string{"x", "y"}, x, y)

	trainer := &Linear{Intercept: false}
	model, err := trainer.Fit(ds, "y")
	require.NoError(t, err)
	lm := model.(*LinearModel)

	assert.Equal(t, 0.0, lm.Intercept())
	assert.InDelta(t, 2, lm.Coefficients()[0], 1e-8)
}

func TestLinearPredict(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	y := make([]float64, len(x))
	for i := range y {
		y[i] = 3 + 2*x[i]
	}
	train := makeDataset(t, []string{"x", "y"}, x, y)
	model, err := NewLinear().Fit(train, "y")
	require.NoError(t, err)

	rows := makeDataset(t, []string{"x", "y"},
		[]float64{10, 20, math.NaN()},
		[]float64{0, 0, 0})
	predicted, err := model.Predict(rows)
	require.NoError(t, err)
	require.Len(t, predicted, 3)
	assert.InDelta(t, 23, predicted[0], 1e-8)
	assert.InDelta(t, 43, predicted[1], 1e-8)
	assert.True(t, math.IsNaN(predicted[2]))
}

func TestLinearFitErrors(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	y := []float64{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}

	t.Run("duplicated feature column is singular", func(t *testing.T) {
		ds := makeDataset(t, []string{"x", "x2", "y"}, x, x, y)
		_, err := NewLinear().Fit(ds, "y")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "singular")
	})

	t.Run("too few rows", func(t *testing.T) {
		ds := makeDataset(t, []string{"a", "b", "y"},
			[]float64{1, 2}, []float64{3, 4}, []float64{5, 6})
		_, err := NewLinear().Fit(ds, "y")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot determine")
	})

	t.Run("no feature columns", func(t *testing.T) {
		ds := makeDataset(t, []string{"y"}, y)
		_, err := NewLinear().Fit(ds, "y")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no feature columns")
	})

	t.Run("non-finite feature cell", func(t *testing.T) {
		bad := append([]float64(nil), x...)
		bad[4] = math.NaN()
		ds := makeDataset(t, []string{"x", "y"}, bad, y)
		_, err := NewLinear().Fit(ds, "y")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "feature \"x\"")
	})

	t.Run("non-finite target cell", func(t *testing.T) {
		bad := append([]float64(nil), y...)
		bad[2] = math.Inf(1)
		ds := makeDataset(t, []string{"x", "y"}, x, bad)
		_, err := NewLinear().Fit(ds, "y")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "target \"y\"")
	})

	t.Run("missing target column", func(t *testing.T) {
		ds := makeDataset(t, []string{"x", "y"}, x, y)
		_, err := NewLinear().Fit(ds, "z")
		require.Error(t, err)
	})
}

func TestLinearString(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{3, 5, 7, 9, 11}
	ds := makeDataset(t, []string{"x", "y"}, x, y)

	model, err := NewLinear().Fit(ds, "y")
	require.NoError(t, err)
	lm := model.(*LinearModel)

	assert.Equal(t, "y = 2.0000*x + 3.0000", lm.String())
}

func TestLinearName(t *testing.T) {
	assert.Equal(t, "linear", NewLinear().Name())
}
