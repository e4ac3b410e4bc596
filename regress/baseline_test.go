package regress

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/croftproj/goregeval/dataset"
)

func TestMeanFit(t *testing.T) {
	ds := makeDataset(t, []string{"x", "y"},
		[]float64{1, 2, 3, 4, 5, 6},
		[]float64{1, 2, 3, 4, 5, 6})

	model, err := NewMean().Fit(ds, "y")
	require.NoError(t, err)
	mm, ok := model.(*MeanModel)
	require.True(t, ok)
	assert.InDelta(t, 3.5, mm.Value(), 1e-12)
}

func TestMeanPredict(t *testing.T) {
	train := makeDataset(t, []string{"y"}, []float64{2, 4, 6})
	model, err := NewMean().Fit(train, "y")
	require.NoError(t, err)

	rows := makeDataset(t, []string{"y"}, []float64{0, 0, 0, 0})
	predicted, err := model.Predict(rows)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 4, 4}, predicted)
}

func TestMeanFitErrors(t *testing.T) {
	t.Run("missing target", func(t *testing.T) {
		ds := makeDataset(t, []string{"y"}, []float64{1, 2})
		_, err := NewMean().Fit(ds, "z")
		require.Error(t, err)
	})

	t.Run("non-finite target cell", func(t *testing.T) {
		ds := makeDataset(t, []string{"y"}, []float64{1, math.NaN(), 3})
		_, err := NewMean().Fit(ds, "y")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-finite")
	})

	t.Run("categorical target", func(t *testing.T) {
		ds, err := dataset.New(dataset.Column{
			Name:   "label",
			Kind:   dataset.Categorical,
			Labels: []string{"a", "b"},
		})
		require.NoError(t, err)
		_, err = NewMean().Fit(ds, "label")
		require.Error(t, err)
	})
}

func TestMeanName(t *testing.T) {
	assert.Equal(t, "mean", NewMean().Name())
}
