package regress

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/croftproj/goregeval/dataset"
)

// Mean is a baseline family predicting the training-target mean for every
// row. Comparisons use it as the floor any real model has to beat.
type Mean struct{}

// NewMean returns the baseline trainer.
func NewMean() *Mean { return &Mean{} }

// Name returns the family name.
func (m *Mean) Name() string { return "mean" }

// Fit computes the training-target mean.
func (m *Mean) Fit(train *dataset.Dataset, target string) (Predictor, error) {
	y, err := train.Floats(target)
	if err != nil {
		return nil, err
	}
	if len(y) == 0 {
		return nil, errors.New("regress: empty training set")
	}
	for r, v := range y {
		if !isFinite(v) {
			return nil, fmt.Errorf("regress: non-finite value in target %q at row %d", target, r)
		}
	}
	return &MeanModel{value: stat.Mean(y, nil)}, nil
}

// MeanModel is a fitted constant predictor.
type MeanModel struct {
	value float64
}

// Predict returns the training mean for every row.
func (m *MeanModel) Predict(rows *dataset.Dataset) ([]float64, error) {
	out := make([]float64, rows.Len())
	for i := range out {
		out[i] = m.value
	}
	return out, nil
}

// Value returns the constant prediction.
func (m *MeanModel) Value() float64 { return m.value }
