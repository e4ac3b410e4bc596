// Package regress defines the model-family capabilities used by the
// evaluation harness and implements the families the analysis report uses.
package regress

import (
	"github.com/croftproj/goregeval/dataset"
)

// Predictor is a fitted model able to score new rows.
type Predictor interface {
	// Predict returns one predicted target value per row, aligned with the
	// row order of the input.
	Predict(rows *dataset.Dataset) ([]float64, error)
}

// Trainer produces a fitted Predictor from training rows and a target
// column. Implementations must not retain or mutate the training dataset.
type Trainer interface {
	// Name identifies the model family, for report labels.
	Name() string
	// Fit trains on the given rows. The target column must exist and be
	// numeric.
	Fit(train *dataset.Dataset, target string) (Predictor, error)
}

// featureNames resolves the feature list for a trainer: the explicit list
// when given, otherwise every numeric column except the target.
func featureNames(ds *dataset.Dataset, explicit []string, target string) []string {
	if len(explicit) > 0 {
		out := make([]string, len(explicit))
		copy(out, explicit)
		return out
	}
	var out []string
	for _, name := range ds.NumericNames() {
		if name != target {
			out = append(out, name)
		}
	}
	return out
}
