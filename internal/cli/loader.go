package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/croftproj/goregeval/crossval"
	"github.com/croftproj/goregeval/dataset"
	"github.com/croftproj/goregeval/metrics"
	"github.com/croftproj/goregeval/regress"
)

// loadDataset reads a CSV file, drops identifier columns, and removes rows
// with missing cells so every model family sees complete data.
func loadDataset(path string, exclude []string) (*dataset.Dataset, error) {
	opts := dataset.DefaultLoadOptions()
	opts.Exclude = exclude
	ds, err := dataset.LoadCSV(path, opts)
	if err != nil {
		return nil, err
	}
	complete := ds.DropMissing()
	if dropped := ds.Len() - complete.Len(); dropped > 0 {
		slog.Info("dropped incomplete rows", "file", path, "rows", dropped)
	}
	slog.Debug("dataset loaded", "file", path, "rows", complete.Len(), "columns", complete.NumColumns())
	return complete, nil
}

// buildTrainer constructs a model family by name. An empty features list
// means all numeric columns except the target.
func buildTrainer(name string, features []string) (regress.Trainer, error) {
	switch name {
	case "linear", "":
		t := regress.NewLinear()
		t.Features = features
		return t, nil
	case "mean":
		return regress.NewMean(), nil
	default:
		return nil, fmt.Errorf("unknown trainer %q (want linear or mean)", name)
	}
}

// exitCodeFor maps evaluation errors to exit codes: invalid inputs are
// command errors, training failures are evaluation failures.
func exitCodeFor(err error) int {
	var cfgErr *crossval.ConfigurationError
	var unkErr *metrics.UnknownMetricError
	if errors.As(err, &cfgErr) || errors.As(err, &unkErr) {
		return ExitCommandError
	}
	return ExitFailure
}
