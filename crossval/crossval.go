// Package crossval implements stratified k-fold cross-validation for
// regression model families.
package crossval

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/croftproj/goregeval/dataset"
	"github.com/croftproj/goregeval/metrics"
	"github.com/croftproj/goregeval/regress"
)

// MetricEngine scores aligned actual and predicted vectors. metrics.Engine
// implements it; an evaluation may supply its own.
type MetricEngine interface {
	// Has reports whether the engine implements the named metric.
	Has(name string) bool
	// Compute evaluates the named metrics over aligned vectors.
	Compute(actual, predicted []float64, names []string) (map[string]float64, error)
}

// Config controls an evaluation run.
type Config struct {
	// NumFolds is the number of folds. Must be at least 2 and no larger
	// than the number of rows.
	NumFolds int

	// Seed drives the fold assignment. The assignment depends only on the
	// target values, NumFolds and Seed, so two runs over datasets sharing
	// a target column place every row in the same fold.
	Seed int64

	// Metrics names the metrics to report, in report row order.
	Metrics []string

	// Parallel evaluates folds concurrently. The report is identical to a
	// sequential run's.
	Parallel bool

	// Engine scores held-out predictions. Nil selects the standard engine.
	Engine MetricEngine
}

// DefaultConfig returns a ten-fold configuration reporting every standard
// metric.
func DefaultConfig() *Config {
	return &Config{
		NumFolds: 10,
		Seed:     1,
		Metrics:  metrics.AllNames(),
	}
}

// Evaluate scores a model family by k-fold cross-validation. Rows are dealt
// into folds stratified on the target column; for each fold the trainer is
// fitted on the remaining rows, the fitted model predicts the held-out rows,
// and the requested metrics score those predictions. The report carries
// every per-fold value plus Mean and StdDev columns.
//
// A nil cfg uses DefaultConfig. Invalid inputs fail with ConfigurationError
// and unrecognized metric names with metrics.UnknownMetricError, both before
// any training starts. A fold that cannot be fitted aborts the run with
// FoldTrainingError; no partial report is returned.
func Evaluate(ds *dataset.Dataset, target string, trainer regress.Trainer, cfg *Config) (*Report, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	engine := cfg.Engine
	if engine == nil {
		engine = metrics.NewEngine()
	}
	if err := validate(ds, target, trainer, cfg, engine); err != nil {
		return nil, err
	}

	y, err := ds.Floats(target)
	if err != nil {
		return nil, err
	}
	folds := assignFolds(y, cfg.NumFolds, cfg.Seed)

	scores := make([]map[string]float64, cfg.NumFolds)
	if cfg.Parallel {
		if err := runParallel(ds, target, trainer, engine, cfg.Metrics, folds, scores); err != nil {
			return nil, err
		}
	} else {
		for i := range folds {
			s, err := runFold(ds, target, trainer, engine, cfg.Metrics, folds, i)
			if err != nil {
				return nil, err
			}
			scores[i] = s
		}
	}
	return newReport(cfg.Metrics, scores), nil
}

func validate(ds *dataset.Dataset, target string, trainer regress.Trainer, cfg *Config, engine MetricEngine) error {
	if ds == nil || ds.Len() == 0 {
		return configErrorf("empty dataset")
	}
	if trainer == nil {
		return configErrorf("nil trainer")
	}
	if !ds.Has(target) {
		return configErrorf("target column %q not found", target)
	}
	y, err := ds.Floats(target)
	if err != nil {
		return configErrorf("target column %q is not numeric", target)
	}
	missing := 0
	for _, v := range y {
		if dataset.IsMissing(v) {
			missing++
		}
	}
	if missing > 0 {
		return configErrorf("target column %q has %d missing values", target, missing)
	}
	if cfg.NumFolds < 2 {
		return configErrorf("%d folds, need at least 2", cfg.NumFolds)
	}
	if cfg.NumFolds > ds.Len() {
		return configErrorf("%d folds exceed %d rows", cfg.NumFolds, ds.Len())
	}
	if len(cfg.Metrics) == 0 {
		return configErrorf("no metrics requested")
	}
	for _, name := range cfg.Metrics {
		if !engine.Has(name) {
			return &metrics.UnknownMetricError{Name: name}
		}
	}
	return nil
}

// runFold fits the trainer on every row outside fold i, predicts the rows
// inside it, and scores the predictions.
func runFold(ds *dataset.Dataset, target string, trainer regress.Trainer, engine MetricEngine, names []string, folds [][]int, i int) (map[string]float64, error) {
	train, err := ds.Subset(trainRows(folds, i, ds.Len()))
	if err != nil {
		return nil, err
	}
	test, err := ds.Subset(folds[i])
	if err != nil {
		return nil, err
	}

	model, err := trainer.Fit(train, target)
	if err != nil {
		return nil, &FoldTrainingError{Fold: i + 1, Family: trainer.Name(), Err: err}
	}
	predicted, err := model.Predict(test)
	if err != nil {
		return nil, fmt.Errorf("crossval: prediction failed on fold %d: %w", i+1, err)
	}
	actual, err := test.Floats(target)
	if err != nil {
		return nil, err
	}
	if len(predicted) != len(actual) {
		return nil, fmt.Errorf("crossval: fold %d: %d predictions for %d held-out rows", i+1, len(predicted), len(actual))
	}

	scores, err := engine.Compute(actual, predicted, names)
	if err != nil {
		return nil, fmt.Errorf("crossval: scoring fold %d: %w", i+1, err)
	}
	return scores, nil
}

func runParallel(ds *dataset.Dataset, target string, trainer regress.Trainer, engine MetricEngine, names []string, folds [][]int, scores []map[string]float64) error {
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	errs := make([]error, len(folds))
	for i := range folds {
		i := i
		g.Go(func() error {
			scores[i], errs[i] = runFold(ds, target, trainer, engine, names, folds, i)
			return errs[i]
		})
	}
	if err := g.Wait(); err != nil {
		// Report the lowest-numbered failure regardless of goroutine
		// scheduling.
		for _, e := range errs {
			if e != nil {
				return e
			}
		}
	}
	return nil
}
