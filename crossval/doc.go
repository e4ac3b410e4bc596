// Package crossval implements stratified k-fold cross-validation for
// regression model families.
//
// An evaluation deals the dataset's rows into k folds, then fits the model
// family k times, each time on all rows outside one fold, and scores the
// fitted model's predictions on the held-out fold. The result is a Report
// with one row per metric and one column per fold, plus cross-fold Mean and
// StdDev columns.
//
// # Basic Usage
//
//	ds, err := dataset.LoadCSV("sales.csv", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	report, err := crossval.Evaluate(ds, "revenue", regress.NewLinear(), &crossval.Config{
//		NumFolds: 5,
//		Seed:     500,
//		Metrics:  []string{metrics.RMSE, metrics.R2},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(report)
//
// # Fold Assignment
//
// Rows are shuffled with a generator seeded by Config.Seed, stably sorted by
// target value, and dealt round-robin into folds. Each fold therefore spans
// the full range of the target, fold sizes differ by at most one, and every
// row appears in exactly one fold. The assignment is a pure function of the
// target values, the fold count and the seed: repeating a run reproduces the
// report exactly, and model variants evaluated over the same target share
// fold boundaries, so their scores are directly comparable.
//
// # Failure Modes
//
// Invalid inputs (empty dataset, missing or non-numeric target, bad fold
// count) fail with ConfigurationError and unknown metric names with
// metrics.UnknownMetricError, both before any model is trained. If a model
// family cannot be fitted on some fold, the evaluation aborts with
// FoldTrainingError carrying the 1-based fold number; partial reports are
// never returned. Metric values that are undefined for a fold (for example
// MAPE with zero actuals) propagate as NaN or infinities into the report
// and its aggregate columns.
package crossval
