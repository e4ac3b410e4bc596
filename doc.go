// Package goregeval provides cross-validated evaluation of regression models
// on tabular data.
//
// GoRegEval loads CSV datasets, fits regression model families and scores
// them with stratified k-fold cross-validation, reporting standard error
// metrics per fold with cross-fold aggregates.
//
// # Features
//
//   - Column-major tabular datasets with numeric and categorical columns
//   - CSV loading with missing-value handling and column kind inference
//   - Ordinary least squares and mean-baseline model families
//   - Quadratic and logarithmic feature transforms
//   - Stratified, seeded k-fold cross-validation with optional parallelism
//   - Seven error metrics: MAE, RMSE, MAPE, RMSPE, RAE, RRSE and R2
//   - Descriptive column summaries and Pearson correlation analysis
//
// # Quick Start
//
// Cross-validate a linear model:
//
//	ds, _ := dataset.LoadCSV("sales.csv", nil)
//	report, _ := crossval.Evaluate(ds, "revenue", regress.NewLinear(), &crossval.Config{
//		NumFolds: 5,
//		Seed:     500,
//		Metrics:  metrics.AllNames(),
//	})
//	fmt.Println(report)
//
// Fit a single model directly:
//
//	model, _ := regress.NewLinear().Fit(ds, "revenue")
//	predicted, _ := model.Predict(ds)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - dataset: Tabular data structures, CSV loading, transforms and summaries
//   - regress: Regression model families and the trainer capability
//   - metrics: Prediction-quality measures for regression
//   - crossval: The stratified k-fold cross-validation harness
//
// The goregeval command under cmd/goregeval exposes summary, evaluate and
// compare subcommands over these packages.
package goregeval
