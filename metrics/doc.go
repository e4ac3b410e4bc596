// Package metrics computes prediction-quality measures for regression.
//
// The Engine maps metric names to computations over aligned actual and
// predicted vectors. The standard engine implements seven measures: MAE,
// RMSE, MAPE, RMSPE, RAE, RRSE, and R2.
//
// # Basic Usage
//
// Compute a selection of metrics:
//
//	eng := metrics.NewEngine()
//	vals, err := eng.Compute(actual, predicted, []string{metrics.RMSE, metrics.R2})
//	fmt.Printf("RMSE=%.4f R2=%.4f\n", vals[metrics.RMSE], vals[metrics.R2])
//
// Individual metric functions are also exported:
//
//	rmse := metrics.RootMeanSquaredError(actual, predicted)
//
// # Undefined values
//
// Degenerate inputs (zero actuals for the percentage metrics, constant
// actuals for the relative metrics and R2) produce NaN or infinities.
// These propagate to the caller unchanged; masking them would hide model
// or data problems the evaluation exists to expose.
//
// # Custom metrics
//
// Additional measures can be registered under new names:
//
//	eng.Register("Bias", func(actual, predicted []float64) float64 {
//	    s := 0.0
//	    for i := range actual {
//	        s += predicted[i] - actual[i]
//	    }
//	    return s / float64(len(actual))
//	})
package metrics
