// Package metrics computes prediction-quality measures for regression.
package metrics

import (
	"errors"
	"fmt"
	"math"
)

// Canonical metric names accepted by the standard engine.
const (
	MAE   = "MAE"   // mean absolute error
	RMSE  = "RMSE"  // root mean squared error
	MAPE  = "MAPE"  // mean absolute percentage error
	RMSPE = "RMSPE" // root mean squared percentage error
	RAE   = "RAE"   // relative absolute error, percent
	RRSE  = "RRSE"  // root relative squared error, percent
	R2    = "R2"    // coefficient of determination
)

// AllNames returns the canonical metric names in their conventional report
// order.
func AllNames() []string {
	return []string{MAE, RMSE, MAPE, RMSPE, RAE, RRSE, R2}
}

// UnknownMetricError reports a metric name the engine does not implement.
type UnknownMetricError struct {
	Name string
}

func (e *UnknownMetricError) Error() string {
	return fmt.Sprintf("metrics: unknown metric %q", e.Name)
}

// Func computes one metric from aligned actual and predicted vectors.
// Implementations must not substitute defaults for undefined results;
// division by zero yields the IEEE NaN/Inf it produces.
type Func func(actual, predicted []float64) float64

// Engine maps metric names to their computations.
type Engine struct {
	funcs map[string]Func
	order []string
}

// NewEngine returns an engine with the seven standard metrics registered.
func NewEngine() *Engine {
	e := &Engine{funcs: make(map[string]Func)}
	e.Register(MAE, MeanAbsoluteError)
	e.Register(RMSE, RootMeanSquaredError)
	e.Register(MAPE, MeanAbsolutePercentageError)
	e.Register(RMSPE, RootMeanSquaredPercentageError)
	e.Register(RAE, RelativeAbsoluteError)
	e.Register(RRSE, RootRelativeSquaredError)
	e.Register(R2, RSquared)
	return e
}

// Register adds or replaces a named metric.
func (e *Engine) Register(name string, fn Func) {
	if _, ok := e.funcs[name]; !ok {
		e.order = append(e.order, name)
	}
	e.funcs[name] = fn
}

// Has reports whether the engine implements the named metric.
func (e *Engine) Has(name string) bool {
	_, ok := e.funcs[name]
	return ok
}

// Names returns the registered metric names in registration order.
func (e *Engine) Names() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Compute evaluates the requested metrics over aligned vectors. The result
// maps each requested name to its value; non-finite values are returned
// as-is. An unrecognized name fails with UnknownMetricError before any
// computation.
func (e *Engine) Compute(actual, predicted []float64, names []string) (map[string]float64, error) {
	if len(names) == 0 {
		return nil, errors.New("metrics: no metric names requested")
	}
	for _, name := range names {
		if !e.Has(name) {
			return nil, &UnknownMetricError{Name: name}
		}
	}
	if len(actual) == 0 {
		return nil, errors.New("metrics: empty vectors")
	}
	if len(actual) != len(predicted) {
		return nil, fmt.Errorf("metrics: %d actual vs %d predicted values", len(actual), len(predicted))
	}
	out := make(map[string]float64, len(names))
	for _, name := range names {
		out[name] = e.funcs[name](actual, predicted)
	}
	return out, nil
}

// MeanAbsoluteError returns the mean of |actual-predicted|.
func MeanAbsoluteError(actual, predicted []float64) float64 {
	s := 0.0
	for i := range actual {
		s += math.Abs(actual[i] - predicted[i])
	}
	return s / float64(len(actual))
}

// RootMeanSquaredError returns the square root of the mean squared residual.
func RootMeanSquaredError(actual, predicted []float64) float64 {
	s := 0.0
	for i := range actual {
		d := actual[i] - predicted[i]
		s += d * d
	}
	return math.Sqrt(s / float64(len(actual)))
}

// MeanAbsolutePercentageError returns the mean of |(actual-predicted)/actual|
// scaled to percent. Zero actual values yield non-finite results.
func MeanAbsolutePercentageError(actual, predicted []float64) float64 {
	s := 0.0
	for i := range actual {
		s += math.Abs((actual[i] - predicted[i]) / actual[i])
	}
	return 100 * s / float64(len(actual))
}

// RootMeanSquaredPercentageError returns the root mean of squared relative
// residuals, scaled to percent.
func RootMeanSquaredPercentageError(actual, predicted []float64) float64 {
	s := 0.0
	for i := range actual {
		d := (actual[i] - predicted[i]) / actual[i]
		s += d * d
	}
	return 100 * math.Sqrt(s/float64(len(actual)))
}

// RelativeAbsoluteError returns the total absolute residual relative to the
// total absolute deviation from the actual mean, in percent. A constant
// actual vector yields a non-finite result.
func RelativeAbsoluteError(actual, predicted []float64) float64 {
	mean := meanOf(actual)
	num, den := 0.0, 0.0
	for i := range actual {
		num += math.Abs(actual[i] - predicted[i])
		den += math.Abs(actual[i] - mean)
	}
	return 100 * num / den
}

// RootRelativeSquaredError returns the root of the total squared residual
// relative to the total squared deviation from the actual mean, in percent.
func RootRelativeSquaredError(actual, predicted []float64) float64 {
	mean := meanOf(actual)
	num, den := 0.0, 0.0
	for i := range actual {
		d := actual[i] - predicted[i]
		num += d * d
		v := actual[i] - mean
		den += v * v
	}
	return 100 * math.Sqrt(num/den)
}

// RSquared returns the coefficient of determination, 1 - SSres/SStot.
// A constant actual vector yields a non-finite result rather than a
// substituted default.
func RSquared(actual, predicted []float64) float64 {
	mean := meanOf(actual)
	ssRes, ssTot := 0.0, 0.0
	for i := range actual {
		r := actual[i] - predicted[i]
		ssRes += r * r
		d := actual[i] - mean
		ssTot += d * d
	}
	return 1 - ssRes/ssTot
}

func meanOf(vals []float64) float64 {
	s := 0.0
	for _, v := range vals {
		s += v
	}
	return s / float64(len(vals))
}
