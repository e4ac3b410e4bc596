package crossval

import "fmt"

// ConfigurationError reports invalid evaluation inputs: a bad fold count,
// an empty dataset, or a missing or non-numeric target column. It is
// returned before any training starts.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "crossval: " + e.Reason
}

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// FoldTrainingError reports a model family failing to fit one fold's
// training subset. The whole evaluation aborts; a report assembled from the
// remaining folds would misrepresent the model.
type FoldTrainingError struct {
	Fold   int    // 1-based fold number, matching report columns
	Family string // trainer name
	Err    error
}

func (e *FoldTrainingError) Error() string {
	return fmt.Sprintf("crossval: %s training failed on fold %d: %v", e.Family, e.Fold, e.Err)
}

func (e *FoldTrainingError) Unwrap() error { return e.Err }
