package dataset

import (
	"fmt"
	"math"
)

// QuadraticName returns the column name used for a squared feature.
func QuadraticName(col string) string { return col + "^2" }

// LogName returns the column name used for a log-transformed feature.
func LogName(col string) string { return "log(" + col + ")" }

// WithQuadratic returns a new dataset with a squared copy of each named
// numeric column appended. The source dataset is unchanged.
func (ds *Dataset) WithQuadratic(cols ...string) (*Dataset, error) {
	out := ds
	for _, name := range cols {
		vals, err := out.Floats(name)
		if err != nil {
			return nil, err
		}
		sq := make([]float64, len(vals))
		for i, v := range vals {
			sq[i] = v * v
		}
		out, err = out.With(Column{Name: QuadraticName(name), Kind: Numeric, Floats: sq})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// WithLog returns a new dataset with a natural-log copy of each named
// numeric column appended. Non-positive cells become NaN.
func (ds *Dataset) WithLog(cols ...string) (*Dataset, error) {
	out := ds
	for _, name := range cols {
		vals, err := out.Floats(name)
		if err != nil {
			return nil, err
		}
		logged := make([]float64, len(vals))
		for i, v := range vals {
			if v > 0 {
				logged[i] = math.Log(v)
			} else {
				logged[i] = math.NaN()
			}
		}
		out, err = out.With(Column{Name: LogName(name), Kind: Numeric, Floats: logged})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Transform names a feature-engineering step applied before fitting.
type Transform string

const (
	// TransformNone fits on the columns as loaded.
	TransformNone Transform = "none"
	// TransformQuadratic appends squared copies of the feature columns.
	TransformQuadratic Transform = "quadratic"
	// TransformLog appends natural-log copies of the feature columns.
	TransformLog Transform = "log"
)

// Apply applies the transform to every numeric column except the target and
// returns the expanded dataset.
func (t Transform) Apply(ds *Dataset, target string) (*Dataset, error) {
	var feats []string
	for _, name := range ds.NumericNames() {
		if name != target {
			feats = append(feats, name)
		}
	}
	switch t {
	case TransformNone, "":
		return ds, nil
	case TransformQuadratic:
		return ds.WithQuadratic(feats...)
	case TransformLog:
		return ds.WithLog(feats...)
	default:
		return nil, fmt.Errorf("dataset: unknown transform %q", string(t))
	}
}
