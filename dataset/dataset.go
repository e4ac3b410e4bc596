// Package dataset provides the tabular data structures the evaluation harness operates on.
package dataset

import (
	"errors"
	"fmt"
	"math"
)

// Kind describes how a column's cells are interpreted.
type Kind int

const (
	// Numeric columns hold float64 cells; missing cells are NaN.
	Numeric Kind = iota
	// Categorical columns hold string labels; missing cells are "".
	Categorical
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Column is a single named column. Exactly one of Floats or Labels is
// populated, selected by Kind.
type Column struct {
	Name   string
	Kind   Kind
	Floats []float64
	Labels []string
}

// Len returns the number of cells in the column.
func (c *Column) Len() int {
	if c.Kind == Numeric {
		return len(c.Floats)
	}
	return len(c.Labels)
}

func (c *Column) clone() Column {
	out := Column{Name: c.Name, Kind: c.Kind}
	if c.Kind == Numeric {
		out.Floats = make([]float64, len(c.Floats))
		copy(out.Floats, c.Floats)
	} else {
		out.Labels = make([]string, len(c.Labels))
		copy(out.Labels, c.Labels)
	}
	return out
}

// Dataset is an ordered sequence of rows over a fixed set of named columns.
// Storage is column-major; every column has the same length.
type Dataset struct {
	cols  []Column
	index map[string]int
}

// New creates a dataset from columns. All columns must have distinct,
// non-empty names and equal lengths.
func New(cols ...Column) (*Dataset, error) {
	if len(cols) == 0 {
		return nil, errors.New("dataset: no columns")
	}
	ds := &Dataset{
		cols:  make([]Column, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	n := cols[0].Len()
	for _, c := range cols {
		if c.Name == "" {
			return nil, errors.New("dataset: column with empty name")
		}
		if _, dup := ds.index[c.Name]; dup {
			return nil, fmt.Errorf("dataset: duplicate column %q", c.Name)
		}
		if c.Len() != n {
			return nil, fmt.Errorf("dataset: column %q has %d rows, want %d", c.Name, c.Len(), n)
		}
		ds.index[c.Name] = len(ds.cols)
		ds.cols = append(ds.cols, c)
	}
	return ds, nil
}

// Len returns the number of rows.
func (ds *Dataset) Len() int {
	if len(ds.cols) == 0 {
		return 0
	}
	return ds.cols[0].Len()
}

// NumColumns returns the number of columns.
func (ds *Dataset) NumColumns() int { return len(ds.cols) }

// Names returns the column names in order.
func (ds *Dataset) Names() []string {
	names := make([]string, len(ds.cols))
	for i, c := range ds.cols {
		names[i] = c.Name
	}
	return names
}

// Has reports whether a column with the given name exists.
func (ds *Dataset) Has(name string) bool {
	_, ok := ds.index[name]
	return ok
}

// Column returns the named column. The returned column shares storage with
// the dataset.
func (ds *Dataset) Column(name string) (*Column, error) {
	i, ok := ds.index[name]
	if !ok {
		return nil, fmt.Errorf("dataset: no column %q", name)
	}
	return &ds.cols[i], nil
}

// Floats returns the cell values of a numeric column. The slice shares
// storage with the dataset.
func (ds *Dataset) Floats(name string) ([]float64, error) {
	c, err := ds.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind != Numeric {
		return nil, fmt.Errorf("dataset: column %q is %s, want numeric", name, c.Kind)
	}
	return c.Floats, nil
}

// NumericNames returns the names of all numeric columns in order.
func (ds *Dataset) NumericNames() []string {
	var names []string
	for _, c := range ds.cols {
		if c.Kind == Numeric {
			names = append(names, c.Name)
		}
	}
	return names
}

// Subset returns a new dataset containing the given rows, in the given
// order. Row indices may repeat.
func (ds *Dataset) Subset(rows []int) (*Dataset, error) {
	n := ds.Len()
	for _, r := range rows {
		if r < 0 || r >= n {
			return nil, fmt.Errorf("dataset: row %d out of range [0,%d)", r, n)
		}
	}
	out := &Dataset{
		cols:  make([]Column, len(ds.cols)),
		index: make(map[string]int, len(ds.cols)),
	}
	for i, c := range ds.cols {
		nc := Column{Name: c.Name, Kind: c.Kind}
		if c.Kind == Numeric {
			nc.Floats = make([]float64, len(rows))
			for j, r := range rows {
				nc.Floats[j] = c.Floats[r]
			}
		} else {
			nc.Labels = make([]string, len(rows))
			for j, r := range rows {
				nc.Labels[j] = c.Labels[r]
			}
		}
		out.cols[i] = nc
		out.index[c.Name] = i
	}
	return out, nil
}

// With returns a new dataset with the column appended. The original dataset
// is unchanged.
func (ds *Dataset) With(c Column) (*Dataset, error) {
	if c.Len() != ds.Len() {
		return nil, fmt.Errorf("dataset: column %q has %d rows, want %d", c.Name, c.Len(), ds.Len())
	}
	cols := make([]Column, 0, len(ds.cols)+1)
	for _, old := range ds.cols {
		cols = append(cols, old.clone())
	}
	cols = append(cols, c.clone())
	return New(cols...)
}

// Drop returns a new dataset without the named columns. Dropping an unknown
// column or every column is an error.
func (ds *Dataset) Drop(names ...string) (*Dataset, error) {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		if !ds.Has(name) {
			return nil, fmt.Errorf("dataset: no column %q", name)
		}
		drop[name] = true
	}
	var kept []Column
	for _, c := range ds.cols {
		if !drop[c.Name] {
			kept = append(kept, c.clone())
		}
	}
	if len(kept) == 0 {
		return nil, errors.New("dataset: dropping all columns")
	}
	return New(kept...)
}

// Copy creates a deep copy of the dataset.
func (ds *Dataset) Copy() *Dataset {
	cols := make([]Column, len(ds.cols))
	for i, c := range ds.cols {
		cols[i] = c.clone()
	}
	out, _ := New(cols...)
	return out
}

// CompleteRows returns the indices of rows with no missing cell in any
// column, in ascending order.
func (ds *Dataset) CompleteRows() []int {
	var rows []int
	for r := 0; r < ds.Len(); r++ {
		complete := true
		for _, c := range ds.cols {
			if c.Kind == Numeric {
				if IsMissing(c.Floats[r]) {
					complete = false
				}
			} else if c.Labels[r] == "" {
				complete = false
			}
			if !complete {
				break
			}
		}
		if complete {
			rows = append(rows, r)
		}
	}
	return rows
}

// DropMissing returns a new dataset keeping only the complete rows.
func (ds *Dataset) DropMissing() *Dataset {
	out, _ := ds.Subset(ds.CompleteRows())
	return out
}

// IsMissing reports whether a numeric cell is missing.
func IsMissing(v float64) bool { return math.IsNaN(v) }
