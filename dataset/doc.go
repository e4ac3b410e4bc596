// Package dataset provides tabular data structures and utilities.
//
// This package includes the Dataset type for representing rows of named
// numeric and categorical columns, along with CSV loading, feature
// transforms, and descriptive statistics.
//
// # Loading from CSV
//
// Load a dataset with inferred column kinds:
//
//	ds, err := dataset.LoadCSV("sales.csv", nil)
//
// Customize loading, for example to drop identifier columns:
//
//	opts := dataset.DefaultLoadOptions()
//	opts.Exclude = []string{"StoreID"}
//	ds, err := dataset.LoadCSV("sales.csv", opts)
//
// A column is numeric when every non-missing cell parses as a float;
// otherwise it is categorical. Missing cells ("", "NA", "NaN", "null", "?")
// become NaN in numeric columns and "" in categorical ones.
//
// # Working with columns
//
// Columns are addressed by name, never by position:
//
//	sales, err := ds.Floats("Sales")
//	sub, err := ds.Subset([]int{0, 2, 4})
//	smaller, err := ds.Drop("Notes")
//
// # Feature transforms
//
// Transforms return a new dataset with derived columns appended:
//
//	ds2, err := ds.WithQuadratic("Price")  // appends "Price^2"
//	ds3, err := ds.WithLog("Volume")       // appends "log(Volume)"
//
// # Summaries and correlation
//
// Explore a dataset before modeling:
//
//	for _, s := range dataset.Summarize(ds) {
//	    fmt.Printf("%s (%s): mean=%.2f\n", s.Name, s.Kind, s.Mean)
//	}
//
//	corr := dataset.Correlations(ds)
//	ranked, _ := dataset.TargetCorrelations(ds, "Sales")
package dataset
