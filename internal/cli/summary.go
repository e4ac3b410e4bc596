package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/croftproj/goregeval/dataset"
)

// SummaryOptions holds flags for the summary command.
type SummaryOptions struct {
	*RootOptions
	Target  string
	Exclude []string
	Matrix  bool
}

// NewSummaryCommand creates the summary command.
func NewSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SummaryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "summary <data.csv>",
		Short: "Describe a dataset's columns",
		Long: `Summary reports per-column statistics: kind, non-missing and missing
counts, and for numeric columns the mean, standard deviation, minimum and
maximum. With --target it also ranks the other numeric columns by absolute
correlation with the target.

Example:
  goregeval summary sales.csv
  goregeval summary sales.csv --target revenue --matrix`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Target, "target", "", "rank numeric columns by correlation with this column")
	cmd.Flags().StringSliceVar(&opts.Exclude, "exclude", nil, "identifier columns to drop while loading")
	cmd.Flags().BoolVar(&opts.Matrix, "matrix", false, "include the full correlation matrix")

	return cmd
}

func runSummary(opts *SummaryOptions, path string, cmd *cobra.Command) error {
	lopts := dataset.DefaultLoadOptions()
	lopts.Exclude = opts.Exclude
	ds, err := dataset.LoadCSV(path, lopts)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load dataset", err)
	}

	sums := dataset.Summarize(ds)
	var corrs []dataset.PairCorr
	if opts.Target != "" {
		corrs, err = dataset.TargetCorrelations(ds, opts.Target)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid target", err)
		}
	}
	var matrix *dataset.CorrMatrix
	if opts.Matrix {
		matrix = dataset.Correlations(ds)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	payload := newSummaryPayload(path, ds, sums, corrs, matrix)
	return f.Success(payload, func(w io.Writer) error {
		renderSummary(w, path, ds, sums, corrs, matrix)
		return nil
	})
}

func renderSummary(w io.Writer, path string, ds *dataset.Dataset, sums []dataset.ColumnSummary, corrs []dataset.PairCorr, matrix *dataset.CorrMatrix) {
	fmt.Fprintf(w, "%s: %d rows, %d columns\n\n", path, ds.Len(), ds.NumColumns())
	fmt.Fprintf(w, "%-16s %-12s %7s %8s %9s %11s %11s %11s %11s\n",
		"Column", "Kind", "Count", "Missing", "Distinct", "Mean", "Std", "Min", "Max")
	for _, s := range sums {
		if s.Kind == dataset.Numeric {
			fmt.Fprintf(w, "%-16s %-12s %7d %8d %9s %11s %11s %11s %11s\n",
				s.Name, s.Kind, s.Count, s.Missing, "-",
				summaryNum(s.Mean), summaryNum(s.Std), summaryNum(s.Min), summaryNum(s.Max))
		} else {
			fmt.Fprintf(w, "%-16s %-12s %7d %8d %9d %11s %11s %11s %11s\n",
				s.Name, s.Kind, s.Count, s.Missing, s.Distinct, "-", "-", "-", "-")
		}
	}

	if len(corrs) > 0 {
		fmt.Fprintf(w, "\nCorrelation with target:\n")
		for _, c := range corrs {
			fmt.Fprintf(w, "  %-16s %8s\n", c.Column, summaryNum(c.R))
		}
	}

	if matrix != nil {
		fmt.Fprintf(w, "\nCorrelation matrix:\n")
		fmt.Fprintf(w, "%-16s", "")
		for _, name := range matrix.Columns {
			fmt.Fprintf(w, " %10s", name)
		}
		fmt.Fprintln(w)
		for i, name := range matrix.Columns {
			fmt.Fprintf(w, "%-16s", name)
			for j := range matrix.Columns {
				fmt.Fprintf(w, " %10s", summaryNum(matrix.Values[i][j]))
			}
			fmt.Fprintln(w)
		}
	}
}

func summaryNum(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

type summaryPayload struct {
	Dataset      string               `json:"dataset"`
	Rows         int                  `json:"rows"`
	Columns      []columnPayload      `json:"columns"`
	Correlations []correlationPayload `json:"correlations,omitempty"`
	Matrix       *matrixPayload       `json:"matrix,omitempty"`
}

type columnPayload struct {
	Name     string        `json:"name"`
	Kind     string        `json:"kind"`
	Count    int           `json:"count"`
	Missing  int           `json:"missing"`
	Distinct int           `json:"distinct,omitempty"`
	Stats    *numericStats `json:"stats,omitempty"`
}

type numericStats struct {
	Mean jsonValue `json:"mean"`
	Std  jsonValue `json:"stddev"`
	Min  jsonValue `json:"min"`
	Max  jsonValue `json:"max"`
}

type correlationPayload struct {
	Column string    `json:"column"`
	R      jsonValue `json:"r"`
}

type matrixPayload struct {
	Columns []string      `json:"columns"`
	Values  [][]jsonValue `json:"values"`
}

func newSummaryPayload(path string, ds *dataset.Dataset, sums []dataset.ColumnSummary, corrs []dataset.PairCorr, matrix *dataset.CorrMatrix) summaryPayload {
	p := summaryPayload{Dataset: path, Rows: ds.Len()}
	for _, s := range sums {
		cp := columnPayload{
			Name:    s.Name,
			Kind:    s.Kind.String(),
			Count:   s.Count,
			Missing: s.Missing,
		}
		if s.Kind == dataset.Numeric {
			cp.Stats = &numericStats{
				Mean: jsonValue(s.Mean),
				Std:  jsonValue(s.Std),
				Min:  jsonValue(s.Min),
				Max:  jsonValue(s.Max),
			}
		} else {
			cp.Distinct = s.Distinct
		}
		p.Columns = append(p.Columns, cp)
	}
	for _, c := range corrs {
		p.Correlations = append(p.Correlations, correlationPayload{Column: c.Column, R: jsonValue(c.R)})
	}
	if matrix != nil {
		mp := &matrixPayload{Columns: matrix.Columns}
		for _, row := range matrix.Values {
			mp.Values = append(mp.Values, jsonValues(row))
		}
		p.Matrix = mp
	}
	return p
}
