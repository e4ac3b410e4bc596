package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/croftproj/goregeval/crossval"
	"github.com/croftproj/goregeval/dataset"
)

// CompareOptions holds flags for the compare command.
type CompareOptions struct {
	*RootOptions
	Precision int
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compare <run.yaml>",
		Short: "Evaluate several model variants over shared folds",
		Long: `Compare evaluates every variant in a YAML run file against the same
dataset and seed. The fold assignment depends only on the target values, the
fold count and the seed, so all variants are scored on identical folds and
their results are directly comparable.

Run file:
  dataset: sales.csv
  target: revenue
  folds: 5
  seed: 500
  metrics: [RMSE, R2]
  variants:
    - trainer: linear
    - trainer: linear
      transform: quadratic
    - trainer: mean`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Precision, "precision", crossval.DefaultPrecision, "decimal places in text output")

	return cmd
}

type variantResult struct {
	Name    string          `json:"name"`
	Trainer string          `json:"trainer"`
	Metrics []metricPayload `json:"metrics"`

	report *crossval.Report
}

type comparePayload struct {
	Dataset  string          `json:"dataset"`
	Target   string          `json:"target"`
	Folds    int             `json:"folds"`
	Seed     int64           `json:"seed"`
	Variants []variantResult `json:"variants"`
}

func runCompare(opts *CompareOptions, path string, cmd *cobra.Command) error {
	rf, err := LoadRunFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid run file", err)
	}
	base, err := loadDataset(rf.Dataset, rf.Exclude)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load dataset", err)
	}

	payload := comparePayload{
		Dataset: rf.Dataset,
		Target:  rf.Target,
		Folds:   rf.Folds,
		Seed:    rf.Seed,
	}
	for _, v := range rf.Variants {
		ds, err := dataset.Transform(v.Transform).Apply(base, rf.Target)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("variant %s", v.Name), err)
		}
		trainer, err := buildTrainer(v.Trainer, v.Features)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("variant %s", v.Name), err)
		}

		slog.Info("evaluating variant", "name", v.Name, "trainer", trainer.Name())
		report, err := crossval.Evaluate(ds, rf.Target, trainer, &crossval.Config{
			NumFolds: rf.Folds,
			Seed:     rf.Seed,
			Metrics:  rf.Metrics,
			Parallel: rf.Parallel,
		})
		if err != nil {
			return WrapExitError(exitCodeFor(err), fmt.Sprintf("variant %s failed", v.Name), err)
		}

		vr := variantResult{Name: v.Name, Trainer: trainer.Name(), report: report}
		for i, name := range report.MetricNames {
			vr.Metrics = append(vr.Metrics, metricPayload{
				Name:   name,
				Folds:  jsonValues(report.Cells[i]),
				Mean:   jsonValue(report.Means[i]),
				StdDev: jsonValue(report.StdDevs[i]),
			})
		}
		payload.Variants = append(payload.Variants, vr)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return f.Success(payload, func(w io.Writer) error {
		renderCompare(w, rf, payload.Variants, opts.Precision)
		return nil
	})
}

// renderCompare writes one row per variant with each metric's cross-fold
// mean, standard deviation in parentheses.
func renderCompare(w io.Writer, rf *RunFile, variants []variantResult, precision int) {
	fmt.Fprintf(w, "%s: %d folds, seed %d, mean (stddev) per metric\n\n", rf.Dataset, rf.Folds, rf.Seed)

	headers := append([]string{"Variant"}, rf.Metrics...)
	rows := make([][]string, len(variants))
	for i, vr := range variants {
		row := []string{vr.Name}
		for _, name := range rf.Metrics {
			mean, _ := vr.report.Mean(name)
			std, _ := vr.report.StdDev(name)
			row = append(row, fmt.Sprintf("%s (%s)",
				strconv.FormatFloat(mean, 'f', precision, 64),
				strconv.FormatFloat(std, 'f', precision, 64)))
		}
		rows[i] = row
	}

	widths := make([]int, len(headers))
	for j, h := range headers {
		widths[j] = len(h)
	}
	for _, row := range rows {
		for j, cell := range row {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}
	writeRow := func(row []string) {
		for j, cell := range row {
			if j == 0 {
				fmt.Fprintf(w, "%-*s", widths[j], cell)
			} else {
				fmt.Fprintf(w, "  %*s", widths[j], cell)
			}
		}
		fmt.Fprintln(w)
	}
	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
}
