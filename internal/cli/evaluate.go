package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/croftproj/goregeval/crossval"
	"github.com/croftproj/goregeval/dataset"
	"github.com/croftproj/goregeval/metrics"
)

// EvaluateOptions holds flags for the evaluate command.
type EvaluateOptions struct {
	*RootOptions
	Target    string
	Folds     int
	Seed      int64
	Metrics   []string
	Trainer   string
	Features  []string
	Transform string
	Exclude   []string
	Parallel  bool
	Precision int
	CSVPath   string
}

// NewEvaluateCommand creates the evaluate command.
func NewEvaluateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvaluateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "evaluate <data.csv>",
		Short: "Cross-validate a model family on a dataset",
		Long: `Evaluate fits a regression model family with stratified k-fold
cross-validation and reports the requested metrics per fold, with cross-fold
mean and standard deviation columns.

Rows with missing cells are dropped before evaluation.

Example:
  goregeval evaluate sales.csv --target revenue --folds 5 --seed 500
  goregeval evaluate sales.csv --target revenue --transform quadratic --metrics RMSE,R2`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Target, "target", "", "target column name (required)")
	_ = cmd.MarkFlagRequired("target")
	cmd.Flags().IntVar(&opts.Folds, "folds", 10, "number of cross-validation folds")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "fold assignment seed")
	cmd.Flags().StringSliceVar(&opts.Metrics, "metrics", metrics.AllNames(), "metrics to report")
	cmd.Flags().StringVar(&opts.Trainer, "trainer", "linear", "model family (linear|mean)")
	cmd.Flags().StringSliceVar(&opts.Features, "features", nil, "feature columns (default: all numeric except target)")
	cmd.Flags().StringVar(&opts.Transform, "transform", "none", "feature transform (none|quadratic|log)")
	cmd.Flags().StringSliceVar(&opts.Exclude, "exclude", nil, "identifier columns to drop while loading")
	cmd.Flags().BoolVar(&opts.Parallel, "parallel", false, "evaluate folds concurrently")
	cmd.Flags().IntVar(&opts.Precision, "precision", crossval.DefaultPrecision, "decimal places in text output")
	cmd.Flags().StringVar(&opts.CSVPath, "csv", "", "also write the report as CSV to this file")

	return cmd
}

func runEvaluate(opts *EvaluateOptions, path string, cmd *cobra.Command) error {
	ds, err := loadDataset(path, opts.Exclude)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load dataset", err)
	}
	ds, err = dataset.Transform(opts.Transform).Apply(ds, opts.Target)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid transform", err)
	}
	trainer, err := buildTrainer(opts.Trainer, opts.Features)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid trainer", err)
	}

	slog.Info("evaluating",
		"target", opts.Target,
		"trainer", trainer.Name(),
		"folds", opts.Folds,
		"seed", opts.Seed)
	report, err := crossval.Evaluate(ds, opts.Target, trainer, &crossval.Config{
		NumFolds: opts.Folds,
		Seed:     opts.Seed,
		Metrics:  opts.Metrics,
		Parallel: opts.Parallel,
	})
	if err != nil {
		return WrapExitError(exitCodeFor(err), "evaluation failed", err)
	}

	if opts.CSVPath != "" {
		if err := writeReportCSV(report, opts.CSVPath); err != nil {
			return WrapExitError(ExitCommandError, "failed to write CSV report", err)
		}
		slog.Info("report written", "file", opts.CSVPath)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	payload := newReportPayload(path, opts.Target, trainer.Name(), opts.Folds, opts.Seed, report)
	return f.Success(payload, func(w io.Writer) error {
		fmt.Fprintf(w, "%s: %s, %d folds, seed %d\n\n", path, trainer.Name(), opts.Folds, opts.Seed)
		return report.Render(w, opts.Precision)
	})
}

// reportPayload is the JSON shape of one evaluation.
type reportPayload struct {
	Dataset string          `json:"dataset"`
	Target  string          `json:"target"`
	Trainer string          `json:"trainer"`
	Folds   int             `json:"folds"`
	Seed    int64           `json:"seed"`
	Metrics []metricPayload `json:"metrics"`
}

type metricPayload struct {
	Name   string      `json:"name"`
	Folds  []jsonValue `json:"folds"`
	Mean   jsonValue   `json:"mean"`
	StdDev jsonValue   `json:"stddev"`
}

func newReportPayload(path, target, trainer string, folds int, seed int64, r *crossval.Report) reportPayload {
	p := reportPayload{Dataset: path, Target: target, Trainer: trainer, Folds: folds, Seed: seed}
	for i, name := range r.MetricNames {
		p.Metrics = append(p.Metrics, metricPayload{
			Name:   name,
			Folds:  jsonValues(r.Cells[i]),
			Mean:   jsonValue(r.Means[i]),
			StdDev: jsonValue(r.StdDevs[i]),
		})
	}
	return p
}

func writeReportCSV(r *crossval.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
