package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/simulation"
)

// SimulateOptions holds flags for the simulate command
type SimulateOptions struct {
	*RootOptions
	Days        int
	ItemsFile   string
	Strict      bool
	Summary     bool
	MetricsFile string
	Workers     int
}

// NewSimulateCommand creates the simulate command
func NewSimulateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SimulateOptions{RootOptions: rootOpts}
	cfg := rootOpts.Config

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Print the stock for each of the next N days",
		Long: `Print the stock as it stands today and after each nightly update.

Example:
  gildedrose simulate --days 30
  gildedrose simulate --items ./configs/items.json --strict --summary`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Days, "days", "d", cfg.SimulationDays, "number of nightly updates to run")
	cmd.Flags().StringVar(&opts.ItemsFile, "items", cfg.ItemsFile, "JSON stock file (default: built-in stock)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "fail on the first day that breaks an update invariant")
	cmd.Flags().BoolVar(&opts.Summary, "summary", false, "print a per-category summary of the final stock")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus metrics to this file when done")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", cfg.UpdateWorkers, "goroutines per update cycle")

	return cmd
}

func runSimulate(cmd *cobra.Command, opts *SimulateOptions) error {
	items, err := loadItems(opts.ItemsFile)
	if err != nil {
		return WrapExitError(ExitCommandError, ErrMsgLoadItemsFailed, err)
	}

	engine, recorder, err := buildEngine(opts.Config.ClassifierCacheSize, opts.Workers, opts.MetricsFile != "")
	if err != nil {
		return WrapExitError(ExitCommandError, ErrMsgBuildEngineFailed, err)
	}

	ctx := logger.WithRunID(cmd.Context(), logger.GenerateRunID())
	out := cmd.OutOrStdout()

	err = simulation.Run(ctx, engine, items, opts.Days, out, simulation.Options{Strict: opts.Strict})
	if err != nil {
		if isInvariantError(err) {
			return WrapExitError(ExitFailure, ErrMsgInvariantBroken, err)
		}
		return WrapExitError(ExitCommandError, ErrMsgSimulationFailed, err)
	}

	if opts.Summary {
		if err := simulation.Summary(out, items); err != nil {
			return WrapExitError(ExitCommandError, ErrMsgSimulationFailed, err)
		}
	}

	if recorder != nil {
		if err := recorder.WriteTextfile(opts.MetricsFile); err != nil {
			return WrapExitError(ExitCommandError, ErrMsgWriteMetrics, err)
		}
		logger.FromContext(ctx).Info(LogMsgMetricsWritten, "path", opts.MetricsFile)
	}

	return nil
}

func isInvariantError(err error) bool {
	return errors.Is(err, domain.ErrQualityOutOfBounds) ||
		errors.Is(err, domain.ErrLegendaryMutated) ||
		errors.Is(err, domain.ErrItemOrderChanged)
}
