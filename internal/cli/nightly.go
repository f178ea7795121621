package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/GildedRose_Go/internal/bootstrap"
	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/scheduler"
	"github.com/osse101/GildedRose_Go/internal/simulation"
	"github.com/osse101/GildedRose_Go/internal/worker"
)

// NightlyOptions holds flags for the nightly command
type NightlyOptions struct {
	*RootOptions
	Interval    time.Duration
	Timezone    string
	ItemsFile   string
	MetricsFile string
	Workers     int
	RunNow      bool
}

// NewNightlyCommand creates the nightly command
func NewNightlyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NightlyOptions{RootOptions: rootOpts}
	cfg := rootOpts.Config

	cmd := &cobra.Command{
		Use:   "nightly",
		Short: "Keep the stock in memory and update it every night",
		Long: `Keep the stock in memory and run the update once per night until
interrupted. The final stock is printed on shutdown.

With --interval 0 the update runs at midnight in --timezone; any positive
interval runs it on a fixed ticker instead.

Example:
  gildedrose nightly --timezone Europe/London --metrics-file /var/lib/node_exporter/gildedrose.prom
  gildedrose nightly --interval 1s`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNightly(cmd, opts)
		},
	}

	cmd.Flags().DurationVar(&opts.Interval, "interval", cfg.NightlyInterval, "fixed update interval (0 = local midnight)")
	cmd.Flags().StringVar(&opts.Timezone, "timezone", cfg.NightlyTimezone, "IANA timezone whose midnight triggers the update")
	cmd.Flags().StringVar(&opts.ItemsFile, "items", cfg.ItemsFile, "JSON stock file (default: built-in stock)")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", cfg.MetricsFile, "rewrite Prometheus metrics to this file after every update")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", cfg.UpdateWorkers, "goroutines per update cycle")
	cmd.Flags().BoolVar(&opts.RunNow, "run-now", false, "run one update immediately at startup")

	return cmd
}

func runNightly(cmd *cobra.Command, opts *NightlyOptions) error {
	nightlyCfg := *opts.Config
	nightlyCfg.NightlyTimezone = opts.Timezone
	location, err := nightlyCfg.Location()
	if err != nil {
		return WrapExitError(ExitCommandError, ErrMsgInvalidTimezone, err)
	}

	items, err := loadItems(opts.ItemsFile)
	if err != nil {
		return WrapExitError(ExitCommandError, ErrMsgLoadItemsFailed, err)
	}

	engine, recorder, err := buildEngine(opts.Config.ClassifierCacheSize, opts.Workers, opts.MetricsFile != "")
	if err != nil {
		return WrapExitError(ExitCommandError, ErrMsgBuildEngineFailed, err)
	}

	var afterCycle scheduler.AfterCycleFunc
	if recorder != nil {
		afterCycle = func(ctx context.Context, _ int, _ []domain.Item) error {
			return recorder.WriteTextfile(opts.MetricsFile)
		}
	}
	job := scheduler.NewNightlyJob(engine.NewShelf(items), afterCycle)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var components bootstrap.ShutdownComponents
	if opts.Interval > 0 {
		pool := worker.NewPool(1, 1)
		pool.Start()
		sched := scheduler.New(pool)
		sched.Schedule(opts.Interval, job)
		components.Pool = pool
		components.Scheduler = sched
		slog.Info(LogMsgNightlyInterval, "interval", opts.Interval, "items", len(items))
	} else {
		nightly := worker.NewNightlyWorker(job, location)
		nightly.Start()
		components.NightlyWorker = nightly
		slog.Info(LogMsgNightlyMidnight, "timezone", location.String(), "items", len(items))
	}

	if opts.RunNow {
		if err := runNow(ctx, components, job); err != nil {
			shutdown(components)
			return WrapExitError(ExitCommandError, ErrMsgTriggerFailed, err)
		}
	}

	<-ctx.Done()
	slog.Info(LogMsgShutdownRequested)
	shutdown(components)

	return simulation.WriteDay(cmd.OutOrStdout(), job.Day(), job.Items())
}

func runNow(ctx context.Context, components bootstrap.ShutdownComponents, job *scheduler.NightlyJob) error {
	ctx = logger.WithRunID(ctx, logger.GenerateRunID())
	if components.NightlyWorker != nil {
		return components.NightlyWorker.TriggerNow(ctx)
	}
	return job.Process(ctx)
}

func shutdown(components bootstrap.ShutdownComponents) {
	ctx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, components)
}
