package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/GildedRose_Go/internal/scheduler"
	"github.com/osse101/GildedRose_Go/internal/worker"
)

// ShutdownComponents holds the nightly runner parts that need graceful
// shutdown. Any of them may be nil.
type ShutdownComponents struct {
	NightlyWorker *worker.NightlyWorker
	Scheduler     *scheduler.Scheduler
	Pool          *worker.Pool
}

// GracefulShutdown stops the runner in order:
// 1. Timers and tickers (no new cycles are started)
// 2. Worker pool (waits for an in-flight cycle)
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if components.NightlyWorker != nil {
		if err := components.NightlyWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgNightlyShutdownErr, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.Pool != nil {
		components.Pool.Stop()
	}

	slog.Info(LogMsgShutdownComplete)
}
