package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GildedRose_Go/internal/logger"
)

// NightlyWorker runs a job once a day at midnight in the configured location
type NightlyWorker struct {
	job      Job
	location *time.Location
	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewNightlyWorker creates a NightlyWorker. A nil location means UTC.
func NewNightlyWorker(job Job, location *time.Location) *NightlyWorker {
	if location == nil {
		location = time.UTC
	}
	return &NightlyWorker{
		job:      job,
		location: location,
		shutdown: make(chan struct{}),
	}
}

// Start schedules the first run
func (w *NightlyWorker) Start() {
	w.scheduleNext()
}

// scheduleNext calculates the time until the next midnight and schedules the run
func (w *NightlyWorker) scheduleNext() {
	duration := timeUntilNextRun(time.Now(), w.location)
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	select {
	case <-w.shutdown:
		w.mu.Unlock()
		return
	default:
	}
	if w.timer != nil {
		w.timer.Stop()
	}

	// Two-stage scheduling to prevent "tight loop" rescheduling caused by early triggers
	if duration > StandbyThreshold {
		// Stage 1: Long-range (Standby). Wake up shortly before midnight.
		waitDuration := duration - StandbyLeadTime
		w.timer = time.AfterFunc(waitDuration, w.scheduleNext)
		w.mu.Unlock()

		log.Info(LogMsgNightlyStandby, "next_check_at", time.Now().Add(waitDuration))
		return
	}

	// Stage 2: Final approach. Schedule the actual run.
	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Jitter protection: if the timer fired early, reschedule for the
		// remaining time. More than 23h remaining means we are on time or late.
		rem := timeUntilNextRun(time.Now(), w.location)
		if rem > JitterTolerance && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.execute()
		w.scheduleNext()
	})
	w.mu.Unlock()

	log.Info(LogMsgNightlyScheduled, "next_run_at", time.Now().Add(duration))
}

// execute performs the nightly run in a tracked goroutine
func (w *NightlyWorker) execute() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ctx := logger.WithRunID(context.Background(), logger.GenerateRunID())
		_ = w.run(ctx)
	}()
}

func (w *NightlyWorker) run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgNightlyStarting)

	if err := w.job.Process(ctx); err != nil {
		log.Error(LogMsgNightlyFailed, "error", err)
		return fmt.Errorf("nightly run failed: %w", err)
	}

	log.Info(LogMsgNightlyCompleted)
	return nil
}

// TriggerNow runs the job immediately and synchronously, outside the schedule
func (w *NightlyWorker) TriggerNow(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgNightlyManualTrigger)
	w.wg.Add(1)
	defer w.wg.Done()
	return w.run(ctx)
}

// Shutdown cancels the pending timer and waits for in-flight runs to complete
func (w *NightlyWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgNightlyShuttingDown)

	w.mu.Lock()
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgNightlyShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgNightlyShutdownTimeout)
		return ctx.Err()
	}
}

// timeUntilNextRun returns the duration from now until the next midnight in loc
func timeUntilNextRun(now time.Time, loc *time.Location) time.Duration {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(local)
}
