package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GildedRose_Go/internal/worker"
)

// Scheduler enqueues jobs onto a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		workerPool: pool,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Schedule registers a job to run every interval, starting one interval from
// now. A non-positive interval is ignored.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	if interval <= 0 {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// Blocks while the pool queue is full; the ticker drops
				// ticks that arrive meanwhile.
				if err := s.workerPool.EnqueueContext(s.ctx, job); err != nil {
					return
				}
			case <-s.ctx.Done():
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. Jobs already enqueued are left to the pool.
// Stop may be called more than once.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}
