package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/GildedRose_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a plain function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
}

// NewPool creates a new worker pool. Fewer than one worker is treated as one.
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Workers returns the number of workers the pool runs
func (p *Pool) Workers() int {
	return p.workers
}

// Start starts the long-running workers that drain Enqueue
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker is the worker loop
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			ctx := logger.WithRunID(context.Background(), logger.GenerateRunID())
			if err := job.Process(ctx); err != nil {
				// Log error but don't crash worker
				logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
			}
		case <-p.quit:
			return
		}
	}
}

// Enqueue adds a job to the queue, blocking while the queue is full
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// EnqueueContext adds a job to the queue, giving up when ctx is done first
func (p *Pool) EnqueueContext(ctx context.Context, job Job) error {
	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop stops the workers and waits for them to finish
func (p *Pool) Stop() {
	close(p.quit)
	p.wg.Wait()
}

type indexedJob struct {
	index int
	job   Job
}

// Run processes a batch of jobs on up to Workers goroutines and waits for
// every dispatched job to return. It is independent of Start/Stop. Jobs not
// yet dispatched when ctx is done are skipped and report ctx.Err().
func (p *Pool) Run(ctx context.Context, jobs []Job) error {
	if len(jobs) == 0 {
		return nil
	}

	errs := make([]error, len(jobs))
	queue := make(chan indexedJob)

	var wg sync.WaitGroup
	for i := 0; i < min(p.workers, len(jobs)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ij := range queue {
				errs[ij.index] = ij.job.Process(ctx)
			}
		}()
	}

dispatch:
	for i, job := range jobs {
		select {
		case queue <- indexedJob{index: i, job: job}:
		case <-ctx.Done():
			for j := i; j < len(jobs); j++ {
				errs[j] = ctx.Err()
			}
			break dispatch
		}
	}
	close(queue)
	wg.Wait()

	return errors.Join(errs...)
}
