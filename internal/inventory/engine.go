package inventory

import (
	"context"
	"time"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/metrics"
	"github.com/osse101/GildedRose_Go/internal/worker"
)

// Categorizer resolves an item name to its category
type Categorizer interface {
	Classify(name string) domain.Category
}

type classifyFunc func(name string) domain.Category

func (f classifyFunc) Classify(name string) domain.Category { return f(name) }

// Engine runs the nightly update over a batch of items
type Engine struct {
	classifier Categorizer
	recorder   metrics.Recorder
	workers    int
}

// Option configures an Engine
type Option func(*Engine)

// WithClassifier replaces the uncached default classifier
func WithClassifier(c Categorizer) Option {
	return func(e *Engine) {
		if c != nil {
			e.classifier = c
		}
	}
}

// WithRecorder sets where per-item and per-cycle observations go
func WithRecorder(r metrics.Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.recorder = r
		}
	}
}

// WithWorkers spreads each cycle over n goroutines. Items never depend on
// each other, so the result is identical to a sequential cycle.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// NewEngine creates an engine. With no options it classifies every item on
// every cycle, records nothing, and runs sequentially.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		classifier: classifyFunc(Classify),
		recorder:   metrics.NopRecorder{},
		workers:    DefaultWorkers,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AdvanceOneDay ages every item in place by one day. Order and length of
// items are preserved.
func (e *Engine) AdvanceOneDay(items []domain.Item) {
	start := time.Now()
	runChunks(e.workers, len(items), func(lo, hi int) {
		e.advanceRange(items[lo:hi])
	})
	e.recorder.CycleCompleted(len(items), time.Since(start))
}

// AdvanceOneDayContext is AdvanceOneDay with a cancellation check before the
// cycle starts. Once started, a cycle always runs to completion for every item.
func (e *Engine) AdvanceOneDayContext(ctx context.Context, items []domain.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.AdvanceOneDay(items)
	return nil
}

// Advance runs days cycles, stopping early only between cycles
func (e *Engine) Advance(ctx context.Context, items []domain.Item, days int) error {
	for day := 0; day < days; day++ {
		if err := e.AdvanceOneDayContext(ctx, items); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) advanceRange(items []domain.Item) {
	for i := range items {
		category := e.classifier.Classify(items[i].Name)
		RuleFor(category)(&items[i])
		e.recorder.ItemUpdated(category)
	}
}

// runChunks calls fn over contiguous [lo, hi) ranges that together cover n
// positions exactly once. Small batches, or a single worker, run inline.
func runChunks(workers, n int, fn func(lo, hi int)) {
	if workers <= 1 || n <= minChunkSize {
		fn(0, n)
		return
	}

	// Chunk jobs never fail and a background context never ends, so Run
	// always returns nil once every chunk is done.
	_ = worker.NewPool(workers, 0).Run(context.Background(), chunkJobs(workers, n, fn))
}

// chunkJobs splits n positions into at most workers non-overlapping ranges of
// at least minChunkSize, so each job touches only its own elements
func chunkJobs(workers, n int, fn func(lo, hi int)) []worker.Job {
	size := max((n+workers-1)/workers, minChunkSize)

	jobs := make([]worker.Job, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		lo := lo // per-iteration copy; module targets go1.21 loop semantics
		hi := min(lo+size, n)
		jobs = append(jobs, worker.JobFunc(func(context.Context) error {
			fn(lo, hi)
			return nil
		}))
	}
	return jobs
}
