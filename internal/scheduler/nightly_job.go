package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// AfterCycleFunc observes the stock after each cycle
type AfterCycleFunc func(ctx context.Context, day int, items []domain.Item) error

// NightlyJob advances a shelf by one day each time it is processed. It is
// safe to process from several goroutines; cycles never overlap.
type NightlyJob struct {
	mu         sync.Mutex
	shelf      *inventory.Shelf
	day        int
	afterCycle AfterCycleFunc
}

// NewNightlyJob creates a job over shelf. afterCycle may be nil.
func NewNightlyJob(shelf *inventory.Shelf, afterCycle AfterCycleFunc) *NightlyJob {
	return &NightlyJob{shelf: shelf, afterCycle: afterCycle}
}

// Process runs one cycle. A context that is already done skips the cycle.
func (j *NightlyJob) Process(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.shelf.AdvanceOneDay()
	j.day++

	items := j.shelf.Items()
	logger.FromContext(ctx).Info(LogMsgCycleCompleted, "day", j.day, "items", len(items))

	if j.afterCycle != nil {
		if err := j.afterCycle(ctx, j.day, items); err != nil {
			logger.FromContext(ctx).Warn(LogMsgAfterCycleFailed, "day", j.day, "error", err)
			return fmt.Errorf(ErrFmtAfterCycle, j.day, err)
		}
	}
	return nil
}

// Day returns how many cycles have run
func (j *NightlyJob) Day() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.day
}

// Items returns a copy of the current stock
func (j *NightlyJob) Items() []domain.Item {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.shelf.Items()
}
