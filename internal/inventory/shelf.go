package inventory

import (
	"time"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/metrics"
)

type shelfEntry struct {
	item     domain.Item
	category domain.Category
	rule     Rule
}

// Shelf owns a copy of a stock list with each item's category resolved once
// up front, so repeated cycles never re-match names.
type Shelf struct {
	entries  []shelfEntry
	recorder metrics.Recorder
	workers  int
}

// NewShelf copies items onto a shelf, classifying each with the engine's
// classifier. The shelf shares the engine's recorder and worker count.
func (e *Engine) NewShelf(items []domain.Item) *Shelf {
	entries := make([]shelfEntry, len(items))
	for i, item := range items {
		category := e.classifier.Classify(item.Name)
		entries[i] = shelfEntry{item: item, category: category, rule: RuleFor(category)}
	}
	return &Shelf{entries: entries, recorder: e.recorder, workers: e.workers}
}

// AdvanceOneDay ages every item on the shelf by one day
func (s *Shelf) AdvanceOneDay() {
	start := time.Now()
	runChunks(s.workers, len(s.entries), s.advanceRange)
	s.recorder.CycleCompleted(len(s.entries), time.Since(start))
}

func (s *Shelf) advanceRange(lo, hi int) {
	for i := lo; i < hi; i++ {
		entry := &s.entries[i]
		entry.rule(&entry.item)
		s.recorder.ItemUpdated(entry.category)
	}
}

// Items returns a copy of the current stock in shelf order
func (s *Shelf) Items() []domain.Item {
	items := make([]domain.Item, len(s.entries))
	for i, entry := range s.entries {
		items[i] = entry.item
	}
	return items
}

// Categories returns each item's category in shelf order
func (s *Shelf) Categories() []domain.Category {
	categories := make([]domain.Category, len(s.entries))
	for i, entry := range s.entries {
		categories[i] = entry.category
	}
	return categories
}

// Len returns the number of items on the shelf
func (s *Shelf) Len() int {
	return len(s.entries)
}
