package update_bench

import (
	"context"
	"fmt"
	"testing"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/metrics"
)

var stockNames = []string{
	"+5 Dexterity Vest",
	domain.NameAgedBrie,
	"Elixir of the Mongoose",
	domain.NameSulfuras,
	domain.NameBackstagePass,
	"Conjured Mana Cake",
}

// newStock builds n items cycling through every category
func newStock(n int) []domain.Item {
	items := make([]domain.Item, n)
	for i := range items {
		items[i] = domain.Item{Name: stockNames[i%len(stockNames)], SellIn: 20 - i%40, Quality: i % 50}
		if items[i].Name == domain.NameSulfuras {
			items[i].Quality = domain.LegendaryQuality
		}
	}
	return items
}

// BenchmarkAdvanceOneDay measures one cycle with name matching on every item
func BenchmarkAdvanceOneDay(b *testing.B) {
	for _, n := range []int{10, 1_000, 100_000} {
		b.Run(fmt.Sprintf("items=%d", n), func(b *testing.B) {
			engine := inventory.NewEngine()
			items := newStock(n)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				engine.AdvanceOneDay(items)
			}
		})
	}
}

// BenchmarkAdvanceOneDay_Cached puts the LRU classifier in front of name matching
func BenchmarkAdvanceOneDay_Cached(b *testing.B) {
	classifier, err := inventory.NewClassifier(inventory.DefaultClassifierCacheSize)
	if err != nil {
		b.Fatalf("NewClassifier failed: %v", err)
	}
	engine := inventory.NewEngine(inventory.WithClassifier(classifier))
	items := newStock(100_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.AdvanceOneDay(items)
	}
}

// BenchmarkAdvanceOneDay_Workers compares worker counts on a large stock
func BenchmarkAdvanceOneDay_Workers(b *testing.B) {
	ctx := context.Background()
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			engine := inventory.NewEngine(inventory.WithWorkers(workers))
			items := newStock(100_000)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := engine.AdvanceOneDayContext(ctx, items); err != nil {
					b.Fatalf("AdvanceOneDayContext failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkShelf_AdvanceOneDay measures cycles with categories resolved up front
func BenchmarkShelf_AdvanceOneDay(b *testing.B) {
	shelf := inventory.NewEngine().NewShelf(newStock(100_000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		shelf.AdvanceOneDay()
	}
}

// BenchmarkAdvanceOneDay_Prometheus includes per-item counter updates
func BenchmarkAdvanceOneDay_Prometheus(b *testing.B) {
	engine := inventory.NewEngine(inventory.WithRecorder(metrics.NewPrometheusRecorder()))
	items := newStock(100_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.AdvanceOneDay(items)
	}
}
