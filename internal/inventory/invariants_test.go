package inventory

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// TestInvariantsHoldOverManyCycles ages every category from every in-range
// starting point and checks bounds, legendary immutability, and ordering
// after each day.
func TestInvariantsHoldOverManyCycles(t *testing.T) {
	names := []string{
		"+5 Dexterity Vest",
		domain.NameAgedBrie,
		domain.NameBackstagePass,
		"Conjured Mana Cake",
	}

	var items []domain.Item
	for _, name := range names {
		for sellIn := -3; sellIn <= 15; sellIn++ {
			for quality := domain.MinQuality; quality <= domain.MaxQuality; quality++ {
				items = append(items, domain.Item{Name: name, SellIn: sellIn, Quality: quality})
			}
		}
	}
	for sellIn := -3; sellIn <= 15; sellIn++ {
		items = append(items, domain.Item{Name: domain.NameSulfuras, SellIn: sellIn, Quality: domain.LegendaryQuality})
	}

	engine := NewEngine()
	for day := 0; day < 60; day++ {
		before := slices.Clone(items)
		engine.AdvanceOneDay(items)
		require.NoError(t, CheckCycle(before, items), "day %d", day+1)
	}
}
