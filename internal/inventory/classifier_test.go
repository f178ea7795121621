package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want domain.Category
	}{
		{"Aged Brie", domain.CategoryAgedBrie},
		{"Backstage passes to a TAFKAL80ETC concert", domain.CategoryBackstagePass},
		{"Sulfuras, Hand of Ragnaros", domain.CategoryLegendary},
		{"Conjured Mana Cake", domain.CategoryConjured},
		{"Conjured", domain.CategoryConjured},
		{"Conjured Aged Brie", domain.CategoryConjured},
		{"+5 Dexterity Vest", domain.CategoryGeneric},
		{"Elixir of the Mongoose", domain.CategoryGeneric},
		{"", domain.CategoryGeneric},
		// exact matches only
		{"aged brie", domain.CategoryGeneric},
		{"Aged Brie ", domain.CategoryGeneric},
		{"Backstage passes to a Metallica concert", domain.CategoryGeneric},
		{"Sulfuras", domain.CategoryGeneric},
		// prefix is case-sensitive and must lead the name
		{"conjured apple", domain.CategoryGeneric},
		{"Freshly Conjured Bread", domain.CategoryGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.name))
		})
	}
}

func TestClassifier_Caches(t *testing.T) {
	c, err := NewClassifier(2)
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryAgedBrie, c.Classify(domain.NameAgedBrie))
	assert.Equal(t, domain.CategoryAgedBrie, c.Classify(domain.NameAgedBrie))
	assert.Equal(t, 1, c.Len())

	assert.Equal(t, domain.CategoryLegendary, c.Classify(domain.NameSulfuras))
	assert.Equal(t, domain.CategoryConjured, c.Classify("Conjured Mana Cake"))
	assert.Equal(t, 2, c.Len(), "cache is bounded")

	// An evicted name is classified again, not misreported
	assert.Equal(t, domain.CategoryAgedBrie, c.Classify(domain.NameAgedBrie))
}

func TestNewClassifier_InvalidSize(t *testing.T) {
	_, err := NewClassifier(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "classifier cache")
}
