package simulation

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/item"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		category domain.Category
		want     string
	}{
		{domain.CategoryGeneric, "Generic"},
		{domain.CategoryAgedBrie, "Aged Brie"},
		{domain.CategoryBackstagePass, "Backstage Pass"},
		{domain.CategoryLegendary, "Legendary"},
		{domain.CategoryConjured, "Conjured"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.category))
		})
	}
}

func TestCollect(t *testing.T) {
	stats := Collect(item.DefaultItems())
	require.Len(t, stats, len(domain.Categories))

	byCategory := make(map[domain.Category]CategoryStats)
	for _, s := range stats {
		byCategory[s.Category] = s
	}

	assert.Equal(t, 2, byCategory[domain.CategoryGeneric].Items)
	assert.Equal(t, 1, byCategory[domain.CategoryAgedBrie].Items)
	assert.Equal(t, 3, byCategory[domain.CategoryBackstagePass].Items)
	assert.Equal(t, 2, byCategory[domain.CategoryLegendary].Items)
	assert.Equal(t, 1, byCategory[domain.CategoryLegendary].Expired)
	assert.Equal(t, 1, byCategory[domain.CategoryConjured].Items)
	assert.InDelta(t, 13.5, byCategory[domain.CategoryGeneric].AverageQuality(), 0.001)
	assert.InDelta(t, 80, byCategory[domain.CategoryLegendary].AverageQuality(), 0.001)
}

func TestCategoryStats_AverageQualityEmpty(t *testing.T) {
	assert.Zero(t, CategoryStats{}.AverageQuality())
}

// summaryRows splits the table into label -> trailing numeric columns
func summaryRows(t *testing.T, out string) map[string][]string {
	t.Helper()
	rows := make(map[string][]string)
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n")[1:] {
		fields := strings.Fields(line)
		require.GreaterOrEqual(t, len(fields), 4, line)
		label := strings.Join(fields[:len(fields)-3], " ")
		rows[label] = fields[len(fields)-3:]
	}
	return rows
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, item.DefaultItems()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "Category"))
	assert.Contains(t, strings.SplitN(out, "\n", 2)[0], "Avg Quality")

	rows := summaryRows(t, out)
	assert.Equal(t, []string{"2", "0", "13.5"}, rows["Generic"])
	assert.Equal(t, []string{"1", "0", "0.0"}, rows["Aged Brie"])
	assert.Equal(t, []string{"3", "0", "39.3"}, rows["Backstage Pass"])
	assert.Equal(t, []string{"2", "1", "80.0"}, rows["Legendary"])
	assert.Equal(t, []string{"1", "0", "6.0"}, rows["Conjured"])
	assert.Equal(t, []string{"9", "1", "34.6"}, rows["Total"])
}

func TestSummary_SkipsEmptyCategories(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, []domain.Item{{Name: domain.NameAgedBrie, SellIn: -1, Quality: 12}}))

	rows := summaryRows(t, buf.String())
	assert.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "1", "12.0"}, rows["Aged Brie"])
	assert.Equal(t, []string{"1", "1", "12.0"}, rows["Total"])
}

func TestSummary_GroupsLargeCounts(t *testing.T) {
	items := make([]domain.Item, 1200)
	for i := range items {
		items[i] = domain.Item{Name: "Vest", SellIn: 1, Quality: 10}
	}

	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, items))

	assert.Equal(t, []string{"1,200", "0", "10.0"}, summaryRows(t, buf.String())["Generic"])
}

func TestSummary_WriteError(t *testing.T) {
	err := Summary(failingWriter{}, item.DefaultItems())
	require.ErrorIs(t, err, errWrite)
}
