package domain

// Item names that select a special aging rule
const (
	NameAgedBrie      = "Aged Brie"
	NameBackstagePass = "Backstage passes to a TAFKAL80ETC concert"
	NameSulfuras      = "Sulfuras, Hand of Ragnaros"

	// PrefixConjured is matched case-sensitively against the start of a name
	PrefixConjured = "Conjured"
)

// Quality bounds
const (
	MinQuality = 0
	MaxQuality = 50

	// LegendaryQuality is the fixed quality legendary items are stocked at.
	// It is never checked against MaxQuality.
	LegendaryQuality = 80
)

// Backstage pass tiers, compared against sellIn before the nightly decrement
const (
	BackstageSecondTierSellIn = 11 // sellIn below this gains an extra point
	BackstageThirdTierSellIn  = 6  // sellIn below this gains a third point
)

// Category labels
const (
	CategoryNameGeneric       = "generic"
	CategoryNameAgedBrie      = "aged_brie"
	CategoryNameBackstagePass = "backstage_pass"
	CategoryNameLegendary     = "legendary"
	CategoryNameConjured      = "conjured"
)
