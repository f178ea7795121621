package inventory

import "github.com/osse101/GildedRose_Go/internal/domain"

// Rule advances a single item by one day in place
type Rule func(item *domain.Item)

// rules holds exactly one rule per category
var rules = map[domain.Category]Rule{
	domain.CategoryGeneric:       updateGeneric,
	domain.CategoryAgedBrie:      updateAgedBrie,
	domain.CategoryBackstagePass: updateBackstagePass,
	domain.CategoryLegendary:     updateLegendary,
	domain.CategoryConjured:      updateConjured,
}

// RuleFor returns the rule for a category. Unknown categories age as generic.
func RuleFor(category domain.Category) Rule {
	if rule, ok := rules[category]; ok {
		return rule
	}
	return updateGeneric
}

// Apply classifies item by name and advances it one day
func Apply(item *domain.Item) domain.Category {
	category := Classify(item.Name)
	RuleFor(category)(item)
	return category
}

// increaseQuality adds one point unless the item is already at the ceiling
func increaseQuality(item *domain.Item) {
	if item.Quality < domain.MaxQuality {
		item.Quality++
	}
}

// decreaseQuality removes one point unless the item is already at the floor
func decreaseQuality(item *domain.Item) {
	if item.Quality > domain.MinQuality {
		item.Quality--
	}
}

func expired(item *domain.Item) bool {
	return item.SellIn < 0
}

func updateGeneric(item *domain.Item) {
	decreaseQuality(item)
	item.SellIn--
	if expired(item) {
		decreaseQuality(item)
	}
}

func updateAgedBrie(item *domain.Item) {
	increaseQuality(item)
	item.SellIn--
	if expired(item) {
		increaseQuality(item)
	}
}

// updateBackstagePass gains value faster as the concert nears, using sellIn
// from before the decrement, and is worthless once the concert has passed.
func updateBackstagePass(item *domain.Item) {
	if item.Quality < domain.MaxQuality {
		item.Quality++
		if item.SellIn < domain.BackstageSecondTierSellIn {
			increaseQuality(item)
		}
		if item.SellIn < domain.BackstageThirdTierSellIn {
			increaseQuality(item)
		}
	}
	item.SellIn--
	if expired(item) {
		item.Quality = 0
	}
}

func updateLegendary(*domain.Item) {}

func updateConjured(item *domain.Item) {
	decreaseQuality(item)
	decreaseQuality(item)
	item.SellIn--
	if expired(item) {
		decreaseQuality(item)
		decreaseQuality(item)
	}
}
