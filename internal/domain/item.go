package domain

import "fmt"

// Item is a single stock entry. Name identifies the item and is the only
// signal used to decide how it ages; SellIn and Quality change every night.
type Item struct {
	Name    string `json:"name"`
	SellIn  int    `json:"sell_in"`
	Quality int    `json:"quality"`
}

// String renders the item the way the nightly report prints it.
func (i Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}

// Category is the fixed aging behavior of an item, resolved once from its name
type Category int

const (
	CategoryGeneric Category = iota
	CategoryAgedBrie
	CategoryBackstagePass
	CategoryLegendary
	CategoryConjured
)

// Categories lists every category in declaration order
var Categories = []Category{
	CategoryGeneric,
	CategoryAgedBrie,
	CategoryBackstagePass,
	CategoryLegendary,
	CategoryConjured,
}

var categoryNames = map[Category]string{
	CategoryGeneric:       CategoryNameGeneric,
	CategoryAgedBrie:      CategoryNameAgedBrie,
	CategoryBackstagePass: CategoryNameBackstagePass,
	CategoryLegendary:     CategoryNameLegendary,
	CategoryConjured:      CategoryNameConjured,
}

// String returns the stable label used in logs and metric labels
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// IsLegendary reports whether items of this category are exempt from aging
func (c Category) IsLegendary() bool {
	return c == CategoryLegendary
}
