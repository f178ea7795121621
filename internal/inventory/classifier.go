package inventory

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Classify maps an item name to its category. Unknown names are generic.
func Classify(name string) domain.Category {
	switch name {
	case domain.NameAgedBrie:
		return domain.CategoryAgedBrie
	case domain.NameBackstagePass:
		return domain.CategoryBackstagePass
	case domain.NameSulfuras:
		return domain.CategoryLegendary
	}
	if strings.HasPrefix(name, domain.PrefixConjured) {
		return domain.CategoryConjured
	}
	return domain.CategoryGeneric
}

// Classifier memoises Classify results in a bounded LRU so each name is
// matched once rather than on every cycle. Safe for concurrent use.
type Classifier struct {
	cache *lru.Cache[string, domain.Category]
}

// NewClassifier creates a classifier holding at most size names
func NewClassifier(size int) (*Classifier, error) {
	cache, err := lru.New[string, domain.Category](size)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgClassifierCacheFailed, err)
	}
	return &Classifier{cache: cache}, nil
}

// Classify returns the cached category for name, classifying on a miss
func (c *Classifier) Classify(name string) domain.Category {
	if category, ok := c.cache.Get(name); ok {
		return category
	}
	category := Classify(name)
	c.cache.Add(name, category)
	return category
}

// Len returns the number of cached names
func (c *Classifier) Len() int {
	return c.cache.Len()
}
