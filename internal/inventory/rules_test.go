package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

type ruleCase struct {
	desc                    string
	sellIn, quality         int
	wantSellIn, wantQuality int
}

func runRuleCases(t *testing.T, name string, cases []ruleCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			item := domain.Item{Name: name, SellIn: tc.sellIn, Quality: tc.quality}
			Apply(&item)
			assert.Equal(t, name, item.Name, "name never changes")
			assert.Equal(t, tc.wantSellIn, item.SellIn, "sellIn")
			assert.Equal(t, tc.wantQuality, item.Quality, "quality")
		})
	}
}

func TestGenericRule(t *testing.T) {
	runRuleCases(t, "+5 Dexterity Vest", []ruleCase{
		{"far from expiry loses one", 20, 2, 19, 1},
		{"medium expiry loses one", 10, 2, 9, 1},
		{"last day loses one", 1, 2, 0, 1},
		{"expiring day loses two", 0, 2, -1, 0},
		{"long expired keeps losing two", -5, 10, -6, 8},
		{"floor at zero", 5, 0, 4, 0},
		{"floor holds mid-sequence", 0, 1, -1, 0},
		{"out of range start is not corrected", 5, 60, 4, 59},
		{"negative start is left alone", 5, -3, 4, -3},
	})
}

func TestAgedBrieRule(t *testing.T) {
	runRuleCases(t, domain.NameAgedBrie, []ruleCase{
		{"gains one before expiry", 5, 2, 4, 3},
		{"gains two after expiry", 0, 2, -1, 4},
		{"keeps gaining two once expired", -3, 10, -4, 12},
		{"ceiling holds before expiry", 10, 50, 9, 50},
		{"second increment stalls at ceiling", -1, 49, -2, 50},
		{"expiring day from 49", 0, 49, -1, 50},
		{"expired from 48 reaches ceiling", -3, 48, -4, 50},
		{"above ceiling is not corrected", 5, 60, 4, 60},
	})
}

func TestBackstagePassRule(t *testing.T) {
	runRuleCases(t, domain.NameBackstagePass, []ruleCase{
		{"more than ten days gains one", 20, 2, 19, 3},
		{"eleven days gains one", 11, 2, 10, 3},
		{"ten days gains two", 10, 2, 9, 4},
		{"six days gains two", 6, 2, 5, 4},
		{"five days gains three", 5, 2, 4, 5},
		{"last day gains three", 1, 2, 0, 5},
		{"after concert drops to zero", 0, 2, -1, 0},
		{"hard reset from ceiling", 0, 50, -1, 0},
		{"long after concert stays zero", -3, 10, -4, 0},
		{"ceiling holds", 15, 50, 14, 50},
		{"stalls at ceiling in second tier", 10, 49, 9, 50},
		{"stalls at ceiling in third tier", 5, 49, 4, 50},
		{"third tier from 48", 5, 48, 4, 50},
		{"above ceiling is not corrected", 5, 60, 4, 60},
	})
}

func TestLegendaryRule(t *testing.T) {
	runRuleCases(t, domain.NameSulfuras, []ruleCase{
		{"expired", 0, 80, 0, 80},
		{"long expired", -1, 80, -1, 80},
		{"before expiry", 10, 80, 10, 80},
		{"any stocked quality", 5, 3, 5, 3},
	})
}

func TestConjuredRule(t *testing.T) {
	runRuleCases(t, "Conjured Mana Cake", []ruleCase{
		{"loses two before expiry", 3, 6, 2, 4},
		{"loses four on expiring day", 0, 5, -1, 1},
		{"loses four once expired", -2, 10, -3, 6},
		{"floor holds mid-sequence", 3, 1, 2, 0},
		{"floor holds after expiry", 0, 3, -1, 0},
		{"zero stays zero", 0, 0, -1, 0},
		{"negative start is left alone", 5, -3, 4, -3},
	})
}

func TestLowercaseConjuredIsGeneric(t *testing.T) {
	runRuleCases(t, "conjured apple", []ruleCase{
		{"loses one", 3, 6, 2, 5},
	})
}

func TestRuleFor_EveryCategoryHasARule(t *testing.T) {
	for _, c := range domain.Categories {
		assert.Contains(t, rules, c, c.String())
	}

	unknown := domain.Item{Name: "x", SellIn: 3, Quality: 3}
	RuleFor(domain.Category(99))(&unknown)
	assert.Equal(t, domain.Item{Name: "x", SellIn: 2, Quality: 2}, unknown, "unknown category ages as generic")
}

func TestApplyReturnsCategory(t *testing.T) {
	item := domain.Item{Name: domain.NameBackstagePass, SellIn: 12, Quality: 20}
	assert.Equal(t, domain.CategoryBackstagePass, Apply(&item))
}
