package inventory

import (
	"errors"
	"fmt"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// CheckCycle compares stock before and after one cycle and reports every
// broken invariant: order or names changed, a non-legendary item that
// started in bounds left [MinQuality, MaxQuality], or a legendary item changed.
// Items that started out of bounds are not checked; the engine does not
// correct initial values.
func CheckCycle(before, after []domain.Item) error {
	if len(before) != len(after) {
		return fmt.Errorf(ErrFmtLengthChanged, domain.ErrItemOrderChanged, len(before), len(after))
	}

	var errs []error
	for i := range before {
		b, a := before[i], after[i]
		if b.Name != a.Name {
			errs = append(errs, fmt.Errorf(ErrFmtNameChanged, domain.ErrItemOrderChanged, i, b.Name, a.Name))
			continue
		}

		if Classify(b.Name).IsLegendary() {
			if b != a {
				errs = append(errs, fmt.Errorf(ErrFmtLegendaryMutated, domain.ErrLegendaryMutated,
					b.Name, i, b.SellIn, b.Quality, a.SellIn, a.Quality))
			}
			continue
		}

		if inBounds(b.Quality) && !inBounds(a.Quality) {
			errs = append(errs, fmt.Errorf(ErrFmtQualityOutOfBounds, domain.ErrQualityOutOfBounds, a.Name, i, a.Quality))
		}
	}

	return errors.Join(errs...)
}

func inBounds(quality int) bool {
	return quality >= domain.MinQuality && quality <= domain.MaxQuality
}
