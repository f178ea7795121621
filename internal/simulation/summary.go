package simulation

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
)

// CategoryStats aggregates the stock of one category
type CategoryStats struct {
	Category     domain.Category
	Items        int
	Expired      int
	TotalQuality int
}

// AverageQuality returns the mean quality, or 0 for an empty category
func (s CategoryStats) AverageQuality() float64 {
	if s.Items == 0 {
		return 0
	}
	return float64(s.TotalQuality) / float64(s.Items)
}

// Collect groups items by category, in domain.Categories order
func Collect(items []domain.Item) []CategoryStats {
	stats := make([]CategoryStats, len(domain.Categories))
	for i, category := range domain.Categories {
		stats[i].Category = category
	}

	for _, item := range items {
		s := &stats[inventory.Classify(item.Name)]
		s.Items++
		s.TotalQuality += item.Quality
		if item.SellIn < 0 {
			s.Expired++
		}
	}
	return stats
}

// Label turns a category key such as "backstage_pass" into "Backstage Pass"
func Label(category domain.Category) string {
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(category.String(), "_", " "))
}

// Summary writes a per-category table of the stock. Categories with no
// items are left out.
func Summary(w io.Writer, items []domain.Item) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	header := fmt.Sprintf("%s\t%s\t%s\t%s\t\n",
		SummaryHeaderCategory, SummaryHeaderItems, SummaryHeaderExpired, SummaryHeaderQuality)
	if _, err := io.WriteString(tw, header); err != nil {
		return fmt.Errorf(ErrMsgWriteReportFailed, err)
	}

	var total CategoryStats
	for _, s := range Collect(items) {
		if s.Items == 0 {
			continue
		}
		if _, err := p.Fprintf(tw, "%s\t%d\t%d\t%.1f\t\n", Label(s.Category), s.Items, s.Expired, s.AverageQuality()); err != nil {
			return fmt.Errorf(ErrMsgWriteReportFailed, err)
		}
		total.Items += s.Items
		total.Expired += s.Expired
		total.TotalQuality += s.TotalQuality
	}

	if _, err := p.Fprintf(tw, "%s\t%d\t%d\t%.1f\t\n", SummaryTotalLabel, total.Items, total.Expired, total.AverageQuality()); err != nil {
		return fmt.Errorf(ErrMsgWriteReportFailed, err)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf(ErrMsgWriteReportFailed, err)
	}
	return nil
}
