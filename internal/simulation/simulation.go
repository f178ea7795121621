package simulation

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// ErrNegativeDays is returned when Run is asked to go backwards
var ErrNegativeDays = errors.New(ErrMsgNegativeDays)

// Options tunes a simulation run
type Options struct {
	// Strict checks every cycle for broken invariants and stops at the first
	// day that has any.
	Strict bool
}

// Run prints the stock for day 0 and after each of days cycles. items is
// updated in place and holds the final stock when Run returns.
func Run(ctx context.Context, engine *inventory.Engine, items []domain.Item, days int, w io.Writer, opts Options) error {
	if days < 0 {
		return ErrNegativeDays
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgSimulationStarted, "days", days, "items", len(items), "strict", opts.Strict)

	bw := bufio.NewWriter(w)
	for day := 0; ; day++ {
		if err := WriteDay(bw, day, items); err != nil {
			return fmt.Errorf(ErrMsgWriteReportFailed, err)
		}
		if day == days {
			break
		}

		var before []domain.Item
		if opts.Strict {
			before = append([]domain.Item(nil), items...)
		}

		if err := engine.AdvanceOneDayContext(ctx, items); err != nil {
			_ = bw.Flush()
			return err
		}
		log.Debug(LogMsgDayCompleted, "day", day+1)

		if opts.Strict {
			if err := inventory.CheckCycle(before, items); err != nil {
				_ = bw.Flush()
				return fmt.Errorf(ErrFmtDayCheckFailed, day+1, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf(ErrMsgWriteReportFailed, err)
	}

	log.Info(LogMsgSimulationFinished, "days", days)
	return nil
}

// WriteDay prints one day block of the report
func WriteDay(w io.Writer, day int, items []domain.Item) error {
	if _, err := fmt.Fprintf(w, FmtDayHeader, day); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ColumnsHeader); err != nil {
		return err
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
