package cli

import (
	"log/slog"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/item"
	"github.com/osse101/GildedRose_Go/internal/metrics"
)

// loadItems reads a stock file, or returns the built-in stock for an empty path
func loadItems(path string) ([]domain.Item, error) {
	if path == "" {
		items := item.DefaultItems()
		slog.Debug(LogMsgItemsLoaded, "source", "built-in", "items", len(items))
		return items, nil
	}

	loader, err := item.NewLoader()
	if err != nil {
		return nil, err
	}
	cfg, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Debug(LogMsgItemsLoaded, "source", path, "items", len(cfg.Items))
	return cfg.Items, nil
}

// buildEngine wires a cached classifier and, when requested, a Prometheus
// recorder into a new engine. The recorder is nil without metrics.
func buildEngine(cacheSize, workers int, withMetrics bool) (*inventory.Engine, *metrics.PrometheusRecorder, error) {
	classifier, err := inventory.NewClassifier(cacheSize)
	if err != nil {
		return nil, nil, err
	}

	opts := []inventory.Option{
		inventory.WithClassifier(classifier),
		inventory.WithWorkers(workers),
	}

	var recorder *metrics.PrometheusRecorder
	if withMetrics {
		recorder = metrics.NewPrometheusRecorder()
		opts = append(opts, inventory.WithRecorder(recorder))
	}

	return inventory.NewEngine(opts...), recorder, nil
}
