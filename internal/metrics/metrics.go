package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Recorder receives update engine observations
type Recorder interface {
	ItemUpdated(category domain.Category)
	CycleCompleted(items int, duration time.Duration)
}

// NopRecorder discards everything
type NopRecorder struct{}

func (NopRecorder) ItemUpdated(domain.Category) {}

func (NopRecorder) CycleCompleted(int, time.Duration) {}

// PrometheusRecorder records engine activity on its own registry so that
// batch runs can export exactly what they did.
type PrometheusRecorder struct {
	registry *prometheus.Registry

	itemsUpdated  *prometheus.CounterVec
	cycles        prometheus.Counter
	cycleDuration prometheus.Histogram
	cycleItems    prometheus.Gauge
}

// NewPrometheusRecorder creates a recorder backed by a fresh registry
func NewPrometheusRecorder() *PrometheusRecorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	r := &PrometheusRecorder{
		registry: reg,
		itemsUpdated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: MetricNamespace,
				Name:      MetricNameItemsUpdated,
				Help:      HelpTextItemsUpdated,
			},
			[]string{LabelCategory},
		),
		cycles: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: MetricNamespace,
				Name:      MetricNameUpdateCycles,
				Help:      HelpTextUpdateCycles,
			},
		),
		cycleDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: MetricNamespace,
				Name:      MetricNameUpdateCycleDuration,
				Help:      HelpTextUpdateCycleDuration,
				Buckets:   CycleLatencyBuckets,
			},
		),
		cycleItems: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: MetricNamespace,
				Name:      MetricNameCycleItems,
				Help:      HelpTextCycleItems,
			},
		),
	}

	// Pre-create every category series so exports list zeros too
	for _, c := range domain.Categories {
		r.itemsUpdated.WithLabelValues(c.String())
	}

	return r
}

func (r *PrometheusRecorder) ItemUpdated(category domain.Category) {
	r.itemsUpdated.WithLabelValues(category.String()).Inc()
}

func (r *PrometheusRecorder) CycleCompleted(items int, duration time.Duration) {
	r.cycles.Inc()
	r.cycleItems.Set(float64(items))
	r.cycleDuration.Observe(duration.Seconds())
}

// Registry exposes the underlying registry
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes every metric in the text exposition format, suitable
// for the node exporter textfile collector.
func (r *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
