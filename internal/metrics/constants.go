package metrics

// ============================================================================
// Metric Names
// ============================================================================

const (
	MetricNamespace = "gildedrose"

	MetricNameItemsUpdated        = "items_updated_total"
	MetricNameUpdateCycles        = "update_cycles_total"
	MetricNameUpdateCycleDuration = "update_cycle_duration_seconds"
	MetricNameCycleItems          = "update_cycle_items"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextItemsUpdated        = "Total number of item updates applied, by category"
	HelpTextUpdateCycles        = "Total number of completed nightly update cycles"
	HelpTextUpdateCycleDuration = "Nightly update cycle latency in seconds"
	HelpTextCycleItems          = "Number of items processed by the last update cycle"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelCategory = "category"
)

// CycleLatencyBuckets covers sub-millisecond cycles up to large stock files
var CycleLatencyBuckets = []float64{.00001, .0001, .001, .01, .1, 1}
