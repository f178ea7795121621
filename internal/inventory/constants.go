package inventory

// Engine defaults
const (
	DefaultClassifierCacheSize = 128
	DefaultWorkers             = 1

	// minChunkSize keeps parallel cycles from scheduling one job per item
	minChunkSize = 64
)

// Error messages
const (
	ErrMsgClassifierCacheFailed = "failed to create classifier cache: %w"
	ErrFmtLengthChanged         = "%w: %d items before, %d after"
	ErrFmtNameChanged           = "%w: position %d was %q, now %q"
	ErrFmtQualityOutOfBounds    = "%w: %q at position %d has quality %d"
	ErrFmtLegendaryMutated      = "%w: %q at position %d went from (%d, %d) to (%d, %d)"
)
