package cli

// Error messages
const (
	ErrMsgInvalidFlags      = "invalid flags"
	ErrMsgLoadItemsFailed   = "failed to load items"
	ErrMsgBuildEngineFailed = "failed to build update engine"
	ErrMsgSimulationFailed  = "simulation failed"
	ErrMsgInvariantBroken   = "stock broke an update invariant"
	ErrMsgWriteMetrics      = "failed to write metrics"
	ErrMsgInvalidTimezone   = "invalid timezone"
	ErrMsgTriggerFailed     = "initial nightly run failed"
)

// Log messages
const (
	LogMsgItemsLoaded       = "Stock loaded"
	LogMsgMetricsWritten    = "Metrics written"
	LogMsgNightlyInterval   = "Nightly runner started on a fixed interval"
	LogMsgNightlyMidnight   = "Nightly runner started at local midnight"
	LogMsgShutdownRequested = "Shutdown requested"
)
