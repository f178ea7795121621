package scheduler

// Log messages
const (
	LogMsgCycleCompleted   = "Nightly cycle completed"
	LogMsgAfterCycleFailed = "After-cycle hook failed"
)

// ErrFmtAfterCycle wraps errors from the after-cycle hook
const ErrFmtAfterCycle = "after cycle %d: %w"
