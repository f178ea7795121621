package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Nightly Worker
// ============================================================================

const (
	LogMsgNightlyStarting         = "Nightly update starting"
	LogMsgNightlyCompleted        = "Nightly update completed"
	LogMsgNightlyFailed           = "Nightly update failed"
	LogMsgNightlyScheduled        = "Nightly update scheduled"
	LogMsgNightlyStandby          = "Nightly update standby"
	LogMsgNightlyManualTrigger    = "Nightly update manually triggered"
	LogMsgNightlyShuttingDown     = "Shutting down nightly worker"
	LogMsgNightlyShutdownComplete = "Nightly worker shutdown complete"
	LogMsgNightlyShutdownTimeout  = "Nightly worker shutdown timeout, a run may still be in progress"
)

// ============================================================================
// Nightly Scheduling
// ============================================================================

const (
	StandbyThreshold = 1 * time.Hour
	StandbyLeadTime  = 45 * time.Minute
	JitterTolerance  = 10 * time.Second
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
