package bootstrap

import "time"

// ShutdownTimeout bounds how long GracefulShutdown waits for a running cycle
const ShutdownTimeout = 10 * time.Second

// Log messages
const (
	LogMsgLoggingInitialized = "Logging initialized"
	LogMsgStarting           = "Starting Gilded Rose"
	LogMsgConfigWarning      = "Configuration warning"
	LogMsgShuttingDown       = "Shutting down nightly runner"
	LogMsgShutdownComplete   = "Nightly runner stopped"
	LogMsgNightlyShutdownErr = "Nightly worker shutdown failed"
)
