package config

import "time"

// Environment variable names
const (
	EnvLogLevel            = "LOG_LEVEL"
	EnvLogFormat           = "LOG_FORMAT"
	EnvEnvironment         = "ENVIRONMENT"
	EnvServiceName         = "SERVICE_NAME"
	EnvVersion             = "VERSION"
	EnvItemsFile           = "ITEMS_FILE"
	EnvSimulationDays      = "SIMULATION_DAYS"
	EnvUpdateWorkers       = "UPDATE_WORKERS"
	EnvClassifierCacheSize = "CLASSIFIER_CACHE_SIZE"
	EnvNightlyInterval     = "NIGHTLY_INTERVAL"
	EnvNightlyTimezone     = "NIGHTLY_TIMEZONE"
	EnvMetricsFile         = "METRICS_FILE"
)

// Defaults
const (
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "text"
	DefaultEnvironment         = "dev"
	DefaultServiceName         = "gilded-rose"
	DefaultVersion             = "dev"
	DefaultSimulationDays      = 2
	DefaultUpdateWorkers       = 1
	DefaultClassifierCacheSize = 128
	DefaultNightlyInterval     = time.Duration(0)
	DefaultNightlyTimezone     = "UTC"
)

// Error messages
const (
	ErrFmtInvalidEnvValue = "invalid %s value: %w"
	ErrMsgInvalidConfig   = "invalid configuration"
)
