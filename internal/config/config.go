package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=text json"`
	Environment string `validate:"oneof=dev development staging prod production test"`
	ServiceName string `validate:"required"`
	Version     string `validate:"required"`

	// ItemsFile is a JSON stock file; empty means the built-in fixture
	ItemsFile string `validate:"omitempty,file"`

	SimulationDays      int `validate:"gte=0"`
	UpdateWorkers       int `validate:"min=1,max=256"`
	ClassifierCacheSize int `validate:"min=1"`

	// NightlyInterval of zero runs the update at midnight in NightlyTimezone
	NightlyInterval time.Duration `validate:"gte=0"`
	NightlyTimezone string        `validate:"timezone"`

	MetricsFile string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:       strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:     getEnv(EnvServiceName, DefaultServiceName),
		Version:         getEnv(EnvVersion, DefaultVersion),
		ItemsFile:       getEnv(EnvItemsFile, ""),
		NightlyTimezone: getEnv(EnvNightlyTimezone, DefaultNightlyTimezone),
		MetricsFile:     getEnv(EnvMetricsFile, ""),
	}

	var err error
	if cfg.SimulationDays, err = getEnvAsInt(EnvSimulationDays, DefaultSimulationDays); err != nil {
		return nil, err
	}
	if cfg.UpdateWorkers, err = getEnvAsInt(EnvUpdateWorkers, DefaultUpdateWorkers); err != nil {
		return nil, err
	}
	if cfg.ClassifierCacheSize, err = getEnvAsInt(EnvClassifierCacheSize, DefaultClassifierCacheSize); err != nil {
		return nil, err
	}
	if cfg.NightlyInterval, err = getEnvAsDuration(EnvNightlyInterval, DefaultNightlyInterval); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment reports whether the config targets a local environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// Location resolves NightlyTimezone, an empty name meaning UTC
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.NightlyTimezone)
	if err != nil {
		return nil, fmt.Errorf("nightly timezone %q: %w", c.NightlyTimezone, err)
	}
	return loc, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to the
// default when unset
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf(ErrFmtInvalidEnvValue, key, err)
	}
	return n, nil
}

// getEnvAsDuration parses a duration environment variable, falling back to
// the default when unset
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf(ErrFmtInvalidEnvValue, key, err)
	}
	return d, nil
}
