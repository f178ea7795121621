package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// SetupLogger installs the default slog logger described by cfg, writing to
// w, and reports any configuration warnings through it
func SetupLogger(cfg *config.Config, w io.Writer) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)
	logger.InitLoggerWithWriter(loggerConfig, w)

	slog.Debug(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel())
	slog.Debug(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	for _, warning := range config.Warnings(cfg) {
		slog.Warn(LogMsgConfigWarning, "detail", warning)
	}
}
