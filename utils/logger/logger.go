// ABOUTME: This file provides slog-based structured logging for the ingestion service
// ABOUTME: Supports json/text handlers and level configuration via environment
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LoggerConfig controls handler format and verbosity.
type LoggerConfig struct {
	Level       string
	Format      string
	ServiceName string
}

// LoadLoggerConfigFromEnv reads logger settings from the environment.
func LoadLoggerConfigFromEnv() *LoggerConfig {
	return &LoggerConfig{
		Level:       getEnvOrDefault("LOG_LEVEL", "info"),
		Format:      getEnvOrDefault("LOG_FORMAT", "json"),
		ServiceName: getEnvOrDefault("SERVICE_NAME", "news-aggregator"),
	}
}

// New builds a *slog.Logger from the given configuration, writing to stdout.
func New(config *LoggerConfig) *slog.Logger {
	return NewWithWriter(os.Stdout, config)
}

// NewWithWriter builds a *slog.Logger writing to the given writer. Used by
// tests to capture output.
func NewWithWriter(w io.Writer, config *LoggerConfig) *slog.Logger {
	options := &slog.HandlerOptions{
		Level: parseLevel(config.Level),
	}

	var handler slog.Handler
	if strings.EqualFold(config.Format, "text") {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}

	return slog.New(handler).With("service", config.ServiceName)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}
