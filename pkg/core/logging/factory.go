// ============================================================================
// galleon - Längenangaben parsen und umrechnen
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers from config
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	mdwlog "github.com/msto63/galleon/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "text", "json" or "logfmt" (default: text)
	Format string

	// Output writer (default: stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "text",
	}
}

// NewLogger creates a new foundation logger. Logs go to stderr unless an
// output is given, so stdout stays free for conversion results.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  parseLevel(cfg.Level),
		Format: parseFormat(cfg.Format),
		Output: output,
		Name:   cfg.ServiceName,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// Discard returns a logger that drops everything. Used in tests.
func Discard() *mdwlog.Logger {
	return NewLogger(LoggerConfig{
		ServiceName: "discard",
		Level:       "error",
		Output:      io.Discard,
	})
}

// parseLevel converts a string level to mdwlog.Level, falling back to warn
func parseLevel(level string) mdwlog.Level {
	if strings.TrimSpace(level) == "" {
		return mdwlog.DefaultLevel()
	}
	parsed, err := mdwlog.ParseLevel(level)
	if err != nil {
		return mdwlog.DefaultLevel()
	}
	return parsed
}

// parseFormat converts a string format to mdwlog.Format, falling back to text
func parseFormat(format string) mdwlog.Format {
	parsed, err := mdwlog.ParseFormat(format)
	if err != nil {
		return mdwlog.FormatText
	}
	return parsed
}
