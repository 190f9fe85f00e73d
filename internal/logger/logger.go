// Package logger builds the named, level-filtered slog loggers used across the service.
//
// Levels follow the names operators already use in LAC_LOG_LEVEL: "error", "warn",
// "info" and "debug". The legacy "log" level is treated as "error".
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel is the environment variable consulted by New.
const EnvLogLevel = "LAC_LOG_LEVEL"

// DefaultLevel is used when no level, or an unknown one, is configured.
const DefaultLevel = "info"

var levels = map[string]slog.Level{
	"log":   slog.LevelError,
	"error": slog.LevelError,
	"warn":  slog.LevelWarn,
	"info":  slog.LevelInfo,
	"debug": slog.LevelDebug,
}

// New creates a JSON logger writing to stdout, with its level taken from LAC_LOG_LEVEL.
func New(name string) *slog.Logger {
	return NewWithLevel(name, os.Getenv(EnvLogLevel), os.Stdout)
}

// NewWithLevel creates a JSON logger with an explicit level and output.
// Every record carries a "name" attribute so output from different components can be told apart.
func NewWithLevel(name, level string, output io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler).With("name", name)
}

// ParseLevel maps a configured level name to a slog level.
func ParseLevel(level string) slog.Level {
	if l, ok := levels[strings.ToLower(strings.TrimSpace(level))]; ok {
		return l
	}
	return levels[DefaultLevel]
}
