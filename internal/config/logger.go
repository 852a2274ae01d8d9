package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates a JSON logger tagged with the given service name
func (c *LoggerConfig) NewLogger(service string) *slog.Logger {
	return c.newLogger(os.Stdout, service)
}

func (c *LoggerConfig) newLogger(w io.Writer, service string) *slog.Logger {
	level := parseLogLevel(c.Level)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug || level == slog.LevelError,
	}

	return slog.New(slog.NewJSONHandler(w, opts)).With("service", service)
}

// Debug reports whether verbose logging (including SQL) is enabled
func (c *LoggerConfig) Debug() bool {
	return parseLogLevel(c.Level) == slog.LevelDebug
}

func parseLogLevel(level string) slog.Level {
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
