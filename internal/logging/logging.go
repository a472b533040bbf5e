// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures structured JSON diagnostics on stderr.
// Diagnostics are kept apart from the extractor's user-facing messages and
// stay silent below the configured level.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel names the environment variable consulted when no level is given.
const EnvLogLevel = "LOG_LEVEL"

// DefaultLevel is used when neither a level nor LOG_LEVEL is set.
const DefaultLevel = slog.LevelWarn

// ParseLevel maps a case-insensitive level name onto a slog.Level.
// Unknown or empty names return DefaultLevel.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return DefaultLevel
}

// NewStructuredLogger returns a JSON logger writing to w, tagged with module
// and version. An empty level falls back to LOG_LEVEL. Debug loggers also
// record the source location.
func NewStructuredLogger(w io.Writer, module, version, level string) *slog.Logger {
	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}
	lvl := ParseLevel(level)

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})
	return slog.New(h).With("module", module, "version", version)
}

