/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel overrides the log level of every logger built here.
const EnvLogLevel = "LOG_LEVEL"

// ParseLevel converts a level name to slog.Level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// levelFromEnv returns LOG_LEVEL if set, otherwise def.
func levelFromEnv(def slog.Level) slog.Level {
	if v := os.Getenv(EnvLogLevel); v != "" {
		return ParseLevel(v)
	}
	return def
}

// NewStructuredLogger returns a JSON logger tagged with the module name and
// version.
func NewStructuredLogger(w io.Writer, name, version string, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: level <= slog.LevelDebug,
		Level:     level,
	})
	return slog.New(h).With("module", name, "version", version)
}

// SetDefaultStructuredLogger installs a JSON logger on stderr as the default.
// Used by long-running services.
func SetDefaultStructuredLogger(name, version string) {
	slog.SetDefault(NewStructuredLogger(os.Stderr, name, version, levelFromEnv(slog.LevelInfo)))
}

// SetDefaultCLILogger installs a terminal friendly text logger on stderr.
func SetDefaultCLILogger(level slog.Level) {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelFromEnv(level),
	})
	slog.SetDefault(slog.New(h))
}
