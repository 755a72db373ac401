// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger used
// throughout the OIDC provider server.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on
// *Logger. The configuration engine receives a *Logger as an injected
// handle; [FromConfig] builds one from the "logging" section of a
// configuration file.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a production-ready *Logger for the given role label
// (e.g. "oidc-server").
//
// The logger writes JSON to os.Stdout at Info level, with a "role" field
// for filtering logs from different application components and a timestamp
// on every entry.
func NewLogger(role string) *Logger {
	l := zerolog.New(os.Stdout).Level(zerolog.InfoLevel).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and as the fallback when neither a
// logging section nor an injected handle is available.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromConfig builds a *Logger from the "logging" section of a configuration
// file. Recognized keys, all optional:
//
//	level:  zerolog level name ("debug", "info", "warn", ...); default "info"
//	format: "json" (default) or "console"
//	output: "stdout" (default), "stderr", or a file path opened for append
//
// Unknown level names and unopenable output files are reported as errors;
// unrecognized keys are ignored.
func FromConfig(conf map[string]any) (*Logger, error) {
	level := zerolog.InfoLevel
	if name, ok := conf["level"].(string); ok && name != "" {
		parsed, err := zerolog.ParseLevel(name)
		if err != nil {
			return nil, fmt.Errorf("error parsing log level: %w", err)
		}
		level = parsed
	}

	var out io.Writer
	switch target, _ := conf["output"].(string); target {
	case "", "stdout":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	default:
		file, err := os.OpenFile(target, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("error opening log output: %w", err)
		}
		out = file
	}

	if format, _ := conf["format"].(string); format == "console" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	l := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &Logger{l}, nil
}
