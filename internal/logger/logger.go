// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// sublime command-line client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Command code passes *Logger by pointer and attaches it to the command
// context with WithContext so deeper layers can recover it via FromContext.
package logger

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// TimeFormat is the timestamp layout of console log lines.
const TimeFormat = "2006-01-02 15:04.05"

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewCLILogger constructs a human-readable *Logger writing to w (normally
// os.Stderr so that diagnostics never mix with command output on stdout).
//
// The logger is configured with:
//   - a zerolog.ConsoleWriter with colours disabled when noColor is set;
//   - a "ts" style timestamp using [TimeFormat];
//   - the minimum level parsed from level ("debug", "info", "warn", ...);
//     unknown values fall back to warn.
func NewCLILogger(w io.Writer, level string, noColor bool) *Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: TimeFormat,
		NoColor:    noColor,
	}

	logger := zerolog.New(out).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()

	return &Logger{logger}
}

// NewJSONLogger constructs a *Logger emitting one JSON object per line.
// It is used when diagnostics are captured by other tools.
func NewJSONLogger(w io.Writer, level string) *Logger {
	logger := zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()

	return &Logger{logger}
}

// ParseLevel converts a textual level into a zerolog.Level. Empty or
// unknown input yields zerolog.WarnLevel.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" || lvl == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return lvl
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithContext returns a copy of ctx carrying the logger.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by WithContext and
// returns it as a *Logger.
//
// If no logger has been attached to ctx, a disabled logger is returned, so
// this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*zerolog.Ctx(ctx)}
}
