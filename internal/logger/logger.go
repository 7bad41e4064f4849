// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

// Package logger wraps zerolog with the constructors and context helpers the
// resolver daemon and CLI share.
//
// Logger embeds zerolog.Logger, so the full zerolog API is available on
// *Logger. Request-scoped loggers travel through context and are recovered
// with FromContext or FromRequest.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so helper methods can be added without
// shadowing the upstream API.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the daemon's JSON logger for the given role label
// ("protectconfd", "resolver"). Every entry carries the role, a timestamp,
// and the fully qualified calling function under the "func" key. The
// emitted level follows the global zerolog level; see [ApplyLevel].
func NewLogger(role string) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewCLILogger builds the interactive logger for protectconf commands.
// Output goes to os.Stderr in the human-readable console format, so it never
// mixes with resolved documents written to stdout.
func NewCLILogger(role string) *Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// ApplyLevel sets the global zerolog level from its string name ("trace",
// "debug", "info", "warn", "error"). Unknown names return the parse error
// and leave the current level untouched.
func ApplyLevel(level string) error {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(parsed)
	return nil
}

// Console returns a copy of the logger that writes through the
// human-readable console writer instead of raw JSON. Fields attached so far
// are preserved.
func (l *Logger) Console() *Logger {
	return &Logger{l.Output(zerolog.ConsoleWriter{Out: os.Stdout})}
}

// Nop returns a logger that discards everything. Handy in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a child inheriting the receiver's fields. The child
// can be enriched per request without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest recovers the request-scoped logger attached by the trace
// middleware from r's context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext recovers the logger carried in ctx, or zerolog's global logger
// when none was attached. Never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
