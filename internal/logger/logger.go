// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the server and the notifier CLI.
//
// Every entry carries a "role" field naming the binary that wrote it. HTTP
// handlers take their request-scoped logger (with trace id and user) from the
// request context via [FromRequest].
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the full zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

func newRoleLogger(w io.Writer, role string, withCaller bool) *Logger {
	ctx := zerolog.New(w).With().Str("role", role).Timestamp()
	if withCaller {
		ctx = ctx.Caller()
	}
	return &Logger{ctx.Logger()}
}

// NewLogger returns the JSON logger used by the server. It writes to stdout,
// enables every level until [SetLevel] narrows it down, and reports the
// calling function name in the "func" field.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return newRoleLogger(os.Stdout, role, true)
}

// NewConsoleLogger returns a human-readable logger on stderr for the CLI.
func NewConsoleLogger(role string) *Logger {
	return newRoleLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, role, false)
}

// SetLevel applies level ("debug", "info", "warn", ...) globally. An empty
// level leaves the current one in place.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zerolog.SetGlobalLevel(parsed)
	return nil
}

// Nop discards everything. Tests use it.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// FromContext returns the logger attached to ctx by zerolog's WithContext,
// falling back to zerolog's default logger. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}
