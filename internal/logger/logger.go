// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the fitness tracker.
//
// The server logs JSON to stdout. Each request carries a child logger in
// its context, tagged with the trace id and, once authenticated, the user
// id; handlers and services fetch it with [FromRequest] or [FromContext].
// The CLI client logs human-readable lines to stderr.
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

// Field keys shared by every component.
const (
	FieldRole    = "role"
	FieldTraceID = "trace_id"
	FieldUserID  = "user_id"
	FieldCaller  = "func"
)

// Logger embeds zerolog.Logger, so the usual Debug/Info/Err/... methods
// are available directly.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns the server logger for role ("server", "migrations").
// It sets the global level to debug until [Logger.SetLevel] is applied
// from configuration.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = FieldCaller
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return newLogger(os.Stdout, role)
}

func newLogger(w io.Writer, role string) *Logger {
	return &Logger{zerolog.New(w).With().
		Str(FieldRole, role).
		Timestamp().
		Caller().
		Logger()}
}

// NewClientLogger returns a console logger for the CLI client. Only
// warnings and errors are shown, on stderr, so stdout stays clean JSON.
func NewClientLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return &Logger{zerolog.New(console).With().
		Str(FieldRole, role).
		Timestamp().
		Logger()}
}

// SetLevel applies a level name such as "info" globally. Empty is a no-op.
func (l *Logger) SetLevel(level string) error {
	if level == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTraceID returns a child logger tagged with the request trace id.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str(FieldTraceID, traceID).Logger()}
}

// WithUserID returns a child logger tagged with the authenticated user.
func (l *Logger) WithUserID(userID string) *Logger {
	return &Logger{l.With().Str(FieldUserID, userID).Logger()}
}

// FromRequest returns the logger stored in the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx, or a disabled one.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
