// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the sync daemon. Components receive a
// *Logger at construction; request and session scoped loggers travel in the
// context and are read back with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger on os.Stdout tagged with role. Every entry
// carries a timestamp and a "func" field with the calling function name.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewDeviceLogger appends entries to the file at path, or to "sync.log" next
// to the executable when path is empty. It falls back to os.Stdout when the
// file cannot be opened.
func NewDeviceLogger(role, path string) *Logger {
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), "sync.log")
	}

	var out io.Writer = os.Stdout
	if logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		out = logFile
	}
	return newLogger(out, role)
}

func newLogger(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	return &Logger{zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// WithSession returns a child logger carrying the session id and mode of a
// sync session.
func (l *Logger) WithSession(sessionID, mode string) *Logger {
	return &Logger{l.With().Str("session_id", sessionID).Str("mode", mode).Logger()}
}

// Nop returns a *Logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can gain fields without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger attached by the logging
// middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger when none is. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
