// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package download

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport covers network failures and unexpected HTTP statuses.
	ErrTransport = errors.New("download transport error")
	// ErrSizeMismatch means the stream was longer than the expected size.
	ErrSizeMismatch = errors.New("download size mismatch")
	// ErrIncompleteResumable means the stream ended early; the written
	// prefix is kept and the next attempt resumes from it.
	ErrIncompleteResumable = errors.New("download incomplete, resumable")
	// ErrWrite is a local storage failure. It is never retried.
	ErrWrite = errors.New("download write error")
)

// statusError is an unexpected HTTP status. It unwraps to ErrTransport.
type statusError struct {
	code      int
	retryable bool
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d %s", ErrTransport, e.code, http.StatusText(e.code))
}

func (e *statusError) Unwrap() error { return ErrTransport }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var se *statusError
	if errors.As(err, &se) {
		return se.code
	}
	return 0
}

func isRetryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.retryable
	}
	switch {
	case errors.Is(err, ErrWrite):
		return false
	case errors.Is(err, ErrTransport),
		errors.Is(err, ErrSizeMismatch),
		errors.Is(err, ErrIncompleteResumable):
		return true
	}
	return false
}
