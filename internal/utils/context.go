// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities shared by the sync
// daemon packages: context keys, HMAC signing, identifiers, bearer token
// parsing, HTTP response writing and HTTP client construction.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key used to store the active sync session
// identifier in the context.
//
//	ctx := utils.WithSessionID(ctx, "0190c3d6-...")
var SessionIDCtxKey = contextKey("sessionID")

// WithSessionID returns a copy of ctx carrying sessionID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}

// GetSessionIDFromContext retrieves the sync session identifier from the
// context. ok is false when the value is missing or not a string.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok
}
