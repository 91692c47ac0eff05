// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks payloads received by the local control API
// before they reach the device store.
//
// Validate accepts optional field names that restrict the check to a subset
// of fields; without them every field of the type is checked.
package validators

import "context"

// Validator validates a value, optionally scoped to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
