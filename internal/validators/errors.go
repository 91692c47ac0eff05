// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySSID         = errors.New("ssid is required")
	ErrSSIDTooLong       = errors.New("ssid must not exceed 32 bytes")
	ErrPasswordLength    = errors.New("password must be empty or 8 to 63 characters")
	ErrEmptySecretKey    = errors.New("secret key is required")
	ErrInvalidTimezone   = errors.New("unknown timezone")
	ErrEmptyTrackingKind = errors.New("tracking kind is required")
	ErrTrackingTooLarge  = errors.New("tracking payload is too large")
)
