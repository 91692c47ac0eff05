// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-device-sync/models"
)

// Field names accepted by DeviceValidator for field-level scoping.
const (
	FieldSSID      = "ssid"
	FieldPassword  = "password"
	FieldSecretKey = "secret_key"
	FieldTimezone  = "timezone"

	FieldKind    = "kind"
	FieldPayload = "payload"
)

const (
	maxSSIDLength      = 32
	minPassphraseLen   = 8
	maxPassphraseLen   = 63
	maxTrackingPayload = 4 * 1024
)

var (
	defaultProvisioningFields = []string{FieldSSID, FieldPassword, FieldSecretKey, FieldTimezone}
	defaultTrackingFields     = []string{FieldKind, FieldPayload}
)

// DeviceValidator validates the payloads accepted by the local control API:
// models.Provisioning and models.TrackingRecord, by value or pointer.
type DeviceValidator struct{}

func NewDeviceValidator() Validator {
	return &DeviceValidator{}
}

// Validate dispatches on the dynamic type of obj. When fields is empty every
// field of the type is checked.
func (v *DeviceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Provisioning:
		return v.validateProvisioning(ctx, value, fields...)
	case *models.Provisioning:
		return v.validateProvisioning(ctx, *value, fields...)

	case models.TrackingRecord:
		return v.validateTracking(ctx, value, fields...)
	case *models.TrackingRecord:
		return v.validateTracking(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DeviceValidator) validateProvisioning(_ context.Context, p models.Provisioning, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultProvisioningFields
	}

	for _, field := range fields {
		switch field {
		case FieldSSID:
			if p.SSID == "" {
				return ErrEmptySSID
			}
			if len(p.SSID) > maxSSIDLength {
				return ErrSSIDTooLong
			}
		case FieldPassword:
			// open networks have no passphrase
			if n := len(p.Password); n != 0 && (n < minPassphraseLen || n > maxPassphraseLen) {
				return ErrPasswordLength
			}
		case FieldSecretKey:
			if p.SecretKey == "" {
				return ErrEmptySecretKey
			}
		case FieldTimezone:
			if p.Timezone == "" {
				continue
			}
			if _, err := time.LoadLocation(p.Timezone); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidTimezone, p.Timezone)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *DeviceValidator) validateTracking(_ context.Context, r models.TrackingRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultTrackingFields
	}

	for _, field := range fields {
		switch field {
		case FieldKind:
			if r.Kind == "" {
				return ErrEmptyTrackingKind
			}
		case FieldPayload:
			if len(r.Payload) > maxTrackingPayload {
				return ErrTrackingTooLarge
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}
