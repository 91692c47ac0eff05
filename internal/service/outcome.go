// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-device-sync/internal/adapter"
	"github.com/MKhiriev/go-device-sync/internal/download"
	"github.com/MKhiriev/go-device-sync/models"
)

// classifyOutcome maps the error that ended a session to the single
// terminal outcome. Cancellation wins over everything; a pending firmware
// update only shows when nothing failed.
func classifyOutcome(err error, cancelled, firmwarePending bool) models.Outcome {
	switch {
	case cancelled || errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled):
		return models.OutcomeCancelled
	case err == nil || errors.Is(err, errSessionComplete):
		if firmwarePending {
			return models.OutcomeFirmwarePending
		}
		return models.OutcomeSuccess
	case errors.Is(err, ErrConnectivity), errors.Is(err, ErrTimeSync), isNetworkCause(err):
		return models.OutcomeNetworkError
	default:
		return models.OutcomeSyncError
	}
}

// isNetworkCause reports whether err bottoms out in a transport failure
// rather than a rejection by the cloud.
func isNetworkCause(err error) bool {
	return errors.Is(err, adapter.ErrRequest) ||
		errors.Is(err, adapter.ErrBadGateway) ||
		errors.Is(err, adapter.ErrServiceUnavailable) ||
		errors.Is(err, download.ErrTransport)
}
