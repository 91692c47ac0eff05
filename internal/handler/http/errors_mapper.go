// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-device-sync/internal/service"
	"github.com/MKhiriev/go-device-sync/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:     http.StatusBadRequest,
	ErrInvalidLimit:    http.StatusBadRequest,
	ErrUnknownCommand:  http.StatusBadRequest,
	ErrCommandTooLarge: http.StatusRequestEntityTooLarge,
	ErrNoActiveSession: http.StatusConflict,
	ErrPeerChannelBusy: http.StatusServiceUnavailable,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidMode:         http.StatusBadRequest,
	service.ErrSyncAlreadyActive:   http.StatusConflict,

	store.ErrInvalidProvisioning: http.StatusBadRequest,
	store.ErrNotProvisioned:      http.StatusNotFound,
	store.ErrSettingNotFound:     http.StatusNotFound,

	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
