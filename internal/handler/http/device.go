// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/MKhiriev/go-device-sync/models"
)

type trackingResponse struct {
	ID int64 `json:"id"`
}

func (h *Handler) provision(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var p models.Provisioning
	if err := utils.ReadJSON(r.Body, &p); err != nil {
		log.Err(err).Str("func", "*Handler.provision").Msg("invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.DeviceService.Provision(r.Context(), p); err != nil {
		log.Err(err).Str("func", "*Handler.provision").Msg("provisioning rejected")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) recordTracking(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var record models.TrackingRecord
	if err := utils.ReadJSON(r.Body, &record); err != nil {
		log.Err(err).Str("func", "*Handler.recordTracking").Msg("invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now().UTC()
	}

	id, err := h.services.DeviceService.RecordTracking(r.Context(), record)
	if err != nil {
		log.Err(err).Str("func", "*Handler.recordTracking").Msg("tracking record rejected")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, trackingResponse{ID: id}, http.StatusCreated)
}

func (h *Handler) onboarding(w http.ResponseWriter, r *http.Request) {
	state, err := h.services.DeviceService.OnboardingState(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.onboarding").Msg("error reading onboarding state")
		http.Error(w, "error reading onboarding state", statusFromError(err))
		return
	}
	utils.WriteJSON(w, state, http.StatusOK)
}
