// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/service"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/MKhiriev/go-device-sync/models"
)

type startSyncRequest struct {
	Mode string `json:"mode"`
}

type startSyncResponse struct {
	SessionID string          `json:"session_id"`
	Mode      models.SyncMode `json:"mode"`
}

type historyResponse struct {
	Sessions []models.SessionRecord `json:"sessions"`
	Length   int                    `json:"length"`
}

// startSync starts a session. An empty body selects a full sync.
func (h *Handler) startSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req startSyncRequest
	if err := utils.ReadJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Str("func", "*Handler.startSync").Msg("invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	mode := models.SyncModeFull
	if req.Mode != "" {
		parsed, err := models.ParseSyncMode(req.Mode)
		if err != nil {
			log.Err(err).Str("func", "*Handler.startSync").Msg("unknown sync mode")
			http.Error(w, err.Error(), statusFromError(service.ErrInvalidMode))
			return
		}
		mode = parsed
	}

	id, err := h.services.Gateway.StartSync(r.Context(), mode, nil)
	if err != nil {
		log.Err(err).Str("func", "*Handler.startSync").Msg("sync not started")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, startSyncResponse{SessionID: id, Mode: mode}, http.StatusAccepted)
}

func (h *Handler) cancelSync(w http.ResponseWriter, r *http.Request) {
	if !h.services.Gateway.RequestCancel() {
		http.Error(w, ErrNoActiveSession.Error(), statusFromError(ErrNoActiveSession))
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.Gateway.Status(), http.StatusOK)
}

// syncHistory lists finished sessions, newest first. The optional limit
// query parameter caps the list.
func (h *Handler) syncHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, ErrInvalidLimit.Error(), statusFromError(ErrInvalidLimit))
			return
		}
		limit = n
	}

	sessions, err := h.services.DeviceService.History(r.Context(), limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncHistory").Msg("error reading session history")
		http.Error(w, "error reading session history", statusFromError(err))
		return
	}
	if sessions == nil {
		sessions = []models.SessionRecord{}
	}

	utils.WriteJSON(w, historyResponse{Sessions: sessions, Length: len(sessions)}, http.StatusOK)
}
