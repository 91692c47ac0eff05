// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-device-sync/internal/utils"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK)
}
