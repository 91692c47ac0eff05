// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-device-sync/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// session control
	router.Group(func(r chi.Router) {
		r.Post("/api/sync", h.startSync)
		r.Post("/api/sync/cancel", h.cancelSync)
	})

	// read-only views, compressed on request
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/api/sync/status", h.syncStatus)
		r.Get("/api/sync/history", h.syncHistory)
		r.Get("/api/onboarding", h.onboarding)
		r.Get("/api/version", h.getVersion)
	})

	router.Post("/api/provision", h.provision)
	router.Post("/api/tracking", h.recordTracking)
	router.Post("/api/peer", h.peerCommand)

	if metrics.IsEnabled() {
		router.Handle("/metrics", metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
