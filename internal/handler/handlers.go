// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler builds the transport handlers of the sync daemon.
package handler

import (
	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/handler/http"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/scratch"
	"github.com/MKhiriev/go-device-sync/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, peer http.PeerLink, buf *scratch.Buffer, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, peer, buf, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
