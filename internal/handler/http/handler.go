// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/scratch"
	"github.com/MKhiriev/go-device-sync/internal/service"
)

// PeerLink is the companion radio side of the coexistence handshake.
type PeerLink interface {
	SetPeerConnected(connected bool)
	AckRelease()
}

type Handler struct {
	services *service.Services
	peer     PeerLink
	scratch  *scratch.Buffer

	logger *logger.Logger
}

// NewHandler builds the control API handler. buf is the scratch buffer
// shared with the downloader; companion commands are read into it.
func NewHandler(services *service.Services, peer PeerLink, buf *scratch.Buffer, logger *logger.Logger) *Handler {
	if buf == nil {
		buf = scratch.New(0)
	}
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		peer:     peer,
		scratch:  buf,
		logger:   logger,
	}
}
