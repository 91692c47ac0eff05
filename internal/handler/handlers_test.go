// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/device"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/scratch"
	"github.com/MKhiriev/go-device-sync/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:8089"}

	h, err := NewHandlers(&service.Services{}, device.NewPeerCoordinator(logger.Nop()), scratch.New(0), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, nil, nil, config.Server{}, logger.Nop())

	assert.Nil(t, h)
	assert.True(t, errors.Is(err, errNoHandlersAreCreated))
}
