// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/service"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/MKhiriev/go-device-sync/models"
)

const peerScratchTimeout = 50 * time.Millisecond

// Companion radio commands.
const (
	PeerConnected    = "connected"
	PeerDisconnected = "disconnected"
	PeerReleaseAck   = "release_ack"
	PeerSync         = "sync"
)

type peerCommand struct {
	Command string `json:"command"`
	// Mode applies to PeerSync; empty selects proximity_radio.
	Mode string `json:"mode,omitempty"`
}

// peerCommand handles one companion radio command. The body is read into
// the shared scratch buffer; when the downloader holds it the command is
// refused with 503.
func (h *Handler) peerCommand(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	buf, release, ok := h.scratch.TryAcquire(peerScratchTimeout)
	if !ok {
		log.Warn().Str("func", "*Handler.peerCommand").Msg("scratch buffer busy, command refused")
		http.Error(w, ErrPeerChannelBusy.Error(), statusFromError(ErrPeerChannelBusy))
		return
	}
	data, err := readCommand(r.Body, buf)
	var cmd peerCommand
	if err == nil {
		if jsonErr := json.Unmarshal(data, &cmd); jsonErr != nil {
			err = ErrInvalidJSON
		}
	}
	release()

	if err != nil {
		log.Err(err).Str("func", "*Handler.peerCommand").Msg("invalid companion command")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Str("func", "*Handler.peerCommand").Str("command", cmd.Command).Msg("companion command received")

	switch cmd.Command {
	case PeerConnected:
		h.peer.SetPeerConnected(true)
	case PeerDisconnected:
		h.peer.SetPeerConnected(false)
	case PeerReleaseAck:
		h.peer.AckRelease()
	case PeerSync:
		h.peerSync(w, r, cmd.Mode)
		return
	default:
		http.Error(w, ErrUnknownCommand.Error(), statusFromError(ErrUnknownCommand))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) peerSync(w http.ResponseWriter, r *http.Request, rawMode string) {
	mode := models.SyncModeProximityRadio
	if rawMode != "" {
		parsed, err := models.ParseSyncMode(rawMode)
		if err != nil {
			http.Error(w, err.Error(), statusFromError(service.ErrInvalidMode))
			return
		}
		mode = parsed
	}

	id, err := h.services.Gateway.StartSync(r.Context(), mode, nil)
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	utils.WriteJSON(w, startSyncResponse{SessionID: id, Mode: mode}, http.StatusAccepted)
}

// readCommand reads body into buf and returns the filled part.
func readCommand(body io.Reader, buf []byte) ([]byte, error) {
	n, err := io.ReadFull(body, buf)
	switch {
	case err == nil:
		var probe [1]byte
		if m, _ := body.Read(probe[:]); m > 0 {
			return nil, ErrCommandTooLarge
		}
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
	default:
		return nil, err
	}
	return buf[:n], nil
}
