// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package device

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestPeerRelease_NoPeer(t *testing.T) {
	p := NewPeerCoordinator(logger.Nop())
	assert.False(t, p.IsPeerConnected())
	assert.NoError(t, p.RequestPeerRelease(context.Background(), time.Millisecond))
}

func TestRequestPeerRelease_Acknowledged(t *testing.T) {
	p := NewPeerCoordinator(logger.Nop())
	p.SetPeerConnected(true)

	go func() {
		for !p.PendingRelease() {
			time.Sleep(time.Millisecond)
		}
		p.AckRelease()
	}()

	require.NoError(t, p.RequestPeerRelease(context.Background(), time.Second))
	// released for the rest of the radio cycle
	assert.NoError(t, p.RequestPeerRelease(context.Background(), time.Millisecond))

	p.NotifyRadioActive(true)
	p.NotifyRadioActive(false)
	assert.ErrorIs(t, p.RequestPeerRelease(context.Background(), 10*time.Millisecond), ErrPeerReleaseTimeout)
}

func TestRequestPeerRelease_Timeout(t *testing.T) {
	p := NewPeerCoordinator(logger.Nop())
	p.SetPeerConnected(true)

	start := time.Now()
	err := p.RequestPeerRelease(context.Background(), 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrPeerReleaseTimeout)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestRequestPeerRelease_PeerDisconnects(t *testing.T) {
	p := NewPeerCoordinator(logger.Nop())
	p.SetPeerConnected(true)

	go func() {
		for !p.PendingRelease() {
			time.Sleep(time.Millisecond)
		}
		p.SetPeerConnected(false)
	}()

	assert.NoError(t, p.RequestPeerRelease(context.Background(), time.Second))
}

func TestRequestPeerRelease_Cancelled(t *testing.T) {
	p := NewPeerCoordinator(logger.Nop())
	p.SetPeerConnected(true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.RequestPeerRelease(ctx, time.Second), context.Canceled)
}

func TestNotifyRadioActive_Listeners(t *testing.T) {
	p := NewPeerCoordinator(logger.Nop())
	var got []bool
	p.Subscribe(func(active bool) { got = append(got, active) })

	p.NotifyRadioActive(true)
	p.NotifyRadioActive(true)
	p.NotifyRadioActive(false)

	assert.Equal(t, []bool{true, false}, got)
	assert.False(t, p.RadioActive())
}
