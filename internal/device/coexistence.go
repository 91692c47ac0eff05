// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package device

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/logger"
)

// PeerCoordinator tracks the companion radio. The companion side reports
// its connection state with SetPeerConnected and acknowledges release
// requests with AckRelease; the sync worker calls RequestPeerRelease and
// NotifyRadioActive.
type PeerCoordinator struct {
	log *logger.Logger

	mu          sync.Mutex
	connected   bool
	radioActive bool
	pending     chan struct{}
	released    bool
	listeners   []func(active bool)
}

func NewPeerCoordinator(log *logger.Logger) *PeerCoordinator {
	return &PeerCoordinator{log: log}
}

// SetPeerConnected records the companion link state. A disconnect counts as
// an acknowledgement of any outstanding release request.
func (p *PeerCoordinator) SetPeerConnected(connected bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.connected = connected
	if !connected {
		p.ackLocked()
	}
}

func (p *PeerCoordinator) IsPeerConnected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connected
}

// RequestPeerRelease returns immediately when no peer is connected or the
// peer already released in this radio cycle.
func (p *PeerCoordinator) RequestPeerRelease(ctx context.Context, timeout time.Duration) error {
	p.mu.Lock()
	if !p.connected || p.released {
		p.mu.Unlock()
		return nil
	}
	if p.pending == nil {
		p.pending = make(chan struct{})
	}
	wait := p.pending
	p.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-wait:
		p.log.Debug().Str("func", "PeerCoordinator.RequestPeerRelease").Msg("peer released shared memory")
		return nil
	case <-timer.C:
		return fmt.Errorf("%w: waited %s", ErrPeerReleaseTimeout, timeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PendingRelease reports whether a release request waits for the peer.
func (p *PeerCoordinator) PendingRelease() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending != nil
}

// AckRelease is called by the companion side once shared memory is free.
func (p *PeerCoordinator) AckRelease() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ackLocked()
}

func (p *PeerCoordinator) ackLocked() {
	if p.pending != nil {
		close(p.pending)
		p.pending = nil
	}
	if p.connected {
		p.released = true
	}
}

// NotifyRadioActive informs every subscriber. Going inactive ends the radio
// cycle: the peer may reclaim its memory and the next cycle asks again.
func (p *PeerCoordinator) NotifyRadioActive(active bool) {
	p.mu.Lock()
	if p.radioActive == active {
		p.mu.Unlock()
		return
	}
	p.radioActive = active
	if !active {
		p.released = false
	}
	listeners := append([]func(bool){}, p.listeners...)
	p.mu.Unlock()

	p.log.Debug().Str("func", "PeerCoordinator.NotifyRadioActive").Bool("active", active).Msg("radio state changed")
	for _, fn := range listeners {
		fn(active)
	}
}

// RadioActive reports the last state passed to NotifyRadioActive.
func (p *PeerCoordinator) RadioActive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.radioActive
}

// Subscribe registers fn for radio state changes.
func (p *PeerCoordinator) Subscribe(fn func(active bool)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}
