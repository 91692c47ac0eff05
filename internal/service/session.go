// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-device-sync/models"
)

// CancelToken is the cooperative cancellation flag of one session. The
// orchestrator polls it at stage boundaries and at the head of every
// per-file iteration; it never interrupts a transfer in progress.
type CancelToken struct {
	requested atomic.Bool
}

// Cancel sets the flag. Repeated calls have no further effect.
func (c *CancelToken) Cancel() {
	c.requested.Store(true)
}

func (c *CancelToken) Cancelled() bool {
	return c.requested.Load()
}

// CompletionCallback receives the record of a finished session.
type CompletionCallback func(record models.SessionRecord)

// SyncSession is the unit of work of one synchronization attempt.
type SyncSession struct {
	ID        string
	Mode      models.SyncMode
	StartedAt time.Time
	Callback  CompletionCallback

	cancel CancelToken
	stage  atomic.Int32
}

func NewSyncSession(id string, mode models.SyncMode, startedAt time.Time, cb CompletionCallback) *SyncSession {
	return &SyncSession{ID: id, Mode: mode, StartedAt: startedAt, Callback: cb}
}

// RequestCancel flags the session for cancellation.
func (s *SyncSession) RequestCancel() { s.cancel.Cancel() }

// CancelRequested reports whether cancellation was requested.
func (s *SyncSession) CancelRequested() bool { return s.cancel.Cancelled() }

// Stage is the last stage entered. Observation only.
func (s *SyncSession) Stage() models.Stage { return models.Stage(s.stage.Load()) }

func (s *SyncSession) setStage(stage models.Stage) { s.stage.Store(int32(stage)) }

// SessionHandle guards the device-wide single-session invariant. The active
// flag is taken with a compare-and-swap so two triggers racing for it can
// never both win.
type SessionHandle struct {
	active atomic.Bool

	mu      sync.Mutex
	current *SyncSession
}

// TryAcquire makes session the active one. It returns false while another
// session holds the handle.
func (h *SessionHandle) TryAcquire(session *SyncSession) bool {
	if !h.active.CompareAndSwap(false, true) {
		return false
	}
	h.mu.Lock()
	h.current = session
	h.mu.Unlock()
	return true
}

// Release frees the handle if session still owns it.
func (h *SessionHandle) Release(session *SyncSession) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current != session {
		return
	}
	h.current = nil
	h.active.Store(false)
}

func (h *SessionHandle) IsActive() bool {
	return h.active.Load()
}

// RequestCancel cancels the active session and reports whether there was one.
func (h *SessionHandle) RequestCancel() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current == nil {
		return false
	}
	h.current.RequestCancel()
	return true
}

// Current returns the active session or nil.
func (h *SessionHandle) Current() *SyncSession {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}
