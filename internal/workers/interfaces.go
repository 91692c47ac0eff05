// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "context"

// Worker is a background task owned by the application.
//
// Start must not block for the lifetime of the task; long-running work
// belongs in a goroutine. Stop blocks until the task has finished and must
// be safe to call on a worker that never started.
type Worker interface {
	Start(ctx context.Context) error
	Stop()
}

// SessionGate is the part of the sync gateway needed to drain it.
type SessionGate interface {
	RequestCancel() bool
	Wait()
}
