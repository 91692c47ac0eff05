// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package scratch provides the pre-allocated scratch buffer shared by the
// downloader response path and the companion command channel.
package scratch

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
)

// DefaultSize is the size of the shared buffer.
const DefaultSize = 4 * 1024

// Buffer is a single pre-allocated byte slice guarded by a weighted
// semaphore. Callers that cannot acquire it in time skip their work.
type Buffer struct {
	sem *semaphore.Weighted
	buf []byte
}

// New allocates a Buffer of size bytes. A non-positive size selects
// DefaultSize.
func New(size int) *Buffer {
	if size <= 0 {
		size = DefaultSize
	}
	return &Buffer{
		sem: semaphore.NewWeighted(1),
		buf: make([]byte, size),
	}
}

// TryAcquire waits up to timeout for the buffer. On success it returns the
// zeroed buffer and a release func that must be called exactly once; ok is
// false on contention.
func (b *Buffer) TryAcquire(timeout time.Duration) (buf []byte, release func(), ok bool) {
	if !b.sem.TryAcquire(1) {
		if timeout <= 0 {
			return nil, nil, false
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := b.sem.Acquire(ctx, 1); err != nil {
			return nil, nil, false
		}
	}

	clear(b.buf)
	return b.buf, func() { b.sem.Release(1) }, true
}

// Size returns the capacity of the buffer.
func (b *Buffer) Size() int {
	return len(b.buf)
}
