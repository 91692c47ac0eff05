// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scratch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_AcquireRelease(t *testing.T) {
	b := New(16)

	buf, release, ok := b.TryAcquire(0)
	require.True(t, ok)
	assert.Len(t, buf, 16)
	copy(buf, "dirty")
	release()

	buf, release, ok = b.TryAcquire(0)
	require.True(t, ok)
	assert.Equal(t, byte(0), buf[0])
	release()
}

func TestBuffer_ContentionSkips(t *testing.T) {
	b := New(8)

	_, release, ok := b.TryAcquire(0)
	require.True(t, ok)
	defer release()

	start := time.Now()
	_, _, ok = b.TryAcquire(20 * time.Millisecond)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestBuffer_WaitsForRelease(t *testing.T) {
	b := New(8)

	_, release, ok := b.TryAcquire(0)
	require.True(t, ok)

	go func() {
		time.Sleep(10 * time.Millisecond)
		release()
	}()

	_, release2, ok := b.TryAcquire(time.Second)
	require.True(t, ok)
	release2()
}

func TestNew_DefaultSize(t *testing.T) {
	assert.Equal(t, DefaultSize, New(0).Size())
}
