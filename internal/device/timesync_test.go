// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package device

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClock returns a settable time.
type stubClock struct {
	now atomic.Int64
}

func newStubClock(t time.Time) *stubClock {
	c := &stubClock{}
	c.Set(t)
	return c
}

func (c *stubClock) Now() time.Time  { return time.Unix(0, c.now.Load()) }
func (c *stubClock) Set(t time.Time) { c.now.Store(t.UnixNano()) }

var (
	bootTime = time.Unix(0, 0)
	realTime = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
)

func TestWaitForTimeSync_AlreadyValid(t *testing.T) {
	ts := NewClockTimeSync(newStubClock(realTime), time.Second, logger.Nop())
	require.NoError(t, ts.StartTimeSync("Europe/Berlin"))
	require.NoError(t, ts.WaitForTimeSync(context.Background()))
	assert.Equal(t, "Europe/Berlin", ts.Location().String())
}

func TestWaitForTimeSync_ClockCatchesUp(t *testing.T) {
	clock := newStubClock(bootTime)
	ts := NewClockTimeSync(clock, 2*time.Second, logger.Nop()).WithPollInterval(5 * time.Millisecond)
	require.NoError(t, ts.StartTimeSync(""))

	go func() {
		time.Sleep(30 * time.Millisecond)
		clock.Set(realTime)
	}()

	require.NoError(t, ts.WaitForTimeSync(context.Background()))
}

func TestWaitForTimeSync_Timeout(t *testing.T) {
	ts := NewClockTimeSync(newStubClock(bootTime), 40*time.Millisecond, logger.Nop()).WithPollInterval(5 * time.Millisecond)

	err := ts.WaitForTimeSync(context.Background())
	assert.ErrorIs(t, err, ErrTimeSyncTimeout)
}

func TestWaitForTimeSync_Cancelled(t *testing.T) {
	ts := NewClockTimeSync(newStubClock(bootTime), time.Minute, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ts.WaitForTimeSync(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrTimeSyncTimeout)
}

func TestStartTimeSync_UnknownZone(t *testing.T) {
	ts := NewClockTimeSync(newStubClock(realTime), time.Second, logger.Nop())
	require.NoError(t, ts.StartTimeSync("Mars/Olympus_Mons"))
	assert.Equal(t, time.UTC, ts.Location())
}
