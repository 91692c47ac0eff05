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

// saneEpoch is the earliest wall-clock time accepted as synchronized. A
// device booting without a battery-backed RTC starts in 1970.
var saneEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

const defaultPollInterval = 500 * time.Millisecond

// ClockTimeSync waits for the host clock (kept by NTP or the cloud) to move
// past saneEpoch.
type ClockTimeSync struct {
	clock        Clock
	timeout      time.Duration
	pollInterval time.Duration
	log          *logger.Logger

	mu       sync.RWMutex
	location *time.Location
	started  bool
}

func NewClockTimeSync(clock Clock, timeout time.Duration, log *logger.Logger) *ClockTimeSync {
	return &ClockTimeSync{
		clock:        clock,
		timeout:      timeout,
		pollInterval: defaultPollInterval,
		log:          log,
		location:     time.UTC,
	}
}

// WithPollInterval sets how often the clock is checked.
func (c *ClockTimeSync) WithPollInterval(d time.Duration) *ClockTimeSync {
	if d > 0 {
		c.pollInterval = d
	}
	return c
}

// StartTimeSync loads timezone. An unknown zone falls back to UTC with a
// warning and is not an error.
func (c *ClockTimeSync) StartTimeSync(timezone string) error {
	loc := time.UTC
	if timezone != "" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			c.log.Warn().Err(err).Str("func", "ClockTimeSync.StartTimeSync").Str("timezone", timezone).Msg("unknown timezone, using UTC")
		} else {
			loc = l
		}
	}

	c.mu.Lock()
	c.location = loc
	c.started = true
	c.mu.Unlock()
	return nil
}

func (c *ClockTimeSync) WaitForTimeSync(ctx context.Context) error {
	c.mu.RLock()
	started := c.started
	c.mu.RUnlock()
	if !started {
		if err := c.StartTimeSync(""); err != nil {
			return err
		}
	}

	if c.valid() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return fmt.Errorf("%w: clock still at %s after %s", ErrTimeSyncTimeout, c.clock.Now().UTC().Format(time.RFC3339), c.timeout)
			}
			return ctx.Err()
		case <-ticker.C:
			if c.valid() {
				return nil
			}
		}
	}
}

// Location returns the timezone applied by the last StartTimeSync.
func (c *ClockTimeSync) Location() *time.Location {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.location
}

func (c *ClockTimeSync) valid() bool {
	return !c.clock.Now().Before(saneEpoch)
}
