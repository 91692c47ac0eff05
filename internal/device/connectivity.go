// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package device

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/MKhiriev/go-device-sync/models"
	"github.com/sethvargo/go-retry"
)

const defaultDialTimeout = 5 * time.Second

// DialFunc opens a connection; net.Dialer.DialContext in production.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// NetworkConnectivity treats the network as up once the probe address
// accepts a TCP connection. Joining the WLAN itself is left to the host
// network manager; the credentials are only checked for presence.
type NetworkConnectivity struct {
	probeAddress string
	dial         DialFunc
	log          *logger.Logger

	mu        sync.Mutex
	connected bool
	onRelease []func()
}

// NewNetworkConnectivity returns a Connectivity probing probeAddress
// ("host:port").
func NewNetworkConnectivity(probeAddress string, log *logger.Logger) *NetworkConnectivity {
	d := &net.Dialer{Timeout: defaultDialTimeout}
	return &NetworkConnectivity{
		probeAddress: probeAddress,
		dial:         d.DialContext,
		log:          log,
	}
}

// WithDialer replaces the dialer.
func (n *NetworkConnectivity) WithDialer(dial DialFunc) *NetworkConnectivity {
	n.dial = dial
	return n
}

// OnRelease registers fn to run on every DisconnectAndRelease of an active
// connection, e.g. closing idle HTTP connections.
func (n *NetworkConnectivity) OnRelease(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onRelease = append(n.onRelease, fn)
}

func (n *NetworkConnectivity) Connect(ctx context.Context, creds models.Credentials, policy RetryPolicy) error {
	log := n.log.With().Str("func", "NetworkConnectivity.Connect").Str("probe", n.probeAddress).Logger()

	if creds.SSID == "" {
		return ErrNoCredentials
	}

	attempt := 0
	err := retry.Do(ctx, utils.ConstantBackoff(policy.Attempts, policy.Delay), func(ctx context.Context) error {
		attempt++
		conn, err := n.dial(ctx, "tcp", n.probeAddress)
		if err != nil {
			log.Debug().Err(err).Int("attempt", attempt).Msg("probe failed")
			return retry.RetryableError(err)
		}
		_ = conn.Close()
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %d attempts: %w", ErrNotConnected, attempt, err)
	}

	n.mu.Lock()
	n.connected = true
	n.mu.Unlock()

	log.Info().Str("ssid", creds.SSID).Int("attempts", attempt).Msg("network reachable")
	return nil
}

func (n *NetworkConnectivity) DisconnectAndRelease() error {
	n.mu.Lock()
	if !n.connected {
		n.mu.Unlock()
		return nil
	}
	n.connected = false
	hooks := append([]func(){}, n.onRelease...)
	n.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
	n.log.Debug().Str("func", "NetworkConnectivity.DisconnectAndRelease").Msg("network released")
	return nil
}

// Connected reports whether the last Connect succeeded and no release
// happened since.
func (n *NetworkConnectivity) Connected() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.connected
}
