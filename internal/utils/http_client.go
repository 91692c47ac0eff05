// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(30 * time.Second)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with the given per-request timeout.
// A zero timeout leaves the transport default in place. Each call returns an
// independent client with its own connection pool.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	c := resty.New().SetHeader("User-Agent", "go-device-sync")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}
