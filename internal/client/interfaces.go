// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client defines the minimal lifecycle contract for runnable applications.
type Client interface {
	// Run starts the application and blocks until exit.
	Run() error
}
