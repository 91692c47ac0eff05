// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the control API server of the sync daemon.
//
// Signal handling belongs to the application: RunServer blocks while the
// server accepts connections and Shutdown drains it.
package server
