// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local control API of the sync daemon.
//
// The API is the external trigger surface of the sync gateway: it starts,
// cancels and reports sync sessions, accepts provisioning and tracking
// records, and carries the companion radio command channel. Request tracing,
// access logging and response compression are handled here before requests
// reach the service layer.
package http
