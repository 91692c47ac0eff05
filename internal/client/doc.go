// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the sync daemon together and owns its process
// lifecycle: storage, cloud adapter, downloader, host collaborators, sync
// services, control API and background workers.
package client
