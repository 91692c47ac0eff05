// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background parts of the sync daemon (control API
// server, periodic sync job, session drain) as one ordered group.
//
// Workers start in registration order and stop in reverse order, so a
// worker registered last is stopped first.
package workers
