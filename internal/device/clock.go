// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package device

import "time"

// SystemClock is the real Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
