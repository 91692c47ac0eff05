// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/sethvargo/go-retry"
)

// ConstantBackoff returns a go-retry backoff that allows attempts calls in
// total with the same delay between them. A non-positive delay is replaced by
// one nanosecond and attempts below one are treated as one.
func ConstantBackoff(attempts int, delay time.Duration) retry.Backoff {
	if attempts < 1 {
		attempts = 1
	}
	if delay <= 0 {
		delay = time.Nanosecond
	}
	return retry.WithMaxRetries(uint64(attempts-1), retry.NewConstant(delay))
}
