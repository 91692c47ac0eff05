// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sethvargo/go-retry"
)

func TestConstantBackoff_AttemptBudget(t *testing.T) {
	tests := []struct {
		attempts int
		want     int
	}{
		{attempts: 1, want: 1},
		{attempts: 3, want: 3},
		{attempts: 0, want: 1},
	}

	for _, tt := range tests {
		calls := 0
		err := retry.Do(context.Background(), ConstantBackoff(tt.attempts, 0), func(ctx context.Context) error {
			calls++
			return retry.RetryableError(errors.New("transient"))
		})
		if err == nil {
			t.Fatalf("attempts=%d: expected error", tt.attempts)
		}
		if calls != tt.want {
			t.Errorf("attempts=%d: expected %d calls, got %d", tt.attempts, tt.want, calls)
		}
	}
}

func TestConstantBackoff_ConstantDelay(t *testing.T) {
	b := ConstantBackoff(4, 5*time.Millisecond)
	for i := 0; i < 3; i++ {
		d, stop := b.Next()
		if stop || d != 5*time.Millisecond {
			t.Fatalf("step %d: expected 5ms, got %s stop=%v", i, d, stop)
		}
	}
	if _, stop := b.Next(); !stop {
		t.Fatal("expected budget to be exhausted")
	}
}
