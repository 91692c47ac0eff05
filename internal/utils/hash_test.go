// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestHashString_MatchesHMAC(t *testing.T) {
	h := hmac.New(sha256.New, []byte("key"))
	h.Write([]byte("dev-1:nonce"))
	want := hex.EncodeToString(h.Sum(nil))

	if got := HashString("dev-1:nonce", "key"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestHashString_DifferentKeys(t *testing.T) {
	if HashString("data", "a") == HashString("data", "b") {
		t.Error("expected different signatures for different keys")
	}
}

func TestHashString_Deterministic(t *testing.T) {
	if HashString("data", "k") != HashString("data", "k") {
		t.Error("expected identical signatures for identical input")
	}
}
