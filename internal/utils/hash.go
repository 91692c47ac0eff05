// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Example usage:
//
//	signature := utils.HashString(deviceID+":"+nonce, secretKey)
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
