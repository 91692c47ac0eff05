// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manifest

import "errors"

var (
	// ErrManifestParse is returned for malformed or invalid manifest documents.
	ErrManifestParse = errors.New("manifest parse failure")
	// ErrManifestNotFound is returned by Store.Load when the file is absent.
	ErrManifestNotFound = errors.New("manifest not found")
)
