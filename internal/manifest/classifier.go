// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package manifest decides which entries of a freshly fetched manifest have
// to be downloaded, and reads and writes the manifest files of a content
// domain.
package manifest

import (
	"github.com/MKhiriev/go-device-sync/models"
)

// ChangeClassifier compares one entry of the current manifest with the
// previous manifest.
type ChangeClassifier interface {
	Classify(entry models.ManifestEntry, previous models.Manifest) models.ChangeClassification
}

// SizeClassifier classifies by exact path lookup and size comparison. The
// URL is ignored; size is the only identity proxy the manifests carry.
type SizeClassifier struct{}

func (SizeClassifier) Classify(entry models.ManifestEntry, previous models.Manifest) models.ChangeClassification {
	prev, ok := previous.Lookup(entry.Path)
	switch {
	case !ok:
		return models.New
	case prev.Size == entry.Size:
		return models.Unchanged
	default:
		return models.Modified
	}
}
