// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manifest

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/MKhiriev/go-device-sync/models"
)

// Parser decodes raw manifest bytes.
type Parser func(data []byte) (models.Manifest, error)

// Destination templates of account manifest items, relative to the
// account content root.
const (
	AudioDir  = "audio"
	AlarmsDir = "alarms"
	AssetsDir = "assets"
)

// ParseResourceManifest decodes resource.json.
func ParseResourceManifest(data []byte) (models.Manifest, error) {
	var doc models.ResourceManifestDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Manifest{}, fmt.Errorf("%w: %w", ErrManifestParse, err)
	}
	return ResourceManifest(doc)
}

// ResourceManifest converts a decoded resource document.
func ResourceManifest(doc models.ResourceManifestDocument) (models.Manifest, error) {
	entries := make([]models.ManifestEntry, 0, len(doc.Files))
	for _, f := range doc.Files {
		entries = append(entries, models.ManifestEntry{
			Path:     f.Path,
			URL:      f.URL,
			Size:     f.Size,
			Category: models.CategoryFirmwareResource,
		})
	}
	return build(doc.Version, entries)
}

// ParseAccountManifest decodes account_file.json.
func ParseAccountManifest(data []byte) (models.Manifest, error) {
	var doc models.AccountManifestDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Manifest{}, fmt.Errorf("%w: %w", ErrManifestParse, err)
	}
	return AccountManifest(doc)
}

// AccountManifest converts a decoded account document. Audio packs land
// under audio/, alarm clips under alarms/ and assets under assets/. Alarm
// clips are required unless the document says otherwise.
func AccountManifest(doc models.AccountManifestDocument) (models.Manifest, error) {
	entries := make([]models.ManifestEntry, 0, len(doc.Audio)+len(doc.Alarms)+len(doc.Assets))

	groups := []struct {
		dir      string
		category models.Category
		required bool
		files    []models.AccountFile
	}{
		{AudioDir, models.CategoryAudioPack, false, doc.Audio},
		{AlarmsDir, models.CategoryAlarmClip, true, doc.Alarms},
		{AssetsDir, models.CategoryAccountAsset, false, doc.Assets},
	}

	for _, g := range groups {
		for _, f := range g.files {
			if f.Name == "" || f.Name == "." {
				return models.Manifest{}, fmt.Errorf("%w: empty file name in %s", ErrManifestParse, g.dir)
			}
			if f.Name == ".." || strings.Contains(f.Name, "/") {
				return models.Manifest{}, fmt.Errorf("%w: unsafe file name %q in %s", ErrManifestParse, f.Name, g.dir)
			}
			required := g.required
			if f.Required != nil {
				required = *f.Required
			}
			entries = append(entries, models.ManifestEntry{
				Path:     path.Join(g.dir, f.Name),
				URL:      f.URL,
				Size:     f.Size,
				Category: g.category,
				Required: required,
			})
		}
	}

	return build(doc.Version, entries)
}

func build(version string, entries []models.ManifestEntry) (models.Manifest, error) {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if err := validateEntry(e); err != nil {
			return models.Manifest{}, err
		}
		if _, dup := seen[e.Path]; dup {
			return models.Manifest{}, fmt.Errorf("%w: duplicate path %q", ErrManifestParse, e.Path)
		}
		seen[e.Path] = struct{}{}
	}
	return models.NewManifest(version, entries), nil
}

func validateEntry(e models.ManifestEntry) error {
	switch {
	case e.Path == "" || strings.HasSuffix(e.Path, "/"):
		return fmt.Errorf("%w: empty file name", ErrManifestParse)
	case e.Path == "." || e.Path == ".." || strings.HasPrefix(e.Path, "../"),
		path.IsAbs(e.Path) || path.Clean(e.Path) != e.Path:
		return fmt.Errorf("%w: unsafe path %q", ErrManifestParse, e.Path)
	case e.URL == "":
		return fmt.Errorf("%w: missing url for %q", ErrManifestParse, e.Path)
	case e.Size < 0:
		return fmt.Errorf("%w: negative size for %q", ErrManifestParse, e.Path)
	}
	return nil
}
