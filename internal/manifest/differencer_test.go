// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manifest

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-device-sync/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func entry(path string, size int64, url string) models.ManifestEntry {
	return models.ManifestEntry{Path: path, Size: size, URL: url, Category: models.CategoryFirmwareResource}
}

func writeSized(t *testing.T, fs afero.Fs, path string, size int) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(strings.Repeat("x", size)), 0o644))
}

// ── SizeClassifier ────────────────────────────────────────────────────────────

func TestSizeClassifier_Classify(t *testing.T) {
	previous := models.NewManifest("1", []models.ManifestEntry{
		entry("icons/a.png", 1000, "https://cdn/v1/a.png"),
		entry("icons/b.png", 2000, "https://cdn/v1/b.png"),
	})

	tests := []struct {
		name  string
		entry models.ManifestEntry
		want  models.ChangeClassification
	}{
		{name: "absent is new", entry: entry("icons/c.png", 10, "u"), want: models.New},
		{name: "equal size is unchanged", entry: entry("icons/a.png", 1000, "https://cdn/v1/a.png"), want: models.Unchanged},
		{name: "url change ignored", entry: entry("icons/a.png", 1000, "https://cdn/v2/a.png"), want: models.Unchanged},
		{name: "size change is modified", entry: entry("icons/b.png", 2001, "https://cdn/v1/b.png"), want: models.Modified},
		{name: "size and url change", entry: entry("icons/b.png", 5, "https://other/b.png"), want: models.Modified},
		{name: "path match is exact", entry: entry("Icons/a.png", 1000, "u"), want: models.New},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SizeClassifier{}.Classify(tt.entry, previous))
		})
	}
}

func TestSizeClassifier_EmptyPrevious(t *testing.T) {
	got := SizeClassifier{}.Classify(entry("x", 1, "u"), models.Manifest{})
	assert.Equal(t, models.New, got)
}

// ── FileValidator ─────────────────────────────────────────────────────────────

func TestFileValidator_Valid(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSized(t, fs, "/root/resources/icons/a.png", 1000)
	require.NoError(t, fs.MkdirAll("/root/resources/dir.png", 0o755))
	v := NewFileValidator(fs, "/root/resources")

	assert.True(t, v.Valid(entry("icons/a.png", 1000, "")))
	assert.False(t, v.Valid(entry("icons/a.png", 999, "")))
	assert.False(t, v.Valid(entry("icons/missing.png", 1, "")))
	assert.False(t, v.Valid(entry("dir.png", 0, "")))
}

// ── Differencer ───────────────────────────────────────────────────────────────

// TestDiff_ExampleScenario: a.png unchanged on disk is skipped, b.png is new.
func TestDiff_ExampleScenario(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSized(t, fs, "/root/resources/icons/a.png", 1000)

	previous := models.NewManifest("1", []models.ManifestEntry{entry("icons/a.png", 1000, "u1")})
	current := models.NewManifest("2", []models.ManifestEntry{
		entry("icons/a.png", 1000, "u1"),
		entry("icons/b.png", 2000, "u2"),
	})

	d := NewDifferencer(nil, NewFileValidator(fs, "/root/resources"))
	plan, err := d.Diff(context.Background(), current, previous)
	require.NoError(t, err)

	require.Len(t, plan.Items, 2)
	assert.Equal(t, models.Unchanged, plan.Items[0].Class)
	assert.False(t, plan.Items[0].Download)
	assert.Equal(t, models.New, plan.Items[1].Class)
	assert.True(t, plan.Items[1].Download)
	assert.Equal(t, models.ReasonNew, plan.Items[1].Reason)

	downloads := plan.Downloads()
	require.Len(t, downloads, 1)
	assert.Equal(t, "icons/b.png", downloads[0].Entry.Path)
}

func TestDiff_UnchangedButLocalMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSized(t, fs, "/root/icons/a.png", 10)

	m := models.NewManifest("1", []models.ManifestEntry{
		entry("icons/a.png", 1000, "u"),
		entry("icons/b.png", 20, "u"),
	})

	plan, err := NewDifferencer(SizeClassifier{}, NewFileValidator(fs, "/root")).Diff(context.Background(), m, m)
	require.NoError(t, err)

	for _, it := range plan.Items {
		assert.Equal(t, models.Unchanged, it.Class)
		assert.True(t, it.Download)
		assert.Equal(t, models.ReasonLocalMismatch, it.Reason)
	}
}

// TestDiff_Idempotent: an unchanged manifest with valid local files yields
// zero downloads.
func TestDiff_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSized(t, fs, "/root/a", 3)
	writeSized(t, fs, "/root/b", 4)

	m := models.NewManifest("1", []models.ManifestEntry{entry("a", 3, "u"), entry("b", 4, "u")})
	plan, err := NewDifferencer(nil, NewFileValidator(fs, "/root")).Diff(context.Background(), m, m)
	require.NoError(t, err)

	assert.Empty(t, plan.Downloads())
	assert.Equal(t, 2, plan.Count(models.Unchanged))
}

func TestDiff_PreservesOrderAndIgnoresRemoved(t *testing.T) {
	previous := models.NewManifest("1", []models.ManifestEntry{entry("gone", 1, "u"), entry("b", 2, "u")})
	current := models.NewManifest("2", []models.ManifestEntry{entry("c", 1, "u"), entry("b", 3, "u"), entry("a", 1, "u")})

	plan, err := NewDifferencer(nil, nil).Diff(context.Background(), current, previous)
	require.NoError(t, err)

	require.Len(t, plan.Items, 3)
	assert.Equal(t, "c", plan.Items[0].Entry.Path)
	assert.Equal(t, models.Modified, plan.Items[1].Class)
	assert.Equal(t, models.ReasonModified, plan.Items[1].Reason)
	assert.Equal(t, "a", plan.Items[2].Entry.Path)
}

func TestDiff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := models.NewManifest("1", []models.ManifestEntry{entry("a", 1, "u")})
	_, err := NewDifferencer(nil, nil).Diff(ctx, m, models.Manifest{})
	assert.ErrorIs(t, err, context.Canceled)
}

// hashClassifier stands in for a content-hash based classifier.
type hashClassifier struct{ verdict models.ChangeClassification }

func (h hashClassifier) Classify(models.ManifestEntry, models.Manifest) models.ChangeClassification {
	return h.verdict
}

func TestDiff_CustomClassifier(t *testing.T) {
	m := models.NewManifest("1", []models.ManifestEntry{entry("a", 1, "u")})

	plan, err := NewDifferencer(hashClassifier{verdict: models.Modified}, nil).Diff(context.Background(), m, m)
	require.NoError(t, err)
	assert.True(t, plan.Items[0].Download)
}
