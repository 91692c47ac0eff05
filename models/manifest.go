// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Category classifies a manifest entry. It only affects how the local
// destination path is built.
type Category string

const (
	CategoryFirmwareResource Category = "firmware_resource"
	CategoryAudioPack        Category = "audio_pack"
	CategoryAlarmClip        Category = "alarm_clip"
	CategoryAccountAsset     Category = "account_asset"
)

// ManifestEntry is one addressable remote artifact.
type ManifestEntry struct {
	// Path is the canonical local destination relative to the domain root.
	// Unique within a manifest.
	Path string `json:"path"`
	// URL is the current download location. It may change between manifest
	// generations without implying a content change.
	URL string `json:"url"`
	// Size is the expected byte length and the only identity proxy available.
	Size int64 `json:"size"`
	// Category informs destination path construction.
	Category Category `json:"category"`
	// Required entries fail the enclosing stage when they cannot be fetched.
	Required bool `json:"required,omitempty"`
}

// Manifest is an ordered collection of entries keyed by Path.
type Manifest struct {
	Version string          `json:"version,omitempty"`
	Entries []ManifestEntry `json:"entries"`

	index map[string]int
}

// NewManifest builds a Manifest from entries preserving their order.
func NewManifest(version string, entries []ManifestEntry) Manifest {
	m := Manifest{Version: version, Entries: entries}
	m.buildIndex()
	return m
}

func (m *Manifest) buildIndex() {
	m.index = make(map[string]int, len(m.Entries))
	for i, e := range m.Entries {
		m.index[e.Path] = i
	}
}

// Lookup returns the entry stored under path.
func (m Manifest) Lookup(path string) (ManifestEntry, bool) {
	if m.index == nil {
		for _, e := range m.Entries {
			if e.Path == path {
				return e, true
			}
		}
		return ManifestEntry{}, false
	}

	i, ok := m.index[path]
	if !ok {
		return ManifestEntry{}, false
	}
	return m.Entries[i], true
}

// Len returns the number of entries.
func (m Manifest) Len() int {
	return len(m.Entries)
}

// ChangeClassification is the verdict of the manifest differencer for one entry.
type ChangeClassification int

const (
	Unchanged ChangeClassification = iota
	Modified
	New
)

var classificationNames = []string{"unchanged", "modified", "new"}

func (c ChangeClassification) String() string {
	if c < 0 || int(c) >= len(classificationNames) {
		return "unknown"
	}
	return classificationNames[c]
}

// Download reasons attached to plan items.
const (
	ReasonNew           = "new"
	ReasonModified      = "modified"
	ReasonLocalMismatch = "local_mismatch"
)

// PlanItem is one manifest entry together with its classification and the
// decision whether it has to be fetched.
type PlanItem struct {
	Entry    ManifestEntry
	Class    ChangeClassification
	Download bool
	Reason   string
}

// SyncPlan lists every entry of the current manifest in manifest order.
type SyncPlan struct {
	Items []PlanItem
}

// Downloads returns the items that have to be fetched, in manifest order.
func (p SyncPlan) Downloads() []PlanItem {
	out := make([]PlanItem, 0, len(p.Items))
	for _, it := range p.Items {
		if it.Download {
			out = append(out, it)
		}
	}
	return out
}

// Count returns the number of items carrying class c.
func (p SyncPlan) Count(c ChangeClassification) int {
	n := 0
	for _, it := range p.Items {
		if it.Class == c {
			n++
		}
	}
	return n
}

// ResourceManifestDocument is the wire shape of resource.json.
type ResourceManifestDocument struct {
	Version string         `json:"version"`
	Files   []ResourceFile `json:"files"`
}

// ResourceFile is one file of the resource manifest.
type ResourceFile struct {
	Path string `json:"path"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// AccountManifestDocument is the wire shape of account_file.json.
type AccountManifestDocument struct {
	AccountID string        `json:"account_id"`
	Version   string        `json:"version,omitempty"`
	Audio     []AccountFile `json:"audio"`
	Alarms    []AccountFile `json:"alarms"`
	Assets    []AccountFile `json:"assets"`
}

// AccountFile is one file of the account manifest.
type AccountFile struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	Required *bool  `json:"required,omitempty"`
}
