// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manifest

import (
	"path/filepath"

	"github.com/MKhiriev/go-device-sync/models"
	"github.com/spf13/afero"
)

// LocalValidator confirms that the local copy of an entry is present and
// complete.
type LocalValidator interface {
	Valid(entry models.ManifestEntry) bool
}

// FileValidator checks that <root>/<entry.Path> is a regular file of the
// expected size.
type FileValidator struct {
	fs   afero.Fs
	root string
}

func NewFileValidator(fs afero.Fs, root string) *FileValidator {
	return &FileValidator{fs: fs, root: root}
}

func (v *FileValidator) Valid(entry models.ManifestEntry) bool {
	info, err := v.fs.Stat(filepath.Join(v.root, filepath.FromSlash(entry.Path)))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Size() == entry.Size
}
