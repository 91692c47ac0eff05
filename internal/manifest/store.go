// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-device-sync/internal/transaction"
	"github.com/MKhiriev/go-device-sync/models"
	"github.com/spf13/afero"
)

// Store reads and writes manifest files on fs.
type Store struct {
	fs afero.Fs
}

func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// Load reads and parses the manifest at path.
func (s *Store) Load(path string, parse Parser) (models.Manifest, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Manifest{}, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return models.Manifest{}, fmt.Errorf("error reading manifest %s: %w", path, err)
	}
	return parse(data)
}

// LoadPrevious reads <path>.bak, the manifest of the last successful sync.
// A missing backup yields an empty manifest, so every entry classifies NEW.
// An unreadable backup is treated the same way.
func (s *Store) LoadPrevious(path string, parse Parser) (models.Manifest, error) {
	m, err := s.Load(transaction.BackupPath(path), parse)
	if errors.Is(err, ErrManifestNotFound) || errors.Is(err, ErrManifestParse) {
		return models.NewManifest("", nil), nil
	}
	return m, err
}

// HasPrevious reports whether <path>.bak exists, i.e. the previous diff has
// not been fully consumed yet.
func (s *Store) HasPrevious(path string) bool {
	ok, err := afero.Exists(s.fs, transaction.BackupPath(path))
	return err == nil && ok
}

// ReadPrevious returns the raw content of <path>.bak and whether it exists.
func (s *Store) ReadPrevious(path string) ([]byte, bool) {
	data, err := afero.ReadFile(s.fs, transaction.BackupPath(path))
	if err != nil {
		return nil, false
	}
	return data, true
}

// RetainPrevious writes data back as <path>.bak after a manifest commit
// replaced a backup whose diff was not fully consumed.
func (s *Store) RetainPrevious(path string, data []byte) error {
	if err := afero.WriteFile(s.fs, transaction.BackupPath(path), data, 0o644); err != nil {
		return fmt.Errorf("error retaining previous manifest: %w", err)
	}
	return nil
}

// WriteTemp writes data to <path>.tmp, ready for a transaction.
func (s *Store) WriteTemp(path string, data []byte) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating manifest dir: %w", err)
	}
	if err := afero.WriteFile(s.fs, transaction.TempPath(path), data, 0o644); err != nil {
		return fmt.Errorf("error writing manifest temp file: %w", err)
	}
	return nil
}

// ReadMarker returns the content of a version marker file, "" when absent.
func (s *Store) ReadMarker(path string) string {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return ""
	}
	return string(data)
}

// WriteMarker replaces the version marker at path transactionally.
func (s *Store) WriteMarker(path, version string) error {
	if err := afero.WriteFile(s.fs, transaction.TempPath(path), []byte(version), 0o644); err != nil {
		return fmt.Errorf("error writing marker temp file: %w", err)
	}
	return transaction.New(s.fs, path).Commit()
}
