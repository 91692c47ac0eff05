// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package device

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// SysfsPower reads /sys/class/power_supply. Each supply is a directory with
// a "type" file; batteries expose "capacity", mains and USB supplies expose
// "online".
type SysfsPower struct {
	fs  afero.Fs
	dir string
}

func NewSysfsPower(fs afero.Fs, dir string) *SysfsPower {
	return &SysfsPower{fs: fs, dir: dir}
}

// BatteryPercent returns the capacity of the first battery.
func (s *SysfsPower) BatteryPercent() (int, error) {
	supplies, err := s.supplies()
	if err != nil {
		return 0, err
	}

	for _, supply := range supplies {
		if supply.kind != "battery" {
			continue
		}
		raw, err := s.read(supply.path, "capacity")
		if err != nil {
			return 0, err
		}
		capacity, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("error parsing capacity of %s: %w", supply.path, err)
		}
		return min(max(capacity, 0), 100), nil
	}

	return 0, ErrNoBattery
}

// ExternalPower reports whether any mains or USB supply is online.
func (s *SysfsPower) ExternalPower() (bool, error) {
	supplies, err := s.supplies()
	if err != nil {
		return false, err
	}

	for _, supply := range supplies {
		if supply.kind != "mains" && supply.kind != "usb" {
			continue
		}
		online, err := s.read(supply.path, "online")
		if err != nil {
			continue
		}
		if online == "1" {
			return true, nil
		}
	}
	return false, nil
}

type powerSupply struct {
	path string
	kind string
}

func (s *SysfsPower) supplies() ([]powerSupply, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, fmt.Errorf("error reading power supplies: %w", err)
	}

	out := make([]powerSupply, 0, len(entries))
	for _, e := range entries {
		path := filepath.Join(s.dir, e.Name())
		kind, err := s.read(path, "type")
		if err != nil {
			continue
		}
		out = append(out, powerSupply{path: path, kind: strings.ToLower(kind)})
	}
	return out, nil
}

func (s *SysfsPower) read(dir, name string) (string, error) {
	b, err := afero.ReadFile(s.fs, filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
