// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package device

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const supplyDir = "/sys/class/power_supply"

func writeSupply(t *testing.T, fs afero.Fs, name string, files map[string]string) {
	t.Helper()
	for file, content := range files {
		require.NoError(t, afero.WriteFile(fs, supplyDir+"/"+name+"/"+file, []byte(content+"\n"), 0o644))
	}
}

func TestSysfsPower_BatteryAndMains(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSupply(t, fs, "AC", map[string]string{"type": "Mains", "online": "1"})
	writeSupply(t, fs, "BAT0", map[string]string{"type": "Battery", "capacity": "64"})

	p := NewSysfsPower(fs, supplyDir)

	pct, err := p.BatteryPercent()
	require.NoError(t, err)
	assert.Equal(t, 64, pct)

	ext, err := p.ExternalPower()
	require.NoError(t, err)
	assert.True(t, ext)
}

func TestSysfsPower_OnBattery(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSupply(t, fs, "usb", map[string]string{"type": "USB", "online": "0"})
	writeSupply(t, fs, "battery", map[string]string{"type": "Battery", "capacity": "120"})

	p := NewSysfsPower(fs, supplyDir)

	pct, err := p.BatteryPercent()
	require.NoError(t, err)
	assert.Equal(t, 100, pct)

	ext, err := p.ExternalPower()
	require.NoError(t, err)
	assert.False(t, ext)
}

func TestSysfsPower_NoBattery(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSupply(t, fs, "AC", map[string]string{"type": "Mains", "online": "1"})

	_, err := NewSysfsPower(fs, supplyDir).BatteryPercent()
	assert.ErrorIs(t, err, ErrNoBattery)
}

func TestSysfsPower_MalformedCapacity(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSupply(t, fs, "BAT0", map[string]string{"type": "Battery", "capacity": "full"})

	_, err := NewSysfsPower(fs, supplyDir).BatteryPercent()
	assert.Error(t, err)
}

func TestSysfsPower_MissingDir(t *testing.T) {
	_, err := NewSysfsPower(afero.NewMemMapFs(), "/nope").ExternalPower()
	assert.Error(t, err)
}
