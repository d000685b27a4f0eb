// Gameshelf
// Copyright (c) 2026 The Gameshelf Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Gameshelf.
//
// Gameshelf is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gameshelf is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gameshelf.  If not, see <http://www.gnu.org/licenses/>.

package vdfbinary_test

import (
	"bytes"
	"testing"

	"github.com/gameshelf/gameshelf/internal/vdfbinary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeShortcuts() []byte {
	b := &vdfBuilder{}
	b.open("shortcuts")

	b.open("0").
		u32("appid", 3414143657).
		str("AppName", "Control").
		str("Exe", `"C:\Games\Control\Control_DX12.exe"`).
		str("StartDir", `"C:\Games\Control\"`).
		str("icon", "").
		u32("IsHidden", 1).
		open("tags").end().
		end()

	b.open("1").
		u32("appid", 3022575626).
		str("AppName", "Cyberpunk 2077").
		str("Exe", `"D:\Cyberpunk 2077\bin\x64\Cyberpunk2077.exe"`).
		str("StartDir", `"D:\Cyberpunk 2077\bin\x64\"`).
		str("icon", `D:\icons\cyberpunk.ico`).
		str("LaunchOptions", "--launcher-skip").
		u32("IsHidden", 0).
		u32("LastPlayTime", 1700000000).
		open("tags").str("0", "favorite").end().
		end()

	b.open("2").
		u32("appid", 3043193801).
		str("AppName", "Skate 3").
		str("Exe", `"/usr/bin/flatpak"`).
		str("StartDir", `"/usr/bin/"`).
		open("tags").str("0", "Sport").str("1", "Action").str("2", "Skate").end().
		end()

	b.end() // shortcuts
	b.end() // root
	return b.bytes()
}

func TestParseShortcuts(t *testing.T) {
	t.Parallel()

	shortcuts, err := vdfbinary.ParseShortcuts(bytes.NewReader(threeShortcuts()))
	require.NoError(t, err)
	require.Len(t, shortcuts, 3)

	assert.Equal(t, uint32(3414143657), shortcuts[0].AppID)
	assert.Equal(t, "Control", shortcuts[0].AppName)
	assert.Contains(t, shortcuts[0].Exe, "Control_DX12.exe")
	assert.Empty(t, shortcuts[0].Icon)
	assert.True(t, shortcuts[0].IsHidden)
	assert.Empty(t, shortcuts[0].Tags)

	assert.Equal(t, uint32(3022575626), shortcuts[1].AppID)
	assert.Equal(t, "Cyberpunk 2077", shortcuts[1].AppName)
	assert.Contains(t, shortcuts[1].Icon, "cyberpunk.ico")
	assert.Equal(t, "--launcher-skip", shortcuts[1].LaunchOptions)
	assert.Equal(t, uint32(1700000000), shortcuts[1].LastPlayTime)
	assert.False(t, shortcuts[1].IsHidden)
	assert.Equal(t, []string{"favorite"}, shortcuts[1].Tags)

	assert.Equal(t, uint32(3043193801), shortcuts[2].AppID)
	assert.Equal(t, "Skate 3", shortcuts[2].AppName)
	assert.Equal(t, []string{"Sport", "Action", "Skate"}, shortcuts[2].Tags)
}

func TestParseShortcuts_EmptyFile(t *testing.T) {
	t.Parallel()

	_, err := vdfbinary.ParseShortcuts(bytes.NewReader([]byte{}))
	assert.ErrorIs(t, err, vdfbinary.ErrEmptyVDF)
}

func TestParseShortcuts_InvalidFormat(t *testing.T) {
	t.Parallel()

	textVdf := []byte(`"shortcuts" { }`)
	_, err := vdfbinary.ParseShortcuts(bytes.NewReader(textVdf))
	assert.ErrorIs(t, err, vdfbinary.ErrNotBinaryVDF)
}

func TestParseShortcuts_NoShortcutsKey(t *testing.T) {
	t.Parallel()

	b := &vdfBuilder{}
	b.open("other").end().end()

	_, err := vdfbinary.ParseShortcuts(bytes.NewReader(b.bytes()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shortcuts")
}

func TestParseShortcuts_MissingOptionalFields(t *testing.T) {
	t.Parallel()

	b := &vdfBuilder{}
	b.open("shortcuts").
		open("0").
		u32("appid", 0x04030201).
		str("AppName", "Test Game").
		str("Exe", "/path/to/game").
		str("StartDir", "/path/to").
		end().
		end().
		end()

	shortcuts, err := vdfbinary.ParseShortcuts(bytes.NewReader(b.bytes()))
	require.NoError(t, err)
	require.Len(t, shortcuts, 1)

	assert.Equal(t, uint32(0x04030201), shortcuts[0].AppID)
	assert.Equal(t, "Test Game", shortcuts[0].AppName)
	assert.Equal(t, "/path/to/game", shortcuts[0].Exe)
	assert.Equal(t, "/path/to", shortcuts[0].StartDir)
	assert.Empty(t, shortcuts[0].Icon)
	assert.Empty(t, shortcuts[0].LaunchOptions)
	assert.False(t, shortcuts[0].IsHidden)
	assert.Empty(t, shortcuts[0].Tags)
}

func TestParseShortcuts_MissingRequiredField(t *testing.T) {
	t.Parallel()

	fields := []string{"appid", "AppName", "Exe", "StartDir"}

	for _, missing := range fields {
		t.Run("missing_"+missing, func(t *testing.T) {
			t.Parallel()

			b := &vdfBuilder{}
			b.open("shortcuts").open("0")
			if missing != "appid" {
				b.u32("appid", 1)
			}
			for _, f := range fields[1:] {
				if f != missing {
					b.str(f, "/value")
				}
			}
			b.end().end().end()

			_, err := vdfbinary.ParseShortcuts(bytes.NewReader(b.bytes()))
			require.Error(t, err)
			assert.Contains(t, err.Error(), missing)
		})
	}
}

func TestParseShortcuts_TruncatedNumber(t *testing.T) {
	t.Parallel()

	b := &vdfBuilder{}
	b.open("shortcuts").open("0")
	data := append(b.bytes(), 0x02, 'a', 'p', 'p', 'i', 'd', 0x00, 0x01, 0x02)

	_, err := vdfbinary.ParseShortcuts(bytes.NewReader(data))
	require.ErrorIs(t, err, vdfbinary.ErrCorruptedVDF)
}

func TestParseShortcuts_CorruptedFile(t *testing.T) {
	t.Parallel()

	corrupted := []byte{0x00, 's', 'h', 'o', 'r', 't', 'c', 'u', 't', 's', 0x00, 0x00}
	_, err := vdfbinary.ParseShortcuts(bytes.NewReader(corrupted))
	require.Error(t, err)
}

func TestParseShortcuts_UnknownMarker(t *testing.T) {
	t.Parallel()

	data := []byte{0x00, 's', 0x00, 0x09, 'k', 0x00, 0x08, 0x08}
	_, err := vdfbinary.ParseShortcuts(bytes.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0x09")
}

func TestParseShortcuts_NonSequentialIndex(t *testing.T) {
	t.Parallel()

	b := &vdfBuilder{}
	b.open("shortcuts").
		open("1").u32("appid", 1).end().
		end().
		end()

	_, err := vdfbinary.ParseShortcuts(bytes.NewReader(b.bytes()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index")
}

func TestParseShortcuts_EmptyShortcutsMap(t *testing.T) {
	t.Parallel()

	b := &vdfBuilder{}
	b.open("shortcuts").end().end()

	shortcuts, err := vdfbinary.ParseShortcuts(bytes.NewReader(b.bytes()))
	require.NoError(t, err)
	assert.Empty(t, shortcuts)
}
