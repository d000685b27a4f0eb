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

package helpers

import (
	"os"
	"testing"

	"github.com/gameshelf/gameshelf/pkg/catalog"
	"github.com/gameshelf/gameshelf/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryStore(t *testing.T) {
	t.Parallel()

	seed := []catalog.GameRecord{
		{Title: "Doom", Platform: "PC", Genre: "Shooter", ExecutablePath: "/games/doom.exe"},
		{Title: "Portal 2", Platform: "Steam", Genre: "Puzzle", SteamAppID: "620"},
	}
	store, fs := NewMemoryStore(t, seed...)

	require.Equal(t, 2, store.Len())
	_, ok := store.FindBySteamAppID("620")
	assert.True(t, ok)

	_, err := store.Add(catalog.GameRecord{Title: "Quake", Platform: "PC", Genre: "Shooter"})
	require.NoError(t, err)
	require.NoError(t, store.Save())

	onDisk := ReadCatalogFile(t, fs, TestCatalogPath)
	require.Len(t, onDisk, 3)
	assert.Equal(t, "Quake", onDisk[2].Title)
}

func TestNewMemoryStore_Empty(t *testing.T) {
	t.Parallel()

	store, fs := NewMemoryStore(t)
	assert.Equal(t, 0, store.Len())

	_, err := fs.Stat(TestCatalogPath)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewTestConfig(t *testing.T) {
	t.Parallel()

	cfg := NewTestConfig(t)
	assert.Equal(t, config.ThemeDark, cfg.ThemePreference())
	assert.Empty(t, cfg.SteamWebAPIKey())
}
