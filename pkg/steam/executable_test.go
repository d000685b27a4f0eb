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

package steam

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindExecutable(t *testing.T) {
	t.Parallel()

	t.Run("title_match_sorted_before_launcher", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, "Launcher.exe"), "x")
		writeFile(t, filepath.Join(root, "CoolGame.exe"), "x")

		for range 5 {
			got, ok := FindExecutable(root, "Cool Game")
			assert.True(t, ok)
			assert.Equal(t, filepath.Join(root, "CoolGame.exe"), got)
		}
	})

	t.Run("generic_name_earlier_in_walk_wins", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, "Game.exe"), "x")
		writeFile(t, filepath.Join(root, "sub", "Portal.exe"), "x")

		got, ok := FindExecutable(root, "Portal")
		assert.True(t, ok)
		assert.Equal(t, filepath.Join(root, "Game.exe"), got)
	})

	t.Run("substring_match_earlier_in_walk_wins", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a", "portal_tools.exe"), "x")
		writeFile(t, filepath.Join(root, "portal.exe"), "x")

		got, ok := FindExecutable(root, "Portal")
		assert.True(t, ok)
		assert.Equal(t, filepath.Join(root, "a", "portal_tools.exe"), got)
	})

	t.Run("engine_binaries_dir_searched_first", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, "Hades.exe"), "x")
		win64 := filepath.Join(root, "Binaries", "Win64", "Hades.exe")
		writeFile(t, win64, "x")

		got, ok := FindExecutable(root, "Hades")
		assert.True(t, ok)
		assert.Equal(t, win64, got)
	})

	t.Run("underscore_and_first_word_patterns", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, "bin", "Dark_Souls.EXE"), "x")

		got, ok := FindExecutable(root, "Dark Souls")
		assert.True(t, ok)
		assert.Equal(t, filepath.Join(root, "bin", "Dark_Souls.EXE"), got)

		root2 := t.TempDir()
		writeFile(t, filepath.Join(root2, "x64", "witcher.exe"), "x")
		got, ok = FindExecutable(root2, "Witcher 3 Wild Hunt")
		assert.True(t, ok)
		assert.Equal(t, filepath.Join(root2, "x64", "witcher.exe"), got)
	})

	t.Run("substring_match", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, "unins000.exe"), "x")
		writeFile(t, filepath.Join(root, "game", "terraria_server.exe"), "x")

		got, ok := FindExecutable(root, "Terraria")
		assert.True(t, ok)
		assert.Equal(t, filepath.Join(root, "game", "terraria_server.exe"), got)
	})

	t.Run("generic_fallback", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, "crashreporter.exe"), "x")
		writeFile(t, filepath.Join(root, "Game.exe"), "x")

		got, ok := FindExecutable(root, "Something Else")
		assert.True(t, ok)
		assert.Equal(t, filepath.Join(root, "Game.exe"), got)
	})

	t.Run("no_match", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, "readme.txt"), "x")
		writeFile(t, filepath.Join(root, "tool.exe"), "x")

		_, ok := FindExecutable(root, "Portal")
		assert.False(t, ok)

		_, ok = FindExecutable(filepath.Join(root, "missing"), "Portal")
		assert.False(t, ok)

		_, ok = FindExecutable(root, "   ")
		assert.False(t, ok)
	})
}
