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

func TestArtworkPaths(t *testing.T) {
	t.Parallel()

	install := t.TempDir()
	cache := mkdir(t, install, "appcache", "librarycache", "400")
	writeFile(t, filepath.Join(cache, "library_hero.jpg"), "x")
	writeFile(t, filepath.Join(cache, "library_600x900.jpg"), "x")
	writeFile(t, filepath.Join(cache, "logo.png"), "x")
	mkdir(t, cache, "library_header.jpg")

	got := ArtworkPaths(install, "400")
	assert.Equal(t, map[string]string{
		ArtworkHero: filepath.Join(cache, "library_hero.jpg"),
		ArtworkGrid: filepath.Join(cache, "library_600x900.jpg"),
		ArtworkLogo: filepath.Join(cache, "logo.png"),
	}, got)

	assert.Empty(t, ArtworkPaths(install, "620"))
	assert.Empty(t, ArtworkPaths("", "400"))
}

func TestCloudSavePath(t *testing.T) {
	t.Parallel()

	t.Run("first_numeric_user", func(t *testing.T) {
		t.Parallel()

		userdata := t.TempDir()
		mkdir(t, userdata, "anonymous")
		remote := mkdir(t, userdata, "12345", "400", "remote")
		mkdir(t, userdata, "99999", "400", "remote")

		got, ok := CloudSavePath(userdata, "400")
		assert.True(t, ok)
		assert.Equal(t, remote, got)
	})

	t.Run("remote_missing_for_first_user", func(t *testing.T) {
		t.Parallel()

		userdata := t.TempDir()
		mkdir(t, userdata, "12345", "400")
		mkdir(t, userdata, "99999", "400", "remote")

		_, ok := CloudSavePath(userdata, "400")
		assert.False(t, ok)
	})

	t.Run("no_users", func(t *testing.T) {
		t.Parallel()

		_, ok := CloudSavePath(t.TempDir(), "400")
		assert.False(t, ok)
		_, ok = CloudSavePath("", "400")
		assert.False(t, ok)
	})
}

func TestWorkshopContentPaths(t *testing.T) {
	t.Parallel()

	install := t.TempDir()
	base := mkdir(t, install, "steamapps", "workshop", "content", "294100")
	a := mkdir(t, base, "1111")
	b := mkdir(t, base, "2222")
	writeFile(t, filepath.Join(base, "stray.txt"), "x")

	assert.Equal(t, []string{a, b}, WorkshopContentPaths(install, "294100"))

	empty := WorkshopContentPaths(install, "400")
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
