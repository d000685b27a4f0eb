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
	"github.com/stretchr/testify/require"
)

func TestReadAppManifest(t *testing.T) {
	t.Parallel()

	t.Run("reads_valid_manifest", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		createMockManifest(t, dir, "250900", "The Binding of Isaac: Rebirth", "The Binding of Isaac Rebirth")

		info, ok := ReadAppManifest(filepath.Join(dir, "appmanifest_250900.acf"))
		require.True(t, ok)
		assert.Equal(t, "250900", info.AppID)
		assert.Equal(t, "The Binding of Isaac: Rebirth", info.Name)
		assert.Equal(t, "The Binding of Isaac Rebirth", info.InstallDir)
	})

	t.Run("mixed_case_keys", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		p := filepath.Join(dir, "appmanifest_70.acf")
		writeFile(t, p, `"appstate"
{
	"AppID"		"70"
	"Name"		"Half-Life"
	"InstallDir"		"Half-Life"
}
`)

		info, ok := ReadAppManifest(p)
		require.True(t, ok)
		assert.Equal(t, "70", info.AppID)
		assert.Equal(t, "Half-Life", info.Name)
	})

	t.Run("missing_required_field", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		p := filepath.Join(dir, "appmanifest_10.acf")
		writeFile(t, p, `"AppState"
{
	"appid"		"10"
	"name"		"Counter-Strike"
}
`)

		_, ok := ReadAppManifest(p)
		assert.False(t, ok)
	})

	t.Run("missing_file", func(t *testing.T) {
		t.Parallel()

		_, ok := ReadAppManifest(filepath.Join(t.TempDir(), "appmanifest_1.acf"))
		assert.False(t, ok)
	})
}

func TestListInstalledGames(t *testing.T) {
	t.Parallel()

	libRoot := t.TempDir()
	lib := mkdir(t, libRoot, "steamapps")
	createMockManifest(t, lib, "620", "Portal 2", "Portal 2")
	createMockManifest(t, lib, "400", "Portal", "Portal")
	writeFile(t, filepath.Join(lib, "appmanifest_999.acf"), `"AppState" { "appid" "999" }`)
	writeFile(t, filepath.Join(lib, "appmanifest_abc.acf"), `"AppState" { "appid" "1" "name" "x" "installdir" "x" }`)
	writeFile(t, filepath.Join(lib, "libraryfolders.vdf"), `"libraryfolders" {}`)

	otherRoot := t.TempDir()
	other := mkdir(t, otherRoot, "steamapps")
	createMockManifest(t, other, "105600", "Terraria", "Terraria")

	games := ListInstalledGames([]string{lib, other, filepath.Join(t.TempDir(), "missing")})

	require.Len(t, games, 3)
	assert.Equal(t, "Portal 2", games["620"].Name)
	assert.Equal(t, filepath.Join(libRoot, "common", "Portal 2"), games["620"].FullInstallPath)
	assert.Equal(t, "Terraria", games["105600"].Name)
	assert.Equal(t, filepath.Join(otherRoot, "common", "Terraria"), games["105600"].FullInstallPath)
	assert.NotContains(t, games, "999")
}

func TestGameInstallPathPrefersExistingSteamLayout(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	lib := mkdir(t, root, "steamapps")
	nested := mkdir(t, lib, "common", "Hades")

	assert.Equal(t, nested, gameInstallPath(lib, "Hades"))

	flat := mkdir(t, root, "common", "Hades")
	assert.Equal(t, flat, gameInstallPath(lib, "Hades"))
}
