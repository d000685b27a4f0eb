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

func TestLocatorFindInstallPath(t *testing.T) {
	t.Parallel()

	t.Run("override_wins", func(t *testing.T) {
		t.Parallel()

		override := t.TempDir()
		registry := t.TempDir()
		l := &Locator{
			Override:      override,
			RegistryPaths: func() []string { return []string{registry} },
		}

		got, err := l.FindInstallPath()
		require.NoError(t, err)
		assert.Equal(t, override, got)
	})

	t.Run("registry_64bit_record_before_32bit", func(t *testing.T) {
		t.Parallel()

		wow := t.TempDir()
		native := t.TempDir()
		l := &Locator{
			Override:      filepath.Join(t.TempDir(), "missing"),
			RegistryPaths: func() []string { return []string{wow, native} },
			Candidates:    []string{t.TempDir()},
		}

		got, err := l.FindInstallPath()
		require.NoError(t, err)
		assert.Equal(t, wow, got)
	})

	t.Run("registry_entry_missing_on_disk_falls_through", func(t *testing.T) {
		t.Parallel()

		native := t.TempDir()
		l := &Locator{
			RegistryPaths: func() []string {
				return []string{filepath.Join(t.TempDir(), "gone"), native}
			},
		}

		got, err := l.FindInstallPath()
		require.NoError(t, err)
		assert.Equal(t, native, got)
	})

	t.Run("first_existing_candidate", func(t *testing.T) {
		t.Parallel()

		second := t.TempDir()
		l := &Locator{
			Candidates: []string{filepath.Join(t.TempDir(), "nope"), second, t.TempDir()},
		}

		got, err := l.FindInstallPath()
		require.NoError(t, err)
		assert.Equal(t, second, got)
	})

	t.Run("not_found", func(t *testing.T) {
		t.Parallel()

		l := &Locator{Candidates: []string{filepath.Join(t.TempDir(), "nope")}}

		got, err := l.FindInstallPath()
		require.ErrorIs(t, err, ErrSteamNotFound)
		assert.Empty(t, got)
	})
}

func TestFindUserdataPath(t *testing.T) {
	t.Parallel()

	install := t.TempDir()
	_, ok := FindUserdataPath(install)
	assert.False(t, ok)

	userdata := mkdir(t, install, "userdata")
	got, ok := FindUserdataPath(install)
	assert.True(t, ok)
	assert.Equal(t, userdata, got)

	_, ok = FindUserdataPath("")
	assert.False(t, ok)
}
