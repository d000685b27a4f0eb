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
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/gameshelf/gameshelf/pkg/catalog"
	"github.com/gameshelf/gameshelf/pkg/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// TestCatalogPath is where NewMemoryStore keeps its catalog file.
const TestCatalogPath = "/data/gameshelf/games.json"

// NewTestConfig returns a config backed by a fresh temp dir with the
// default values written to disk.
func NewTestConfig(t *testing.T) *config.Instance {
	t.Helper()
	cfg, err := config.NewConfig(t.TempDir(), config.BaseDefaults)
	require.NoError(t, err)
	return cfg
}

// NewMemoryStore writes records to a catalog file on an in-memory
// filesystem and loads it. Records are written as is so tests can seed
// data that Add would reject.
func NewMemoryStore(t *testing.T, records ...catalog.GameRecord) (*catalog.Store, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	if len(records) > 0 {
		WriteCatalogFile(t, fs, TestCatalogPath, records)
	}

	store := catalog.NewStore(fs, TestCatalogPath)
	_, err := store.Load()
	require.NoError(t, err)
	return store, fs
}

// WriteCatalogFile writes records to path in the on-disk catalog format.
func WriteCatalogFile(t *testing.T, fs afero.Fs, path string, records []catalog.GameRecord) {
	t.Helper()

	data, err := json.MarshalIndent(records, "", "    ")
	require.NoError(t, err)
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, afero.WriteFile(fs, path, data, 0o600))
}

// ReadCatalogFile decodes the catalog file at path.
func ReadCatalogFile(t *testing.T, fs afero.Fs, path string) []catalog.GameRecord {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	var records []catalog.GameRecord
	require.NoError(t, json.Unmarshal(data, &records))
	return records
}
