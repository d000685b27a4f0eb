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
	"sort"
	"strconv"
	"strings"

	"github.com/gameshelf/gameshelf/pkg/helpers"
	"github.com/rs/zerolog/log"
)

// ListLibraryFolders returns the steamapps directory of every Steam
// library, primary install first, without duplicates. Secondary libraries
// come from steamapps/libraryfolders.vdf and are kept only if their
// steamapps directory exists. If the descriptor cannot be read the primary
// steamapps directory is returned alone, or nothing if it is missing too.
func ListLibraryFolders(installPath string) []string {
	if installPath == "" {
		return []string{}
	}

	primary := filepath.Join(installPath, SteamAppsDir)
	fallback := func() []string {
		if helpers.DirExists(primary) {
			return []string{primary}
		}
		return []string{}
	}

	descriptor := filepath.Join(primary, LibraryFolder)
	m, err := readTextVDF(descriptor)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read library folders, using primary library only")
		return fallback()
	}

	lfs, ok := m["libraryfolders"].(map[string]any)
	if !ok {
		log.Warn().Str("path", descriptor).Msg("libraryfolders block not found")
		return fallback()
	}

	folders := make([]string, 0, len(lfs)+1)
	seen := make(map[string]struct{}, len(lfs)+1)
	add := func(p string) {
		key := helpers.NormalizePathForComparison(p)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		folders = append(folders, p)
	}

	if helpers.DirExists(primary) {
		add(primary)
	}

	for _, libPath := range libraryPaths(lfs) {
		steamApps := filepath.Join(libPath, SteamAppsDir)
		if !helpers.DirExists(steamApps) {
			log.Debug().Str("path", steamApps).Msg("skipping missing library folder")
			continue
		}
		add(steamApps)
	}

	return folders
}

// libraryPaths extracts library roots from numeric keys in numeric order.
// Newer files nest the path in a block ("1" { "path" "..." }), older ones
// store it directly ("1" "...").
func libraryPaths(lfs map[string]any) []string {
	type entry struct {
		path string
		idx  int
	}

	entries := make([]entry, 0, len(lfs))
	for k, v := range lfs {
		idx, err := strconv.Atoi(k)
		if err != nil {
			continue
		}

		var p string
		switch val := v.(type) {
		case string:
			p = val
		case map[string]any:
			p, _ = val["path"].(string)
		}
		if p == "" {
			continue
		}
		entries = append(entries, entry{idx: idx, path: unescapeVDFPath(p)})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].idx < entries[j].idx
	})

	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.path
	}
	return paths
}

func unescapeVDFPath(p string) string {
	return strings.ReplaceAll(p, `\\`, `\`)
}
