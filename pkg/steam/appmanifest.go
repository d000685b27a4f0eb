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
	"os"
	"path/filepath"
	"regexp"

	"github.com/gameshelf/gameshelf/pkg/helpers"
	"github.com/rs/zerolog/log"
)

var manifestRe = regexp.MustCompile(`^appmanifest_(\d+)\.acf$`)

// ListInstalledGames reads every appmanifest_<id>.acf in the given
// steamapps folders. Manifests missing appid, name or installdir are
// skipped. Later folders win when an app id appears twice.
func ListInstalledGames(libraryFolders []string) map[string]GameInfo {
	games := make(map[string]GameInfo)

	for _, lib := range libraryFolders {
		entries, err := os.ReadDir(lib)
		if err != nil {
			log.Warn().Err(err).Str("path", lib).Msg("failed to list library folder")
			continue
		}

		for _, e := range entries {
			if e.IsDir() || !manifestRe.MatchString(e.Name()) {
				continue
			}

			info, ok := ReadAppManifest(filepath.Join(lib, e.Name()))
			if !ok {
				continue
			}
			info.FullInstallPath = gameInstallPath(lib, info.InstallDir)
			games[info.AppID] = info
		}
	}

	return games
}

// ReadAppManifest parses a single ACF manifest. It reports false when the
// file is unreadable or a required field is missing.
func ReadAppManifest(manifestPath string) (GameInfo, bool) {
	m, err := readTextVDF(manifestPath)
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse app manifest")
		return GameInfo{}, false
	}

	appState, ok := m["appstate"].(map[string]any)
	if !ok {
		log.Warn().Str("path", manifestPath).Msg("AppState not found in manifest")
		return GameInfo{}, false
	}

	appID, _ := appState["appid"].(string)
	name, _ := appState["name"].(string)
	installDir, _ := appState["installdir"].(string)
	if appID == "" || name == "" || installDir == "" {
		log.Debug().Str("path", manifestPath).Msg("manifest missing required fields")
		return GameInfo{}, false
	}

	return GameInfo{
		AppID:      appID,
		Name:       name,
		InstallDir: installDir,
	}, true
}

// gameInstallPath swaps the trailing steamapps segment of a library folder
// for "common" and appends installDir. Steam itself keeps games under
// steamapps/common, so that location is used when only it exists.
func gameInstallPath(libraryFolder, installDir string) string {
	root := filepath.Dir(filepath.Clean(libraryFolder))
	if !equalFoldBase(libraryFolder, SteamAppsDir) {
		root = libraryFolder
	}
	p := filepath.Join(root, CommonDir, installDir)

	nested := filepath.Join(libraryFolder, CommonDir, installDir)
	if !helpers.DirExists(p) && helpers.DirExists(nested) {
		return nested
	}
	return p
}

func equalFoldBase(path, name string) bool {
	return helpers.NormalizePathForComparison(filepath.Base(path)) == name
}
