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
	"strings"

	"github.com/gameshelf/gameshelf/pkg/helpers"
	"github.com/rs/zerolog/log"
)

// Artwork kinds stored on a catalog record.
const (
	ArtworkHero   = "hero"
	ArtworkGrid   = "grid"
	ArtworkHeader = "header"
	ArtworkLogo   = "logo"
	ArtworkIcon   = "icon"
)

// iconFile is the hashed icon name the library cache uses for client icons.
const iconFile = "82afae56cfd88514886adb316b6d0f672dcbfaea.jpg"

var artworkFiles = []struct {
	kind string
	file string
}{
	{ArtworkHero, "library_hero.jpg"},
	{ArtworkGrid, "library_600x900.jpg"},
	{ArtworkHeader, "library_header.jpg"},
	{ArtworkLogo, "logo.png"},
	{ArtworkIcon, iconFile},
}

// ArtworkPaths returns the cached library artwork for appID that exists
// on disk, keyed by kind.
func ArtworkPaths(installPath, appID string) map[string]string {
	art := make(map[string]string)
	if installPath == "" || appID == "" {
		return art
	}

	base := filepath.Join(installPath, "appcache", "librarycache", appID)
	if !helpers.DirExists(base) {
		return art
	}

	for _, f := range artworkFiles {
		p := filepath.Join(base, f.file)
		if helpers.FileExists(p) {
			art[f.kind] = p
		}
	}
	return art
}

// CloudSavePath returns userdata/<user>/<appid>/remote for the first
// numeric user directory. Only one account is considered.
func CloudSavePath(userdataPath, appID string) (string, bool) {
	if userdataPath == "" || appID == "" {
		return "", false
	}

	entries, err := os.ReadDir(userdataPath)
	if err != nil {
		log.Debug().Err(err).Msg("failed to list userdata")
		return "", false
	}

	for _, e := range entries {
		if !e.IsDir() || !isDigits(e.Name()) {
			continue
		}
		p := filepath.Join(userdataPath, e.Name(), appID, "remote")
		if helpers.DirExists(p) {
			return p, true
		}
		return "", false
	}
	return "", false
}

// WorkshopContentPaths lists the downloaded workshop item directories for
// appID under the primary library.
func WorkshopContentPaths(installPath, appID string) []string {
	paths := []string{}
	if installPath == "" || appID == "" {
		return paths
	}

	base := filepath.Join(installPath, SteamAppsDir, "workshop", "content", appID)
	entries, err := os.ReadDir(base)
	if err != nil {
		return paths
	}

	for _, e := range entries {
		if e.IsDir() {
			paths = append(paths, filepath.Join(base, e.Name()))
		}
	}
	return paths
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	return strings.Trim(s, "0123456789") == ""
}
