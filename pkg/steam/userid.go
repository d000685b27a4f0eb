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
	"regexp"
	"strconv"

	"github.com/rs/zerolog/log"
)

var steamID64Re = regexp.MustCompile(`^7656\d{13}$`)

// CurrentUserID returns the first userdata entry that looks like a
// SteamID64. Steam normally names these folders by 32-bit account id, so
// a configured user id should be preferred when available.
func CurrentUserID(userdataPath string) (string, bool) {
	if userdataPath == "" {
		return "", false
	}

	entries, err := os.ReadDir(userdataPath)
	if err != nil {
		log.Warn().Err(err).Str("path", userdataPath).Msg("invalid Steam userdata path")
		return "", false
	}

	for _, e := range entries {
		if e.IsDir() && steamID64Re.MatchString(e.Name()) {
			return e.Name(), true
		}
	}
	return "", false
}

// IsSteamID64 reports whether id has the shape of a SteamID64.
func IsSteamID64(id string) bool {
	return steamID64Re.MatchString(id)
}

// steamID64Base is the SteamID64 of account id 0 in the public universe.
const steamID64Base = 76561197960265728

// AccountID converts a SteamID64 to the 32-bit account id Steam uses to
// name userdata folders. Plain account ids are returned unchanged.
func AccountID(id string) (string, bool) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return "", false
	}
	if !IsSteamID64(id) {
		if n > 0xFFFFFFFF {
			return "", false
		}
		return id, true
	}
	if n < steamID64Base || n-steamID64Base > 0xFFFFFFFF {
		return "", false
	}
	return strconv.FormatUint(n-steamID64Base, 10), true
}
