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
	"strconv"
	"strings"
)

const runGamePrefix = "steam://rungameid/"

// BuildRunURL returns the steam:// URL that launches appID through the
// Steam client.
func BuildRunURL(appID string) string {
	return runGamePrefix + appID
}

// IsSteamURL reports whether s is a steam:// protocol URL.
func IsSteamURL(s string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "steam://")
}

// ExtractAppIDFromURL returns the numeric app id from steam://rungameid/<id>
// or steam://<id>/... URLs.
func ExtractAppIDFromURL(u string) (string, bool) {
	u = strings.TrimSpace(u)
	if !IsSteamURL(u) {
		return "", false
	}
	rest := u[len("steam://"):]
	rest = strings.TrimPrefix(rest, "rungameid/")
	rest = strings.TrimPrefix(rest, "run/")

	id, _, _ := strings.Cut(rest, "/")
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return "", false
	}
	return id, true
}
