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

// Package steam reads a local Steam installation: where it lives, which
// library folders and games it has, per-app metadata from appinfo.vdf, and
// the artwork, cloud save and workshop files that belong to each game.
//
// Nothing in this package requires Steam to be installed. Missing or
// malformed files degrade to empty results and are logged.
package steam

import "errors"

const (
	SteamAppsDir  = "steamapps"
	CommonDir     = "common"
	UserdataDir   = "userdata"
	LibraryFolder = "libraryfolders.vdf"
)

var (
	ErrSteamNotFound = errors.New("steam installation not found")
	ErrInvalidMagic  = errors.New("invalid appinfo.vdf magic header")
	ErrInvalidFormat = errors.New("invalid appinfo.vdf format")
)

// GameInfo identifies one installed game as recorded in its app manifest.
type GameInfo struct {
	AppID           string
	Name            string
	InstallDir      string
	FullInstallPath string
}

// AppDetails is the metadata read for one app from appinfo.vdf. Nil
// pointers and a nil Genres slice mean the field was absent.
type AppDetails struct {
	Type         *string
	Developer    *string
	Publisher    *string
	Description  *string
	OSList       *string
	ReleaseState *string
	Genres       []string
}
