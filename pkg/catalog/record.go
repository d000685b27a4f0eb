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

// Package catalog holds the user's game records and persists them as a
// JSON array. Records are addressed by their position in the catalog.
package catalog

import "slices"

// Artwork kinds.
const (
	ArtworkHero   = "hero"
	ArtworkGrid   = "grid"
	ArtworkHeader = "header"
	ArtworkLogo   = "logo"
	ArtworkIcon   = "icon"
)

// GameRecord is one cataloged game. Title, Platform and Genre are always
// set on a stored record; every other field may be empty. Field order
// matches the on-disk layout.
type GameRecord struct {
	Title                string            `json:"title" validate:"required"`
	Platform             string            `json:"platform" validate:"required"`
	Genre                string            `json:"genre" validate:"required"`
	ExecutablePath       string            `json:"executable_path"`
	LaunchArguments      string            `json:"launch_arguments"`
	ISOPaths             []string          `json:"iso_paths"`
	Artwork              map[string]string `json:"artwork" validate:"dive,keys,oneof=hero grid header logo icon,endkeys"`
	CloudSavePath        string            `json:"cloud_save_path"`
	SteamAppID           string            `json:"steam_app_id"`
	WorkshopContentPaths []string          `json:"workshop_content_paths"`
	Developer            string            `json:"developer"`
	Publisher            string            `json:"publisher"`
	GameType             string            `json:"game_type"`
	OSList               string            `json:"os_list"`
	ReleaseState         string            `json:"release_state"`
	Description          string            `json:"description"`
}

// IsSteam reports whether the record was imported from Steam. Its artwork,
// cloud save and workshop paths come from the Steam install, not the user.
func (r *GameRecord) IsSteam() bool {
	return r.SteamAppID != ""
}

// PrimaryISO returns the image mounted before launch, if any.
func (r *GameRecord) PrimaryISO() (string, bool) {
	if len(r.ISOPaths) == 0 || r.ISOPaths[0] == "" {
		return "", false
	}
	return r.ISOPaths[0], true
}

// Clone returns a deep copy so callers cannot mutate stored slices or maps.
func (r *GameRecord) Clone() GameRecord {
	c := *r
	c.ISOPaths = slices.Clone(r.ISOPaths)
	c.WorkshopContentPaths = slices.Clone(r.WorkshopContentPaths)
	if r.Artwork != nil {
		c.Artwork = make(map[string]string, len(r.Artwork))
		for k, v := range r.Artwork {
			c.Artwork[k] = v
		}
	}
	return c
}
