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

package catalog

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
)

// csvRow is the flattened form of a record used for spreadsheet export.
type csvRow struct {
	Title                string `csv:"title"`
	Platform             string `csv:"platform"`
	Genre                string `csv:"genre"`
	ExecutablePath       string `csv:"executable_path"`
	LaunchArguments      string `csv:"launch_arguments"`
	ISOPaths             string `csv:"iso_paths"`
	Artwork              string `csv:"artwork"`
	CloudSavePath        string `csv:"cloud_save_path"`
	SteamAppID           string `csv:"steam_app_id"`
	WorkshopContentPaths string `csv:"workshop_content_paths"`
	Developer            string `csv:"developer"`
	Publisher            string `csv:"publisher"`
	GameType             string `csv:"game_type"`
	OSList               string `csv:"os_list"`
	ReleaseState         string `csv:"release_state"`
	Description          string `csv:"description"`
}

const listSep = ";"

// ExportCSV writes one row per record with a header line. Lists are joined
// with ";" and artwork is written as kind=path pairs sorted by kind.
func ExportCSV(w io.Writer, records []GameRecord) error {
	rows := make([]csvRow, len(records))
	for i := range records {
		r := &records[i]
		rows[i] = csvRow{
			Title:                r.Title,
			Platform:             r.Platform,
			Genre:                r.Genre,
			ExecutablePath:       r.ExecutablePath,
			LaunchArguments:      r.LaunchArguments,
			ISOPaths:             strings.Join(r.ISOPaths, listSep),
			Artwork:              joinArtwork(r.Artwork),
			CloudSavePath:        r.CloudSavePath,
			SteamAppID:           r.SteamAppID,
			WorkshopContentPaths: strings.Join(r.WorkshopContentPaths, listSep),
			Developer:            r.Developer,
			Publisher:            r.Publisher,
			GameType:             r.GameType,
			OSList:               r.OSList,
			ReleaseState:         r.ReleaseState,
			Description:          r.Description,
		}
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func joinArtwork(art map[string]string) string {
	kinds := make([]string, 0, len(art))
	for k := range art {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	pairs := make([]string, len(kinds))
	for i, k := range kinds {
		pairs[i] = k + "=" + art[k]
	}
	return strings.Join(pairs, listSep)
}
