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
	"fmt"
	"os"
	"path/filepath"

	"github.com/gameshelf/gameshelf/internal/vdfbinary"
	"github.com/rs/zerolog/log"
)

// ReadShortcuts returns the non-Steam games of every user under userdata,
// or only of userID when it is set.
func ReadShortcuts(userdataPath, userID string) ([]vdfbinary.Shortcut, error) {
	var users []string
	if userID != "" {
		users = []string{userID}
	} else {
		entries, err := os.ReadDir(userdataPath)
		if err != nil {
			return nil, fmt.Errorf("failed to list userdata: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() && isDigits(e.Name()) {
				users = append(users, e.Name())
			}
		}
	}

	var all []vdfbinary.Shortcut
	for _, u := range users {
		p := filepath.Join(userdataPath, u, "config", "shortcuts.vdf")
		sc, err := readShortcutsFile(p)
		if err != nil {
			log.Warn().Err(err).Str("user", u).Msg("failed to read shortcuts")
			continue
		}
		all = append(all, sc...)
	}
	return all, nil
}

func readShortcutsFile(path string) ([]vdfbinary.Shortcut, error) {
	//nolint:gosec // Safe: reads Steam config files
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shortcuts.vdf: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing shortcuts.vdf")
		}
	}()

	sc, err := vdfbinary.ParseShortcuts(f)
	if err != nil {
		return nil, fmt.Errorf("parse shortcuts.vdf: %w", err)
	}
	return sc, nil
}
