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
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

const exeExt = ".exe"

// searchDirs are checked in order; the install root comes last so that
// binaries in the usual engine folders win over tools at the top level.
var searchDirs = [][]string{
	{"Binaries", "Win64"},
	{"Binaries", "Win32"},
	{"x64"},
	{"x86"},
	{"bin"},
	{},
}

// FindExecutable guesses the launch executable of a game from its display
// name. Search directories are walked in order, each in lexical walk
// order, and the first executable whose name matches a candidate pattern
// or contains the title wins. Candidates are names derived from the title
// plus the generic launcher.exe and game.exe. The result is best effort:
// an earlier generic name beats a later title match.
func FindExecutable(installRoot, gameName string) (string, bool) {
	if installRoot == "" || strings.TrimSpace(gameName) == "" {
		return "", false
	}

	matches := exeMatcher(gameName)

	for _, parts := range searchDirs {
		dir := filepath.Join(append([]string{installRoot}, parts...)...)
		if exe, ok := firstExecutable(dir, matches); ok {
			return exe, true
		}
	}

	return "", false
}

// exeMatcher returns a predicate over lowercased file names that accepts
// any candidate name or any name containing the title.
func exeMatcher(gameName string) func(lowerName string) bool {
	name := strings.ToLower(strings.TrimSpace(gameName))
	firstWord := strings.Fields(name)[0]

	candidates := []string{
		name + exeExt,
		strings.ReplaceAll(name, " ", "") + exeExt,
		strings.ReplaceAll(name, " ", "_") + exeExt,
		firstWord + exeExt,
		"launcher" + exeExt,
		"game" + exeExt,
	}

	return func(f string) bool {
		if slices.Contains(candidates, f) {
			return true
		}
		return strings.Contains(f, name)
	}
}

func firstExecutable(dir string, matches func(string) bool) (string, bool) {
	var found string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			log.Debug().Err(err).Str("path", path).Msg("skipping unreadable path")
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), exeExt) {
			return nil
		}
		if matches(strings.ToLower(d.Name())) {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil || found == "" {
		return "", false
	}
	return found, true
}
