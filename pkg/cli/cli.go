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

// Package cli implements the gameshelf command line: flag definitions,
// environment setup, and one action per flag.
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/gameshelf/gameshelf/pkg/config"
	"github.com/gameshelf/gameshelf/pkg/helpers"
	"github.com/rs/zerolog"
)

type Flags struct {
	fs *flag.FlagSet

	List            *bool
	Search          *string
	Field           *string
	AddTitle        *string
	AddPlatform     *string
	AddGenre        *string
	AddExe          *string
	AddArgs         *string
	AddISO          *string
	Delete          *int
	ImportSteam     *bool
	ImportShortcuts *bool
	Scan            *string
	AddFound        *bool
	Launch          *int
	Status          *int
	Friends         *bool
	Workshop        *string
	Query           *string
	Page            *int
	ExportCSV       *string
	SetTheme        *string
	SetArtwork      *string
	SetAPIKey       *string
	SetSteamDir     *string
	SetUserID       *string
	SetCatalogDir   *string
	Version         *bool
	Verbose         *bool
}

// SetupFlags defines every gameshelf flag on fs.
func SetupFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:   fs,
		List: fs.Bool("list", false, "list all games in the catalog"),
		Search: fs.String(
			"search",
			"",
			"search the catalog (case-insensitive substring)",
		),
		Field: fs.String(
			"field",
			"title",
			"field to search: title, platform or genre",
		),
		AddTitle:    fs.String("add-title", "", "add a game with this title"),
		AddPlatform: fs.String("add-platform", "PC", "platform of the added game"),
		AddGenre:    fs.String("add-genre", "Unknown", "genre of the added game"),
		AddExe:      fs.String("add-exe", "", "executable of the added game"),
		AddArgs:     fs.String("add-args", "", "launch arguments of the added game"),
		AddISO: fs.String(
			"add-iso",
			"",
			"comma-separated disc images of the added game, first is mounted on launch",
		),
		Delete:      fs.Int("delete", -1, "delete the game at this index"),
		ImportSteam: fs.Bool("import-steam", false, "import installed Steam games"),
		ImportShortcuts: fs.Bool(
			"import-shortcuts",
			false,
			"import non-Steam games added to the Steam client",
		),
		Scan: fs.String(
			"scan",
			"",
			"comma-separated directories to scan for executables, or \"default\"",
		),
		AddFound: fs.Bool("add-found", false, "add every executable found by -scan"),
		Launch:   fs.Int("launch", -1, "launch the game at this index"),
		Status:   fs.Int("status", -1, "print the status of the game at this index"),
		Friends:  fs.Bool("friends", false, "list Steam friends and what they are playing"),
		Workshop: fs.String("workshop", "", "search the workshop of this Steam app id"),
		Query:    fs.String("query", "", "workshop search text"),
		Page:     fs.Int("page", 1, "workshop result page"),
		ExportCSV: fs.String(
			"export-csv",
			"",
			"write the catalog to this CSV file",
		),
		SetTheme:    fs.String("set-theme", "", "set theme preference: light or dark"),
		SetArtwork:  fs.String("set-artwork", "", "set artwork preference: grid or logo"),
		SetAPIKey:   fs.String("set-api-key", "", "set the Steam Web API key"),
		SetSteamDir: fs.String("set-steam-dir", "", "set the Steam install directory"),
		SetUserID:   fs.String("set-user-id", "", "set the SteamID64 used for friends"),
		SetCatalogDir: fs.String(
			"set-catalog-dir",
			"",
			"set the directory holding games.json (takes effect on next start)",
		),
		Version: fs.Bool("version", false, "print version and exit"),
		Verbose: fs.Bool("verbose", false, "also log to stderr"),
	}
}

func (f *Flags) isFlagPassed(name string) bool {
	found := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// Pre parses args and handles flags that need no environment. It reports
// true when the program should exit.
func (f *Flags) Pre(args []string, out io.Writer) (bool, error) {
	if err := f.fs.Parse(args); err != nil {
		return true, fmt.Errorf("failed to parse flags: %w", err)
	}
	if *f.Version {
		_, _ = fmt.Fprintf(out, "Gameshelf v%s\n", config.AppVersion)
		return true, nil
	}
	return false, nil
}

// Setup creates the data directories, starts logging and loads the user
// config.
//
//nolint:gocritic // config struct copied for immutability
func Setup(
	settings helpers.Settings,
	defaultConfig config.Values,
	writers []io.Writer,
) (*config.Instance, error) {
	if err := helpers.EnsureDirectories(settings); err != nil {
		return nil, fmt.Errorf("error creating directories: %w", err)
	}

	if err := helpers.InitLogging(settings.LogDir, false, writers); err != nil {
		return nil, fmt.Errorf("error initializing logging: %w", err)
	}

	cfg, err := config.NewConfig(settings.ConfigDir, defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return cfg, nil
}

// Launched reports whether this run started a game. The caller leaves any
// disc image mounted in that case.
func (f *Flags) Launched() bool {
	return f.isFlagPassed("launch")
}
