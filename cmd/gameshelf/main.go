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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gameshelf/gameshelf/pkg/catalog"
	"github.com/gameshelf/gameshelf/pkg/cli"
	"github.com/gameshelf/gameshelf/pkg/config"
	"github.com/gameshelf/gameshelf/pkg/helpers"
	"github.com/gameshelf/gameshelf/pkg/library"
	"github.com/gameshelf/gameshelf/pkg/steam"
	"github.com/gameshelf/gameshelf/pkg/steam/steamweb"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	flags := cli.SetupFlags(fs)

	exit, err := flags.Pre(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	} else if exit {
		return nil
	}

	var logWriters []io.Writer
	if *flags.Verbose {
		logWriters = []io.Writer{os.Stderr}
	}

	settings := helpers.DefaultSettings()
	cfg, err := cli.Setup(settings, config.BaseDefaults, logWriters)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalogPath := filepath.Join(cfg.CatalogDir(settings.DataDir), config.CatalogFile)
	store := catalog.NewStore(afero.NewOsFs(), catalogPath)
	if _, err := store.Load(); err != nil {
		return fmt.Errorf("error loading catalog: %w", err)
	}

	locator := steam.NewLocator(cfg.SteamInstallDir())
	lib := library.New(cfg, store, library.WithLocator(locator))

	app := &cli.App{
		Out:     os.Stdout,
		Err:     os.Stderr,
		Cfg:     cfg,
		Lib:     lib,
		Web:     steamweb.NewClient(cfg.SteamWebAPIKey()),
		Locator: locator,
	}

	postErr := flags.Post(ctx, app)

	// images mounted for a launch stay attached until the game is done
	if !flags.Launched() {
		if err := lib.Close(context.WithoutCancel(ctx)); err != nil {
			log.Error().Err(err).Msg("error closing library")
			if postErr == nil {
				postErr = err
			}
		}
	} else if err := store.Save(); err != nil {
		log.Error().Err(err).Msg("error saving catalog")
	}

	return postErr
}
