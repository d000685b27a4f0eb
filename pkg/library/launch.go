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

package library

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gameshelf/gameshelf/pkg/catalog"
	"github.com/gameshelf/gameshelf/pkg/helpers"
	"github.com/gameshelf/gameshelf/pkg/helpers/command"
	"github.com/gameshelf/gameshelf/pkg/steam"
	"github.com/rs/zerolog/log"
)

var ErrNothingToLaunch = errors.New("game has no executable or launch URL")

// Launch starts the game at index without waiting for it to exit. The
// game's first disc image is mounted beforehand and stays mounted until
// Close. Games with a steam:// launch argument are handed to the Steam
// client; everything else runs its executable directly.
func (l *Library) Launch(ctx context.Context, index int) error {
	rec, err := l.store.Get(index)
	if err != nil {
		return err
	}

	if iso, ok := rec.PrimaryISO(); ok {
		if err := l.mountForLaunch(ctx, iso); err != nil {
			return err
		}
	}

	// the game must outlive the request that started it
	startCtx := context.WithoutCancel(ctx)

	if steam.IsSteamURL(rec.LaunchArguments) {
		return l.openURL(startCtx, strings.TrimSpace(rec.LaunchArguments))
	}

	if rec.ExecutablePath == "" {
		return fmt.Errorf("%w: %s", ErrNothingToLaunch, rec.Title)
	}

	args := strings.Fields(rec.LaunchArguments)
	opts := command.StartOptions{Dir: filepath.Dir(rec.ExecutablePath)}
	if err := l.exec.Start(startCtx, opts, rec.ExecutablePath, args...); err != nil {
		return fmt.Errorf("failed to launch %s: %w", rec.Title, err)
	}
	log.Info().Str("title", rec.Title).Str("exe", rec.ExecutablePath).Msg("launched game")
	return nil
}

// mountForLaunch mounts iso unless it is already the mounted image.
func (l *Library) mountForLaunch(ctx context.Context, iso string) error {
	if current, ok := l.mount.Image(); ok && current == iso {
		log.Debug().Str("image", iso).Msg("disc image already mounted")
		return nil
	}
	if _, err := l.mount.Mount(ctx, iso); err != nil {
		return fmt.Errorf("failed to mount disc image: %w", err)
	}
	return nil
}

func (l *Library) openURL(ctx context.Context, url string) error {
	var (
		name string
		args []string
		opts command.StartOptions
	)
	switch l.goos {
	case "windows":
		// the empty argument is the window title start expects first
		name, args = "cmd", []string{"/c", "start", "", url}
		opts.HideWindow = true
	case "darwin":
		name, args = "open", []string{url}
	default:
		name, args = "xdg-open", []string{url}
	}

	if err := l.exec.Start(ctx, opts, name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	log.Info().Str("url", url).Msg("opened launch url")
	return nil
}

type Status int

const (
	StatusMissing Status = iota
	StatusInstalled
	StatusRunning
)

func (s Status) String() string {
	switch s {
	case StatusInstalled:
		return "Installed"
	case StatusRunning:
		return "Running"
	default:
		return "Missing"
	}
}

// Status reports whether the game at index is running, installed, or
// missing from disk. Steam games count as installed without an executable
// because Steam launches them.
func (l *Library) Status(ctx context.Context, index int) (Status, error) {
	rec, err := l.store.Get(index)
	if err != nil {
		return StatusMissing, err
	}
	return l.status(ctx, &rec), nil
}

func (l *Library) status(ctx context.Context, rec *catalog.GameRecord) Status {
	if rec.ExecutablePath != "" && l.probe.IsSteamGameRunning(ctx, rec.ExecutablePath) {
		return StatusRunning
	}
	if rec.ExecutablePath != "" && helpers.FileExists(rec.ExecutablePath) {
		return StatusInstalled
	}
	if rec.IsSteam() {
		return StatusInstalled
	}
	return StatusMissing
}

// Statuses reports the status of every game in catalog order.
func (l *Library) Statuses(ctx context.Context) []Status {
	games := l.store.All()
	out := make([]Status, len(games))
	for i := range games {
		out[i] = l.status(ctx, &games[i])
	}
	return out
}
