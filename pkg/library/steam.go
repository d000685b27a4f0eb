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
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gameshelf/gameshelf/pkg/catalog"
	"github.com/gameshelf/gameshelf/pkg/steam"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	PlatformSteam  = "Steam"
	PlatformPC     = "PC"
	UnknownGenre   = "Unknown"
	resolveWorkers = 4
)

// DiscoverSteamGames reads every installed Steam game and returns catalog
// records for them, sorted by title. Nothing is added to the catalog; the
// caller picks which records to pass to ImportSteamGames.
func (l *Library) DiscoverSteamGames(ctx context.Context) ([]catalog.GameRecord, error) {
	install, err := l.locator.FindInstallPath()
	if err != nil {
		return nil, fmt.Errorf("failed to locate steam: %w", err)
	}

	folders := steam.ListLibraryFolders(install)
	installed := steam.ListInstalledGames(folders)
	if len(installed) == 0 {
		log.Info().Str("path", install).Msg("no installed Steam games found")
		return []catalog.GameRecord{}, nil
	}

	games := make([]steam.GameInfo, 0, len(installed))
	appIDs := make([]string, 0, len(installed))
	for id, info := range installed {
		games = append(games, info)
		appIDs = append(appIDs, id)
	}

	details := steam.ReadAppInfoMetadata(install, appIDs)
	userdata, _ := steam.FindUserdataPath(install)

	records := make([]catalog.GameRecord, len(games))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveWorkers)
	for i, info := range games {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err //nolint:wrapcheck // cancellation passes through
			}
			records[i] = steamRecord(install, userdata, info, details[info.AppID])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("steam discovery cancelled: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := strings.ToLower(records[i].Title), strings.ToLower(records[j].Title)
		if a != b {
			return a < b
		}
		return records[i].SteamAppID < records[j].SteamAppID
	})

	log.Info().Int("count", len(records)).Msg("discovered Steam games")
	return records, nil
}

func steamRecord(install, userdata string, info steam.GameInfo, d steam.AppDetails) catalog.GameRecord {
	r := catalog.GameRecord{
		Title:                info.Name,
		Platform:             PlatformSteam,
		Genre:                UnknownGenre,
		LaunchArguments:      steam.BuildRunURL(info.AppID),
		ISOPaths:             []string{},
		SteamAppID:           info.AppID,
		Artwork:              steam.ArtworkPaths(install, info.AppID),
		WorkshopContentPaths: steam.WorkshopContentPaths(install, info.AppID),
		Developer:            deref(d.Developer),
		Publisher:            deref(d.Publisher),
		GameType:             deref(d.Type),
		OSList:               deref(d.OSList),
		ReleaseState:         deref(d.ReleaseState),
		Description:          deref(d.Description),
	}
	if len(d.Genres) > 0 {
		r.Genre = strings.Join(d.Genres, ", ")
	}
	if exe, ok := steam.FindExecutable(info.FullInstallPath, info.Name); ok {
		r.ExecutablePath = exe
	}
	if cloud, ok := steam.CloudSavePath(userdata, info.AppID); ok {
		r.CloudSavePath = cloud
	}
	return r
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ImportSteamGames adds records whose app id is not already cataloged and
// saves once. It returns how many were added.
func (l *Library) ImportSteamGames(records []catalog.GameRecord) (int, error) {
	added := 0
	for i := range records {
		r := records[i]
		if _, exists := l.store.FindBySteamAppID(r.SteamAppID); exists {
			log.Debug().Str("appid", r.SteamAppID).Msg("steam game already in catalog, skipping")
			continue
		}
		if _, err := l.store.Add(r); err != nil {
			log.Warn().Err(err).Str("title", r.Title).Msg("skipping invalid Steam game")
			continue
		}
		added++
	}
	if added == 0 {
		return 0, nil
	}
	if err := l.store.Save(); err != nil {
		return added, err
	}
	log.Info().Int("count", added).Msg("imported Steam games")
	return added, nil
}

// ImportShortcutGames adds shortcut records whose executable is not
// already cataloged and saves once. It returns how many were added.
func (l *Library) ImportShortcutGames(records []catalog.GameRecord) (int, error) {
	added := 0
	for i := range records {
		r := records[i]
		if _, exists := l.store.FindByExecutable(r.ExecutablePath); exists {
			continue
		}
		if _, err := l.store.Add(r); err != nil {
			log.Warn().Err(err).Str("title", r.Title).Msg("skipping invalid shortcut")
			continue
		}
		added++
	}
	if added == 0 {
		return 0, nil
	}
	if err := l.store.Save(); err != nil {
		return added, err
	}
	log.Info().Int("count", added).Msg("imported non-Steam shortcuts")
	return added, nil
}

// DiscoverShortcutGames returns records for the non-Steam games added to
// the Steam client. The configured user id selects one account; otherwise
// every account is read.
func (l *Library) DiscoverShortcutGames(ctx context.Context) ([]catalog.GameRecord, error) {
	install, err := l.locator.FindInstallPath()
	if err != nil {
		return nil, fmt.Errorf("failed to locate steam: %w", err)
	}
	userdata, ok := steam.FindUserdataPath(install)
	if !ok {
		return []catalog.GameRecord{}, nil
	}

	var account string
	if l.cfg != nil && l.cfg.SteamUserID() != "" {
		if id, ok := steam.AccountID(l.cfg.SteamUserID()); ok {
			account = id
		}
	}

	shortcuts, err := steam.ReadShortcuts(userdata, account)
	if err != nil {
		return nil, fmt.Errorf("failed to read shortcuts: %w", err)
	}

	records := make([]catalog.GameRecord, 0, len(shortcuts))
	for _, sc := range shortcuts {
		if err := ctx.Err(); err != nil {
			return nil, err //nolint:wrapcheck // cancellation passes through
		}
		if sc.IsHidden {
			continue
		}
		exe := unquote(sc.Exe)
		r := catalog.GameRecord{
			Title:           sc.AppName,
			Platform:        PlatformPC,
			Genre:           UnknownGenre,
			ExecutablePath:  exe,
			LaunchArguments: sc.LaunchOptions,
		}
		if len(sc.Tags) > 0 {
			r.Genre = strings.Join(sc.Tags, ", ")
		}
		if sc.Icon != "" {
			r.Artwork = map[string]string{catalog.ArtworkIcon: unquote(sc.Icon)}
		}
		if strings.TrimSpace(r.Title) == "" {
			r.Title = strings.TrimSuffix(filepath.Base(exe), filepath.Ext(exe))
		}
		records = append(records, r)
	}

	log.Info().Int("count", len(records)).Msg("discovered non-Steam shortcuts")
	return records, nil
}

// unquote strips the quotes Steam stores around shortcut paths.
func unquote(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}
