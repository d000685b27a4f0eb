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

// Package library is the entry point the presentation layer talks to. It
// combines the catalog with the Steam readers, the directory scanner, the
// mount service and the process probe.
package library

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/gameshelf/gameshelf/pkg/catalog"
	"github.com/gameshelf/gameshelf/pkg/config"
	"github.com/gameshelf/gameshelf/pkg/helpers/command"
	"github.com/gameshelf/gameshelf/pkg/mount"
	"github.com/gameshelf/gameshelf/pkg/probe"
	"github.com/gameshelf/gameshelf/pkg/steam"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Library owns the catalog for the lifetime of the application. Callers
// must call Close on shutdown so the catalog is saved and any mounted
// image is released.
type Library struct {
	cfg     *config.Instance
	store   *catalog.Store
	exec    command.Executor
	mount   *mount.Service
	probe   *probe.Probe
	locator *steam.Locator
	clock   clockwork.Clock
	goos    string
}

type Option func(*Library)

func WithExecutor(exec command.Executor) Option {
	return func(l *Library) { l.exec = exec }
}

func WithMountService(svc *mount.Service) Option {
	return func(l *Library) { l.mount = svc }
}

func WithProbe(p *probe.Probe) Option {
	return func(l *Library) { l.probe = p }
}

func WithLocator(loc *steam.Locator) Option {
	return func(l *Library) { l.locator = loc }
}

func WithClock(clock clockwork.Clock) Option {
	return func(l *Library) { l.clock = clock }
}

// WithGOOS changes which platform conventions Launch follows.
func WithGOOS(goos string) Option {
	return func(l *Library) { l.goos = goos }
}

// New returns a Library over store. Components not supplied through
// options use the real system.
func New(cfg *config.Instance, store *catalog.Store, opts ...Option) *Library {
	l := &Library{
		cfg:   cfg,
		store: store,
		clock: clockwork.NewRealClock(),
		goos:  runtime.GOOS,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.exec == nil {
		l.exec = &command.RealExecutor{}
	}
	if l.mount == nil {
		l.mount = mount.NewService(mount.DefaultTool(l.exec))
	}
	if l.probe == nil {
		l.probe = probe.New()
	}
	if l.locator == nil {
		l.locator = steam.NewLocator(cfg.SteamInstallDir())
	}
	return l
}

func (l *Library) Store() *catalog.Store {
	return l.store
}

func (l *Library) MountService() *mount.Service {
	return l.mount
}

func (l *Library) Games() []catalog.GameRecord {
	return l.store.All()
}

// Add appends a record and saves the catalog.
func (l *Library) Add(r catalog.GameRecord) (int, error) {
	idx, err := l.store.Add(r)
	if err != nil {
		return -1, err
	}
	if err := l.store.Save(); err != nil {
		return idx, err
	}
	return idx, nil
}

// Edit replaces the record at index and saves the catalog. Workshop
// content of Steam games is read again from disk because subscriptions
// change; other records keep the paths they were given.
func (l *Library) Edit(index int, r catalog.GameRecord) error {
	if r.IsSteam() {
		install, err := l.locator.FindInstallPath()
		if err != nil {
			log.Warn().Err(err).Str("appid", r.SteamAppID).
				Msg("cannot refresh workshop content, keeping existing paths")
		} else {
			r.WorkshopContentPaths = steam.WorkshopContentPaths(install, r.SteamAppID)
		}
	}
	if err := l.store.Edit(index, r); err != nil {
		return err
	}
	return l.store.Save()
}

// Delete removes the record at index and saves the catalog.
func (l *Library) Delete(index int) (catalog.GameRecord, error) {
	removed, err := l.store.Delete(index)
	if err != nil {
		return catalog.GameRecord{}, err
	}
	if err := l.store.Save(); err != nil {
		return removed, err
	}
	return removed, nil
}

func (l *Library) Search(query string, field catalog.Field) ([]catalog.Match, error) {
	return l.store.Search(query, field)
}

// Suggest returns close fuzzy matches for a query that Search missed.
func (l *Library) Suggest(query string, field catalog.Field, limit int) ([]catalog.Suggestion, error) {
	return l.store.Suggest(query, field, limit)
}

// Close saves the catalog and dismounts any image. Both are attempted
// even if one fails.
func (l *Library) Close(ctx context.Context) error {
	var errs []error
	if err := l.store.Save(); err != nil {
		errs = append(errs, fmt.Errorf("failed to save catalog: %w", err))
	}
	if _, err := l.mount.Dismount(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to dismount image: %w", err))
	}
	return errors.Join(errs...)
}
