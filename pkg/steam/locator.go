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
	"path/filepath"

	"github.com/gameshelf/gameshelf/pkg/helpers"
	"github.com/rs/zerolog/log"
)

// Locator finds the Steam installation. Strategies are tried in order and
// the first directory that exists wins: the configured override, the
// platform registration records, then conventional install locations.
type Locator struct {
	// RegistryPaths returns install paths recorded by the platform, 64-bit
	// record first. Nil outside Windows.
	RegistryPaths func() []string
	// Override is a user-configured install directory.
	Override string
	// Candidates are conventional install directories checked last.
	Candidates []string
}

// NewLocator returns a Locator using this platform's registry lookup and
// default install locations.
func NewLocator(override string) *Locator {
	return &Locator{
		Override:      override,
		RegistryPaths: registryInstallPaths,
		Candidates:    defaultInstallPaths(),
	}
}

// FindInstallPath returns the Steam install directory or ErrSteamNotFound.
func (l *Locator) FindInstallPath() (string, error) {
	if l.Override != "" {
		if helpers.DirExists(l.Override) {
			log.Debug().Msgf("using user-configured Steam directory: %s", l.Override)
			return l.Override, nil
		}
		log.Warn().Msgf("user-configured Steam directory not found: %s", l.Override)
	}

	if l.RegistryPaths != nil {
		for _, p := range l.RegistryPaths() {
			if helpers.DirExists(p) {
				log.Debug().Msgf("found Steam installation via registry: %s", p)
				return p, nil
			}
		}
	}

	for _, p := range l.Candidates {
		if helpers.DirExists(p) {
			log.Debug().Msgf("found Steam installation: %s", p)
			return p, nil
		}
	}

	log.Debug().Msg("Steam installation not found")
	return "", ErrSteamNotFound
}

// FindUserdataPath returns <install>/userdata if it exists.
func FindUserdataPath(installPath string) (string, bool) {
	if installPath == "" {
		return "", false
	}
	p := filepath.Join(installPath, UserdataDir)
	if !helpers.DirExists(p) {
		return "", false
	}
	return p, true
}
