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

// Package probe reports whether game executables or the Steam client are
// currently running. Every call enumerates the live process table; nothing
// is cached.
package probe

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/process"
)

// steamClientNames are the Steam client process names across platforms.
var steamClientNames = []string{"steam.exe", "steam", "steam_osx"}

// Lister returns the names of all live processes.
type Lister func(ctx context.Context) ([]string, error)

// Probe checks the process table through a Lister.
type Probe struct {
	list Lister
}

// New returns a Probe backed by the operating system's process table.
func New() *Probe {
	return &Probe{list: systemProcessNames}
}

// NewWithLister returns a Probe that reads process names from list.
func NewWithLister(list Lister) *Probe {
	return &Probe{list: list}
}

// IsRunning reports whether a process named name is running. Names are
// compared case-insensitively. A process table that cannot be read counts
// as not running.
func (p *Probe) IsRunning(ctx context.Context, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	names, err := p.list(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to list processes")
		return false
	}
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// IsSteamGameRunning reports whether the executable at path is running,
// matching on its base file name.
func (p *Probe) IsSteamGameRunning(ctx context.Context, path string) bool {
	return p.IsRunning(ctx, BaseName(path))
}

// IsSteamRunning reports whether the Steam client is running.
func (p *Probe) IsSteamRunning(ctx context.Context) bool {
	names, err := p.list(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to list processes")
		return false
	}
	for _, n := range names {
		for _, steam := range steamClientNames {
			if strings.EqualFold(n, steam) {
				return true
			}
		}
	}
	return false
}

// BaseName returns the last element of path, accepting either separator so
// Windows paths stored in the catalog resolve on any host.
func BaseName(path string) string {
	path = strings.TrimRight(strings.TrimSpace(path), `/\`)
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

func systemProcessNames(ctx context.Context) ([]string, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck // logged by caller
	}
	names := make([]string, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			// processes can exit between listing and inspection
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
