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

package vdfbinary

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Shortcut is a non-Steam game added to the Steam client by the user.
// Fields are ordered for optimal memory alignment.
type Shortcut struct {
	AppName       string
	Exe           string
	Icon          string
	StartDir      string
	LaunchOptions string
	Tags          []string
	AppID         uint32
	LastPlayTime  uint32
	IsHidden      bool
}

// ParseShortcuts parses Steam's shortcuts.vdf binary format. Only appid,
// AppName, Exe and StartDir are required; tools like EmuDeck and Lutris
// leave the rest out.
func ParseShortcuts(buf io.Reader) ([]Shortcut, error) {
	root, err := Parse(buf)
	if err != nil {
		return []Shortcut{}, err
	}

	shortcutsMap, ok := root.GetMap("shortcuts")
	if !ok {
		return []Shortcut{}, errors.New("could not find 'shortcuts' in parsed vdf")
	}

	shortcuts := make([]Shortcut, len(shortcutsMap))

	for i := range shortcuts {
		v, ok := shortcutsMap.Get(strconv.Itoa(i))
		if !ok {
			return []Shortcut{}, errors.New("vdf that should be an array does not have the corresponding index")
		}
		s, ok := v.AsMap()
		if !ok {
			return []Shortcut{}, fmt.Errorf("shortcut at index %d is not a map", i)
		}

		sc, err := shortcutFromMap(s)
		if err != nil {
			return []Shortcut{}, err
		}
		shortcuts[i] = sc
	}

	return shortcuts, nil
}

func shortcutFromMap(s Map) (Shortcut, error) {
	appID, ok := s.GetUint("appid")
	if !ok {
		return Shortcut{}, errors.New("could not get key 'appid' for one of the shortcuts")
	}

	appName, ok := s.GetString("AppName")
	if !ok {
		return Shortcut{}, errors.New("could not get key 'AppName' for one of the shortcuts")
	}

	exe, ok := s.GetString("Exe")
	if !ok {
		return Shortcut{}, errors.New("could not get key 'Exe' for one of the shortcuts")
	}

	startDir, ok := s.GetString("StartDir")
	if !ok {
		return Shortcut{}, errors.New("could not get key 'StartDir' for one of the shortcuts")
	}

	icon, _ := s.GetString("icon")
	launchOptions, _ := s.GetString("LaunchOptions")
	isHidden, _ := s.GetBool("IsHidden")
	lastPlayTime, _ := s.GetUint("LastPlayTime")

	var tags []string
	if tagsMap, ok := s.GetMap("tags"); ok {
		for _, t := range tagsMap.Items() {
			if ts, ok := t.AsString(); ok {
				tags = append(tags, ts)
			}
		}
	}

	return Shortcut{
		AppID:         appID,
		AppName:       appName,
		Exe:           exe,
		Icon:          icon,
		StartDir:      startDir,
		LaunchOptions: launchOptions,
		LastPlayTime:  lastPlayTime,
		IsHidden:      isHidden,
		Tags:          tags,
	}, nil
}
