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

package helpers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/gameshelf/gameshelf/pkg/config"
)

// Settings holds the directories the application reads and writes.
type Settings struct {
	// DataDir is where the catalog and other persistent files live unless
	// the config points the catalog elsewhere.
	DataDir string
	// ConfigDir holds the config file.
	ConfigDir string
	// LogDir holds the rotating log file.
	LogDir string
}

// DefaultSettings resolves the standard per-user directories.
func DefaultSettings() Settings {
	dataDir := filepath.Join(xdg.DataHome, config.AppName)
	return Settings{
		DataDir:   dataDir,
		ConfigDir: filepath.Join(xdg.ConfigHome, config.AppName),
		LogDir:    filepath.Join(dataDir, config.LogsDir),
	}
}

// EnsureDirectories creates every directory in s that does not exist yet.
//
//nolint:gocritic // settings passed by value
func EnsureDirectories(s Settings) error {
	for _, dir := range []string{s.DataDir, s.ConfigDir, s.LogDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// NormalizePathForComparison normalizes a path for cross-platform
// case-insensitive comparison.
func NormalizePathForComparison(path string) string {
	p := filepath.ToSlash(filepath.Clean(path))
	return strings.ToLower(p)
}

// PathHasPrefix checks if path is within root, respecting separator
// boundaries so "c:/games2" does not match root "c:/games".
func PathHasPrefix(path, root string) bool {
	normPath := NormalizePathForComparison(path)
	normRoot := NormalizePathForComparison(root)

	if normPath == normRoot {
		return true
	}

	if normRoot == "" {
		return false
	}

	if !strings.HasSuffix(normRoot, "/") {
		normRoot += "/"
	}

	return strings.HasPrefix(normPath, normRoot)
}
