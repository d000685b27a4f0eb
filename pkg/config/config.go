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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gameshelf/gameshelf/pkg/helpers/syncutil"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "GAMESHELF_CFG"
	ArtworkGrid   = "grid"
	ArtworkLogo   = "logo"
	ThemeLight    = "light"
	ThemeDark     = "dark"
)

var (
	ErrSchemaMismatch = errors.New("schema version mismatch")
	ErrInvalidOption  = errors.New("invalid option value")
)

type Values struct {
	Steam                    Steam  `toml:"steam"`
	ArtworkDisplayPreference string `toml:"artwork_display_preference"`
	ThemePreference          string `toml:"theme_preference"`
	ConfigFileLocation       string `toml:"config_file_location,omitempty"`
	ConfigSchema             int    `toml:"config_schema"`
	DebugLogging             bool   `toml:"debug_logging"`
}

type Steam struct {
	// WebAPIKey is the Steam Web API credential used for friends and
	// workshop queries. Empty disables those features.
	WebAPIKey string `toml:"web_api_key,omitempty"`
	// InstallDir overrides Steam install detection.
	InstallDir string `toml:"install_dir,omitempty"`
	// UserID is the SteamID64 used for friends queries. When empty it is
	// guessed from the userdata directory.
	UserID string `toml:"user_id,omitempty"`
}

var BaseDefaults = Values{
	ConfigSchema:             SchemaVersion,
	ArtworkDisplayPreference: ArtworkGrid,
	ThemePreference:          ThemeDark,
}

type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

// NewConfig loads the config file from configDir, or from the path in
// GAMESHELF_CFG when set. A default file is written if none exists.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// fields missing from the file keep their defaults
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return ErrSchemaMismatch
	}

	artwork, ok := normalizeArtwork(newVals.ArtworkDisplayPreference)
	if !ok {
		log.Warn().Msgf("unknown artwork display preference %q, using %s",
			newVals.ArtworkDisplayPreference, c.defaults.ArtworkDisplayPreference)
		artwork = c.defaults.ArtworkDisplayPreference
	}
	newVals.ArtworkDisplayPreference = artwork

	theme, ok := normalizeTheme(newVals.ThemePreference)
	if !ok {
		log.Warn().Msgf("unknown theme preference %q, using %s",
			newVals.ThemePreference, c.defaults.ThemePreference)
		theme = c.defaults.ThemePreference
	}
	newVals.ThemePreference = theme

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Path returns the location of the backing config file.
func (c *Instance) Path() string {
	return c.cfgPath
}

func (c *Instance) ArtworkDisplayPreference() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.ArtworkDisplayPreference
}

func (c *Instance) SetArtworkDisplayPreference(pref string) error {
	v, ok := normalizeArtwork(pref)
	if !ok {
		return fmt.Errorf("%w: artwork display preference %q", ErrInvalidOption, pref)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.ArtworkDisplayPreference = v
	return nil
}

func (c *Instance) ThemePreference() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.ThemePreference
}

func (c *Instance) SetThemePreference(theme string) error {
	v, ok := normalizeTheme(theme)
	if !ok {
		return fmt.Errorf("%w: theme preference %q", ErrInvalidOption, theme)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.ThemePreference = v
	return nil
}

func (c *Instance) SteamWebAPIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Steam.WebAPIKey
}

func (c *Instance) SetSteamWebAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Steam.WebAPIKey = strings.TrimSpace(key)
}

func (c *Instance) SteamInstallDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Steam.InstallDir
}

func (c *Instance) SetSteamInstallDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Steam.InstallDir = dir
}

func (c *Instance) SteamUserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Steam.UserID
}

func (c *Instance) SetSteamUserID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Steam.UserID = strings.TrimSpace(id)
}

// CatalogDir returns the directory holding the catalog file. An unset
// config_file_location falls back to dataDir.
func (c *Instance) CatalogDir(dataDir string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.ConfigFileLocation == "" {
		return dataDir
	}
	return c.vals.ConfigFileLocation
}

func (c *Instance) SetConfigFileLocation(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.ConfigFileLocation = dir
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func normalizeArtwork(v string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case ArtworkGrid:
		return ArtworkGrid, true
	case ArtworkLogo:
		return ArtworkLogo, true
	default:
		return "", false
	}
}

func normalizeTheme(v string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return "", false
	}
}
