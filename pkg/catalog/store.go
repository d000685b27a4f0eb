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

package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gameshelf/gameshelf/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var ErrCorruptCatalog = errors.New("catalog file is not a valid game list")

// Store is the in-memory catalog backed by a JSON file. Every structural
// change is followed by a Save from the caller.
type Store struct {
	fs      afero.Fs
	path    string
	records []GameRecord
	mu      syncutil.RWMutex
}

// NewStore returns an empty store for the catalog file at path. Call Load
// to read existing records.
func NewStore(fsys afero.Fs, path string) *Store {
	return &Store{
		fs:      fsys,
		path:    path,
		records: []GameRecord{},
	}
}

// Path returns the catalog file location.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory records with the file contents. A missing
// file is an empty catalog. Records written by older versions are
// back-filled with empty defaults.
func (s *Store) Load() ([]GameRecord, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", s.path).Msg("no catalog found, starting with empty game list")
		s.mu.Lock()
		s.records = []GameRecord{}
		s.mu.Unlock()
		return []GameRecord{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var records []GameRecord
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptCatalog, err)
		}
	}
	if records == nil {
		records = []GameRecord{}
	}
	MigrateAll(records)

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	log.Info().Str("path", s.path).Int("count", len(records)).Msg("catalog loaded")
	return s.All(), nil
}

// Save writes all records to a temp file next to the catalog and renames
// it into place, so a failed write leaves the previous file intact.
func (s *Store) Save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.records, "", "    ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp catalog: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		if rmErr := s.fs.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			log.Warn().Err(rmErr).Str("path", tmpName).Msg("failed to remove temp catalog")
		}
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("failed to write temp catalog: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("failed to sync temp catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close temp catalog: %w", err)
	}

	if err := s.fs.Rename(tmpName, s.path); err != nil {
		cleanup()
		return fmt.Errorf("failed to replace catalog: %w", err)
	}

	log.Debug().Str("path", s.path).Msg("catalog saved")
	return nil
}

// All returns a copy of every record in catalog order.
func (s *Store) All() []GameRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]GameRecord, len(s.records))
	for i := range s.records {
		out[i] = s.records[i].Clone()
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store) Get(index int) (GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.records) {
		return GameRecord{}, indexError(index, len(s.records))
	}
	return s.records[index].Clone(), nil
}

// Add appends r and returns its index.
func (s *Store) Add(r GameRecord) (int, error) {
	r = prepare(r)
	if err := Validate(&r); err != nil {
		return -1, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
	log.Info().Str("title", r.Title).Msg("added game")
	return len(s.records) - 1, nil
}

// Edit replaces the whole record at index.
func (s *Store) Edit(index int, r GameRecord) error {
	r = prepare(r)
	if err := Validate(&r); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.records) {
		return indexError(index, len(s.records))
	}
	s.records[index] = r
	log.Info().Int("index", index).Str("title", r.Title).Msg("edited game")
	return nil
}

// Delete removes the record at index. Later records shift down by one.
func (s *Store) Delete(index int) (GameRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.records) {
		return GameRecord{}, indexError(index, len(s.records))
	}
	removed := s.records[index]
	s.records = append(s.records[:index], s.records[index+1:]...)
	log.Info().Str("title", removed.Title).Msg("deleted game")
	return removed, nil
}

// FindBySteamAppID returns the index of the record imported for appID.
func (s *Store) FindBySteamAppID(appID string) (int, bool) {
	if appID == "" {
		return -1, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		if s.records[i].SteamAppID == appID {
			return i, true
		}
	}
	return -1, false
}

// FindByExecutable returns the index of the record launching path.
// Paths are compared case-insensitively.
func (s *Store) FindByExecutable(path string) (int, bool) {
	if path == "" {
		return -1, false
	}
	want := normalizePath(path)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		if s.records[i].ExecutablePath != "" && normalizePath(s.records[i].ExecutablePath) == want {
			return i, true
		}
	}
	return -1, false
}

func indexError(index, size int) error {
	return fmt.Errorf("%w: %d (catalog has %d games)", ErrIndexOutOfRange, index, size)
}

// prepare trims the required fields and fills empty collections.
func prepare(r GameRecord) GameRecord {
	r = r.Clone()
	r.Title = strings.TrimSpace(r.Title)
	r.Platform = strings.TrimSpace(r.Platform)
	r.Genre = strings.TrimSpace(r.Genre)
	Migrate(&r)
	return r
}

func normalizePath(p string) string {
	return strings.ToLower(filepath.ToSlash(filepath.Clean(p)))
}
