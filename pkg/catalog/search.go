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
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Field selects which record field Search matches against.
type Field string

const (
	FieldTitle    Field = "title"
	FieldPlatform Field = "platform"
	FieldGenre    Field = "genre"
)

func ParseField(s string) (Field, error) {
	switch f := Field(strings.ToLower(strings.TrimSpace(s))); f {
	case FieldTitle, FieldPlatform, FieldGenre:
		return f, nil
	case "":
		return FieldTitle, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}

func (f Field) value(r *GameRecord) string {
	switch f {
	case FieldPlatform:
		return r.Platform
	case FieldGenre:
		return r.Genre
	default:
		return r.Title
	}
}

// Match is a search hit with its current catalog index.
type Match struct {
	Record GameRecord
	Index  int
}

// Search returns records whose field contains query, ignoring case. An
// empty query matches everything.
func (s *Store) Search(query string, field Field) ([]Match, error) {
	f, err := ParseField(string(field))
	if err != nil {
		return nil, err
	}

	folder := cases.Fold()
	q := folder.String(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []Match{}
	for i := range s.records {
		if strings.Contains(folder.String(f.value(&s.records[i])), q) {
			matches = append(matches, Match{Index: i, Record: s.records[i].Clone()})
		}
	}
	return matches, nil
}
