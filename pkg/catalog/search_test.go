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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Field
		wantErr bool
	}{
		{in: "title", want: FieldTitle},
		{in: "Platform", want: FieldPlatform},
		{in: " genre ", want: FieldGenre},
		{in: "", want: FieldTitle},
		{in: "developer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseField(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownField)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func seededStore(t *testing.T) *Store {
	t.Helper()
	s, _ := newTestStore(t)
	for _, r := range []GameRecord{
		{Title: "Half-Life 2", Platform: "PC", Genre: "FPS"},
		{Title: "Portal", Platform: "PC", Genre: "Puzzle"},
		{Title: "Halo", Platform: "Xbox", Genre: "fps"},
		{Title: "STRASSE Racer", Platform: "PS2", Genre: "Racing"},
	} {
		_, err := s.Add(r)
		require.NoError(t, err)
	}
	return s
}

func TestStore_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		field     Field
		wantIndex []int
	}{
		{name: "title_substring", query: "hal", field: FieldTitle, wantIndex: []int{0, 2}},
		{name: "case_insensitive_genre", query: "FPS", field: FieldGenre, wantIndex: []int{0, 2}},
		{name: "platform", query: "pc", field: FieldPlatform, wantIndex: []int{0, 1}},
		{name: "no_match", query: "zelda", field: FieldTitle, wantIndex: []int{}},
		{name: "empty_query_matches_all", query: "", field: FieldTitle, wantIndex: []int{0, 1, 2, 3}},
		{name: "upper_query", query: "PORTAL", field: FieldTitle, wantIndex: []int{1}},
		{name: "mixed_case_field_name", query: "fps", field: Field("Genre"), wantIndex: []int{0, 2}},
		{name: "upper_field_name_ignores_title", query: "halo", field: Field("GENRE"), wantIndex: []int{}},
		{name: "padded_field_name", query: "xbox", field: Field(" Platform "), wantIndex: []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := seededStore(t)

			matches, err := s.Search(tt.query, tt.field)
			require.NoError(t, err)

			got := make([]int, len(matches))
			for i, m := range matches {
				got[i] = m.Index
				assert.Equal(t, s.All()[m.Index], m.Record)
			}
			assert.Equal(t, tt.wantIndex, got)
		})
	}
}

func TestStore_SearchUnknownField(t *testing.T) {
	t.Parallel()
	s := seededStore(t)

	_, err := s.Search("x", Field("publisher"))
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestPropertySearchMatchesSubstring(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		records := rapid.SliceOfN(genRecord(), 1, 10).Draw(t, "records")
		query := rapid.StringMatching(`[a-zA-Z0-9]{0,3}`).Draw(t, "query")

		s := NewStore(nil, testCatalogPath)
		for _, r := range records {
			if _, err := s.Add(r); err != nil {
				t.Fatalf("add: %v", err)
			}
		}

		matches, err := s.Search(query, FieldTitle)
		if err != nil {
			t.Fatalf("search: %v", err)
		}

		hit := make(map[int]bool, len(matches))
		for _, m := range matches {
			hit[m.Index] = true
		}
		for i, r := range s.All() {
			want := strings.Contains(strings.ToLower(r.Title), strings.ToLower(query))
			if hit[i] != want {
				t.Fatalf("record %d %q: match=%v, want %v", i, r.Title, hit[i], want)
			}
		}
	})
}
