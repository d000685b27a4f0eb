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
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
)

// MinSuggestSimilarity is the Jaro-Winkler score a field value, or one of
// its words, needs to be offered as a suggestion.
const MinSuggestSimilarity float32 = 0.8

// Suggestion is a near miss for a query that Search did not match.
type Suggestion struct {
	Match
	Similarity float32
}

// Suggest returns up to limit records whose field is close to query,
// best first with ties in catalog order. Each value is scored as a whole and word by word, keeping
// the higher score, so "portl" still finds "Portal 2". limit <= 0 returns
// every suggestion.
func (s *Store) Suggest(query string, field Field, limit int) ([]Suggestion, error) {
	f, err := ParseField(string(field))
	if err != nil {
		return nil, err
	}

	folder := cases.Fold()
	q := strings.TrimSpace(folder.String(query))
	suggestions := []Suggestion{}
	if q == "" {
		return suggestions, nil
	}

	s.mu.RLock()
	for i := range s.records {
		value := folder.String(f.value(&s.records[i]))
		score := similarity(q, value)
		if score < MinSuggestSimilarity {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Match:      Match{Index: i, Record: s.records[i].Clone()},
			Similarity: score,
		})
	}
	s.mu.RUnlock()

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Similarity > suggestions[j].Similarity
	})
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	log.Debug().
		Str("query", query).
		Str("field", string(f)).
		Int("suggestions", len(suggestions)).
		Msg("fuzzy catalog suggestions")
	return suggestions, nil
}

func similarity(query, value string) float32 {
	best := edlib.JaroWinklerSimilarity(query, value)
	for _, word := range strings.Fields(value) {
		if score := edlib.JaroWinklerSimilarity(query, word); score > best {
			best = score
		}
	}
	return best
}
