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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	err := Validate(&GameRecord{Artwork: map[string]string{"poster": "/p.jpg"}})
	require.ErrorIs(t, err, ErrInvalidRecord)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))

	fields := make([]string, len(ve.Fields))
	for i, fe := range ve.Fields {
		fields[i] = fe.Field
	}
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "platform")
	assert.Contains(t, fields, "genre")
	assert.Contains(t, err.Error(), "title is required")
	assert.Contains(t, err.Error(), `artwork kind "poster"`)
}

func TestValidate_AcceptsKnownArtwork(t *testing.T) {
	t.Parallel()

	r := minimalRecord("Portal")
	r.Artwork = map[string]string{
		ArtworkHero: "a", ArtworkGrid: "b", ArtworkHeader: "c", ArtworkLogo: "d", ArtworkIcon: "e",
	}
	assert.NoError(t, Validate(&r))
}

func TestMigrate_KeepsPresentValues(t *testing.T) {
	t.Parallel()

	r := GameRecord{Title: "Doom", ISOPaths: []string{"/a.iso"}}
	Migrate(&r)
	assert.Equal(t, []string{"/a.iso"}, r.ISOPaths)
	assert.Equal(t, []string{}, r.WorkshopContentPaths)
	assert.Equal(t, map[string]string{}, r.Artwork)
}

func TestGameRecord_PrimaryISO(t *testing.T) {
	t.Parallel()

	r := GameRecord{}
	_, ok := r.PrimaryISO()
	assert.False(t, ok)

	r.ISOPaths = []string{"/first.iso", "/second.iso"}
	iso, ok := r.PrimaryISO()
	assert.True(t, ok)
	assert.Equal(t, "/first.iso", iso)
}
