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
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:paralleltest // replaces the global logger
func TestInitLogging(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	var buf bytes.Buffer

	err := InitLogging(logDir, false, []io.Writer{&buf})
	require.NoError(t, err)

	log.Info().Msg("catalog loaded")
	log.Debug().Msg("hidden at info level")

	assert.DirExists(t, logDir)
	assert.FileExists(t, filepath.Join(logDir, "gameshelf.log"))
	assert.Contains(t, buf.String(), "catalog loaded")
	assert.NotContains(t, buf.String(), "hidden at info level")
}
