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

package steam

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gameshelf/gameshelf/internal/vdfbinary"
	"github.com/rs/zerolog/log"
)

const (
	magic27 uint32 = 0x07564427 // v27 format
	magic28 uint32 = 0x07564428 // v28 format (adds binaryDataHash)
	magic29 uint32 = 0x07564429 // v29 format (adds string table)
)

// entry header: infoState, lastUpdated, token, sha1, changeNumber
const entryHeaderSize = 4 + 4 + 8 + 20 + 4

const binaryHashSize = 20

// ReadAppInfoMetadata returns appinfo.vdf details for the requested app ids
// that are present in the file. A missing or malformed file yields an
// empty map.
func ReadAppInfoMetadata(installPath string, appIDs []string) map[string]AppDetails {
	details := make(map[string]AppDetails)
	if installPath == "" || len(appIDs) == 0 {
		return details
	}

	appInfoPath := filepath.Join(installPath, "appcache", "appinfo.vdf")

	//nolint:gosec // Safe: reads Steam cache files
	data, err := os.ReadFile(appInfoPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", appInfoPath).Msg("appinfo.vdf not found")
		return details
	} else if err != nil {
		log.Warn().Err(err).Msg("failed to read appinfo.vdf")
		return details
	}

	want := make(map[uint32]string, len(appIDs))
	for _, id := range appIDs {
		n, parseErr := strconv.ParseUint(id, 10, 32)
		if parseErr != nil {
			log.Debug().Str("appID", id).Msg("skipping non-numeric app id")
			continue
		}
		want[uint32(n)] = id
	}

	apps, err := parseAppInfo(data, want)
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse appinfo.vdf")
		return details
	}

	for appID, kv := range apps {
		details[want[appID]] = extractDetails(kv)
	}
	return details
}

type appInfoReader struct {
	data []byte
	pos  int
}

func (r *appInfoReader) readUint32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, io.EOF
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *appInfoReader) readInt64() (int64, error) {
	if r.pos+8 > len(r.data) {
		return 0, io.EOF
	}
	v := int64(binary.LittleEndian.Uint64(r.data[r.pos:])) //nolint:gosec // two's complement
	r.pos += 8
	return v, nil
}

// parseAppInfo decodes the key-value blobs of the wanted apps. Other
// entries are skipped using their size field.
func parseAppInfo(data []byte, want map[uint32]string) (map[uint32]vdfbinary.Map, error) {
	r := &appInfoReader{data: data}

	magic, err := r.readUint32()
	if err != nil {
		return nil, ErrInvalidFormat
	}
	if magic != magic27 && magic != magic28 && magic != magic29 {
		return nil, ErrInvalidMagic
	}

	// universe
	if _, err = r.readUint32(); err != nil {
		return nil, ErrInvalidFormat
	}

	var keys []string
	if magic == magic29 {
		offset, offErr := r.readInt64()
		if offErr != nil {
			return nil, ErrInvalidFormat
		}
		keys, err = readStringTable(data, offset)
		if err != nil {
			return nil, err
		}
	}

	headerSize := entryHeaderSize
	if magic != magic27 {
		headerSize += binaryHashSize
	}

	apps := make(map[uint32]vdfbinary.Map, len(want))
	for len(apps) < len(want) {
		appID, err := r.readUint32()
		if err != nil {
			return nil, fmt.Errorf("%w: truncated entry", ErrInvalidFormat)
		}
		if appID == 0 {
			break
		}

		size, err := r.readUint32()
		if err != nil {
			return nil, fmt.Errorf("%w: truncated entry", ErrInvalidFormat)
		}
		end := r.pos + int(size)
		if end > len(data) || int(size) < headerSize {
			return nil, fmt.Errorf("%w: entry %d overruns file", ErrInvalidFormat, appID)
		}

		if _, ok := want[appID]; ok {
			blob := data[r.pos+headerSize : end]
			kv, decErr := vdfbinary.NewDecoder(bytes.NewReader(blob), keys).DecodeMap()
			if decErr != nil {
				return nil, fmt.Errorf("app %d: %w", appID, decErr)
			}
			apps[appID] = kv
		}

		r.pos = end
	}

	return apps, nil
}

func readStringTable(data []byte, offset int64) ([]string, error) {
	if offset < 0 || offset+4 > int64(len(data)) {
		return nil, fmt.Errorf("%w: string table offset %d", ErrInvalidFormat, offset)
	}
	count := binary.LittleEndian.Uint32(data[offset:])
	br := bufio.NewReader(bytes.NewReader(data[offset+4:]))

	keys := make([]string, 0, min(int(count), len(data)))
	for range count {
		s, err := vdfbinary.ReadCString(br)
		if err != nil {
			return nil, fmt.Errorf("%w: string table: %w", ErrInvalidFormat, err)
		}
		keys = append(keys, s)
	}
	return keys, nil
}

func extractDetails(kv vdfbinary.Map) AppDetails {
	root := kv
	if inner, ok := kv.GetMap("appinfo"); ok {
		root = inner
	}

	d := AppDetails{
		Type:         textField(root, "common", "type"),
		Developer:    textField(root, "extended", "developer"),
		Publisher:    textField(root, "extended", "publisher"),
		Description:  textField(root, "extended", "gamedescription"),
		OSList:       textField(root, "common", "oslist"),
		ReleaseState: textField(root, "common", "releasestate"),
	}

	if g := textField(root, "extended", "genres"); g != nil {
		d.Genres = splitList(*g)
	} else if gm, ok := root.Lookup("common", "genres"); ok {
		if m, ok := gm.AsMap(); ok {
			d.Genres = []string{}
			for _, item := range m.Items() {
				if s, ok := item.Text(); ok && s != "" {
					d.Genres = append(d.Genres, s)
				}
			}
		}
	}

	return d
}

func textField(m vdfbinary.Map, keys ...string) *string {
	v, ok := m.Lookup(keys...)
	if !ok {
		return nil
	}
	s, ok := v.Text()
	if !ok {
		return nil
	}
	return &s
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
