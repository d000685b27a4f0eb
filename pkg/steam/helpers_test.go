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
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	//nolint:gosec // G306: test file permissions are fine
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func mkdir(t *testing.T, parts ...string) string {
	t.Helper()
	p := filepath.Join(parts...)
	require.NoError(t, os.MkdirAll(p, 0o750))
	return p
}

func createMockManifest(t *testing.T, steamAppsDir, appID, name, installDir string) {
	t.Helper()
	content := fmt.Sprintf(`"AppState"
{
	"appid"		"%s"
	"Universe"		"1"
	"name"		"%s"
	"StateFlags"		"4"
	"installdir"		"%s"
}
`, appID, name, installDir)
	writeFile(t, filepath.Join(steamAppsDir, "appmanifest_"+appID+".acf"), content)
}

// kv is a binary VDF node for fixtures: val is a string, uint32 or []kv.
type kv struct {
	val any
	key string
}

func encodeKV(nodes []kv, writeKey func(*bytes.Buffer, string)) []byte {
	var buf bytes.Buffer
	var enc func([]kv)
	enc = func(ns []kv) {
		for _, n := range ns {
			switch v := n.val.(type) {
			case []kv:
				buf.WriteByte(0x00)
				writeKey(&buf, n.key)
				enc(v)
			case string:
				buf.WriteByte(0x01)
				writeKey(&buf, n.key)
				buf.WriteString(v)
				buf.WriteByte(0x00)
			case uint32:
				buf.WriteByte(0x02)
				writeKey(&buf, n.key)
				_ = binary.Write(&buf, binary.LittleEndian, v)
			}
		}
		buf.WriteByte(0x08)
	}
	enc(nodes)
	return buf.Bytes()
}

type appEntry struct {
	kv    []kv
	appID uint32
}

// buildAppInfo encodes an appinfo.vdf in the given format version.
func buildAppInfo(magic uint32, apps []appEntry) []byte {
	var table []string
	index := map[string]uint32{}
	writeKey := func(b *bytes.Buffer, k string) {
		b.WriteString(k)
		b.WriteByte(0x00)
	}
	if magic == magic29 {
		writeKey = func(b *bytes.Buffer, k string) {
			idx, ok := index[k]
			if !ok {
				idx = uint32(len(table)) //nolint:gosec // small fixture
				index[k] = idx
				table = append(table, k)
			}
			_ = binary.Write(b, binary.LittleEndian, idx)
		}
	}

	headerSize := entryHeaderSize
	if magic != magic27 {
		headerSize += binaryHashSize
	}

	var out bytes.Buffer
	_ = binary.Write(&out, binary.LittleEndian, magic)
	_ = binary.Write(&out, binary.LittleEndian, uint32(1))
	offsetPos := out.Len()
	if magic == magic29 {
		_ = binary.Write(&out, binary.LittleEndian, int64(0))
	}

	for _, a := range apps {
		blob := encodeKV(a.kv, writeKey)
		_ = binary.Write(&out, binary.LittleEndian, a.appID)
		_ = binary.Write(&out, binary.LittleEndian, uint32(headerSize+len(blob))) //nolint:gosec // fixture
		out.Write(make([]byte, headerSize))
		out.Write(blob)
	}
	_ = binary.Write(&out, binary.LittleEndian, uint32(0))

	data := out.Bytes()
	if magic == magic29 {
		binary.LittleEndian.PutUint64(data[offsetPos:], uint64(len(data)))
		var st bytes.Buffer
		_ = binary.Write(&st, binary.LittleEndian, uint32(len(table))) //nolint:gosec // fixture
		for _, s := range table {
			st.WriteString(s)
			st.WriteByte(0x00)
		}
		data = append(data, st.Bytes()...)
	}
	return data
}
