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

package vdfbinary_test

import (
	"bytes"
	"encoding/binary"
)

// vdfBuilder writes binary VDF by hand for fixtures.
type vdfBuilder struct {
	buf bytes.Buffer
}

func (b *vdfBuilder) key(k string) {
	b.buf.WriteString(k)
	b.buf.WriteByte(0x00)
}

func (b *vdfBuilder) open(k string) *vdfBuilder {
	b.buf.WriteByte(0x00)
	b.key(k)
	return b
}

func (b *vdfBuilder) str(k, v string) *vdfBuilder {
	b.buf.WriteByte(0x01)
	b.key(k)
	b.buf.WriteString(v)
	b.buf.WriteByte(0x00)
	return b
}

func (b *vdfBuilder) u32(k string, v uint32) *vdfBuilder {
	b.buf.WriteByte(0x02)
	b.key(k)
	_ = binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func (b *vdfBuilder) u64(k string, v uint64) *vdfBuilder {
	b.buf.WriteByte(0x07)
	b.key(k)
	_ = binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func (b *vdfBuilder) end() *vdfBuilder {
	b.buf.WriteByte(0x08)
	return b
}

func (b *vdfBuilder) bytes() []byte {
	return b.buf.Bytes()
}
