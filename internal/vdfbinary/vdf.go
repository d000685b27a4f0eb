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

// Package vdfbinary parses Valve's binary VDF format.
//
// This is a vendored and modified version of github.com/TimDeve/valve-vdf-binary
// Licensed under MIT.
package vdfbinary

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

const (
	markerMap       byte = 0x00
	markerString    byte = 0x01
	markerInt32     byte = 0x02
	markerFloat32   byte = 0x03
	markerPointer   byte = 0x04
	markerColor     byte = 0x06
	markerUint64    byte = 0x07
	markerEndOfMap  byte = 0x08
	markerInt64     byte = 0x0A
	markerEndOfMap2 byte = 0x0B

	endOfString byte = 0x00
)

var (
	ErrEmptyVDF     = errors.New("the vdf you are trying to parse appears empty")
	ErrNotBinaryVDF = errors.New("the vdf appears not to be binary, are you sure it is not a text vdf?")
	ErrCorruptedVDF = errors.New("reached the end of the file earlier than expected, your file might be corrupted")
	ErrBadKeyIndex  = errors.New("key index outside of string table")
)

// Decoder reads binary VDF objects from a stream. With a key table set,
// keys are read as uint32 indexes into it instead of inline strings, which
// is how newer appinfo.vdf files store them.
type Decoder struct {
	r    *bufio.Reader
	keys []string
}

func NewDecoder(r io.Reader, keyTable []string) *Decoder {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Decoder{r: br, keys: keyTable}
}

// Parse reads a whole binary VDF document such as shortcuts.vdf.
func Parse(r io.Reader) (Map, error) {
	buf := bufio.NewReader(r)

	byteArr, err := buf.Peek(1)
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyVDF
	}
	if err != nil {
		return nil, fmt.Errorf("peek error: %w", err)
	}

	switch byteArr[0] {
	case markerMap, markerString, markerInt32, markerEndOfMap:
	default:
		return nil, ErrNotBinaryVDF
	}

	return NewDecoder(buf, nil).DecodeMap()
}

// DecodeMap reads key/value pairs until the end-of-map marker.
func (d *Decoder) DecodeMap() (Map, error) {
	m, err := d.parseMap()
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, ErrCorruptedVDF
	}
	return m, err
}

func (d *Decoder) parseMap() (Map, error) {
	m := make(Map)

	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("read byte error: %w", err)
		}

		if b == markerEndOfMap || b == markerEndOfMap2 {
			break
		}

		key, err := d.readKey()
		if err != nil {
			return nil, err
		}

		var value Value
		switch b {
		case markerMap:
			var sub Map
			sub, err = d.parseMap()
			value = Value{v: sub}
		case markerString:
			var s string
			s, err = d.readString()
			value = Value{v: s}
		case markerInt32, markerPointer, markerColor:
			var n uint32
			n, err = d.readUint32()
			value = Value{v: n}
		case markerFloat32:
			var n uint32
			n, err = d.readUint32()
			value = Value{v: math.Float32frombits(n)}
		case markerUint64:
			var n uint64
			n, err = d.readUint64()
			value = Value{v: n}
		case markerInt64:
			var n uint64
			n, err = d.readUint64()
			value = Value{v: int64(n)} //nolint:gosec // reinterpreting two's complement bits
		default:
			err = fmt.Errorf("unexpected byte: 0x%02x, your file might be corrupted", b)
		}

		if err != nil {
			return nil, err
		}

		m[strings.ToLower(key)] = value
	}

	return m, nil
}

func (d *Decoder) readKey() (string, error) {
	if d.keys == nil {
		return d.readString()
	}
	idx, err := d.readUint32()
	if err != nil {
		return "", err
	}
	if int(idx) >= len(d.keys) {
		return "", fmt.Errorf("%w: %d", ErrBadKeyIndex, idx)
	}
	return d.keys[idx], nil
}

func (d *Decoder) readUint32() (uint32, error) {
	var bf [4]byte
	if _, err := io.ReadFull(d.r, bf[:]); err != nil {
		return 0, fmt.Errorf("read number error: %w", err)
	}
	return binary.LittleEndian.Uint32(bf[:]), nil
}

func (d *Decoder) readUint64() (uint64, error) {
	var bf [8]byte
	if _, err := io.ReadFull(d.r, bf[:]); err != nil {
		return 0, fmt.Errorf("read number error: %w", err)
	}
	return binary.LittleEndian.Uint64(bf[:]), nil
}

func (d *Decoder) readString() (string, error) {
	s, err := d.r.ReadString(endOfString)
	if err == nil {
		return s[:len(s)-1], nil
	}
	return "", fmt.Errorf("read string error: %w", err)
}

// ReadCString reads a single null-terminated string from r.
func ReadCString(r *bufio.Reader) (string, error) {
	s, err := r.ReadString(endOfString)
	if err != nil {
		return "", fmt.Errorf("read string error: %w", err)
	}
	return s[:len(s)-1], nil
}
