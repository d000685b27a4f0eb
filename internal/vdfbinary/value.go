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

package vdfbinary

import (
	"sort"
	"strconv"
	"strings"
)

// Value is a single node of a binary VDF tree: a nested Map, a string or
// one of the numeric types.
type Value struct {
	v any
}

// Map is a VDF object. Keys are stored lowercased.
type Map map[string]Value

func (v Value) AsMap() (Map, bool) {
	m, ok := v.v.(Map)
	return m, ok
}

func (v Value) AsString() (string, bool) {
	s, ok := v.v.(string)
	return s, ok
}

func (v Value) AsUint() (uint32, bool) {
	n, ok := v.v.(uint32)
	return n, ok
}

// AsUint64 widens 32-bit values so callers do not need to care which
// width was written.
func (v Value) AsUint64() (uint64, bool) {
	switch n := v.v.(type) {
	case uint64:
		return n, true
	case uint32:
		return uint64(n), true
	default:
		return 0, false
	}
}

func (v Value) AsFloat() (float32, bool) {
	f, ok := v.v.(float32)
	return f, ok
}

// Text renders scalar values as strings. Maps are not rendered.
func (v Value) Text() (string, bool) {
	switch n := v.v.(type) {
	case string:
		return n, true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case float32:
		return strconv.FormatFloat(float64(n), 'g', -1, 32), true
	default:
		return "", false
	}
}

// Get looks up key case-insensitively.
func (m Map) Get(key string) (Value, bool) {
	v, ok := m[strings.ToLower(key)]
	return v, ok
}

func (m Map) GetMap(key string) (Map, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	return v.AsMap()
}

func (m Map) GetString(key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok {
		return "", false
	}
	return v.AsString()
}

func (m Map) GetUint(key string) (uint32, bool) {
	v, ok := m.Get(key)
	if !ok {
		return 0, false
	}
	return v.AsUint()
}

func (m Map) GetBool(key string) (bool, bool) {
	n, ok := m.GetUint(key)
	return n != 0, ok
}

// Lookup walks a chain of nested maps, e.g. Lookup("common", "type").
func (m Map) Lookup(keys ...string) (Value, bool) {
	if len(keys) == 0 {
		return Value{v: m}, true
	}
	cur := m
	for i, k := range keys {
		v, ok := cur.Get(k)
		if !ok {
			return Value{}, false
		}
		if i == len(keys)-1 {
			return v, true
		}
		cur, ok = v.AsMap()
		if !ok {
			return Value{}, false
		}
	}
	return Value{}, false
}

// Items returns the values of an array-like map ordered by numeric key.
// Non-numeric keys are skipped.
func (m Map) Items() []Value {
	type entry struct {
		val Value
		idx int
	}
	entries := make([]entry, 0, len(m))
	for k, v := range m {
		idx, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		entries = append(entries, entry{idx: idx, val: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].idx < entries[j].idx
	})
	items := make([]Value, len(entries))
	for i, e := range entries {
		items[i] = e.val
	}
	return items
}
