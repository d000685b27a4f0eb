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

// Migrate back-fills fields that older catalog files do not have. Missing
// strings decode as empty already, so only the collections need work.
// Fields that were present are left untouched.
func Migrate(r *GameRecord) {
	if r.ISOPaths == nil {
		r.ISOPaths = []string{}
	}
	if r.WorkshopContentPaths == nil {
		r.WorkshopContentPaths = []string{}
	}
	if r.Artwork == nil {
		r.Artwork = map[string]string{}
	}
}

// MigrateAll applies Migrate to every record in place.
func MigrateAll(records []GameRecord) {
	for i := range records {
		Migrate(&records[i])
	}
}
