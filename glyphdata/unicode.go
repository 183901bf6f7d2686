// seehuhn.de/go/cidfont - glyph selection for composite PDF fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package glyphdata

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/sfnt/cmap"
)

// unicodeKeys lists the cmap subtables which map Unicode code points,
// in order of preference.
var unicodeKeys = []cmap.Key{
	{PlatformID: 0, EncodingID: 4}, // Unicode full repertoire
	{PlatformID: 0, EncodingID: 3}, // Unicode BMP only
	{PlatformID: 3, EncodingID: 1}, // Windows Unicode BMP
	{PlatformID: 3, EncodingID: 0}, // Windows Symbol
}

// SelectUnicode chooses the "cmap" subtable used to map Unicode code points
// to glyphs.
//
// If none of the preferred Unicode subtables is present, the first subtable
// which can be decoded is returned and degraded is set to true.  If no
// subtable can be decoded, the returned subtable is nil.
// Subtables which cannot be decoded are skipped.
func SelectUnicode(table cmap.Table) (sub cmap.Subtable, key cmap.Key, degraded bool) {
	for _, key := range unicodeKeys {
		if _, present := table[key]; !present {
			continue
		}
		sub, err := decodeSubtable(table, key)
		if err == nil {
			return sub, key, false
		}
	}

	keys := maps.Keys(table)
	slices.SortFunc(keys, compareKeys)
	for _, key := range keys {
		sub, err := decodeSubtable(table, key)
		if err == nil {
			return sub, key, true
		}
	}
	return nil, cmap.Key{}, false
}

// decodeSubtable decodes a single "cmap" subtable.  Truncated subtables
// and subtables in formats the decoder does not know give an error.
func decodeSubtable(table cmap.Table, key cmap.Key) (sub cmap.Subtable, err error) {
	if len(table[key]) < 4 {
		return nil, errMalformedCmap
	}

	// cmap.Table.Get panics on unknown subtable formats
	defer func() {
		if r := recover(); r != nil {
			sub = nil
			err = &InvalidFontError{
				SubSystem: "glyphdata/cmap",
				Reason:    fmt.Sprintf("cannot decode subtable %d,%d: %v", key.PlatformID, key.EncodingID, r),
			}
		}
	}()

	sub, err = table.Get(key)
	if err == nil && sub == nil {
		err = errMalformedCmap
	}
	return sub, err
}

var errMalformedCmap = &InvalidFontError{SubSystem: "glyphdata/cmap", Reason: "malformed subtable"}

func compareKeys(a, b cmap.Key) int {
	if c := cmp.Compare(a.PlatformID, b.PlatformID); c != 0 {
		return c
	}
	if c := cmp.Compare(a.EncodingID, b.EncodingID); c != 0 {
		return c
	}
	return cmp.Compare(a.Language, b.Language)
}
