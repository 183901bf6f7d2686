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

// Package cidtogid implements the CIDToGIDMap of Type 2 CIDFonts.
//
// The map is stored in a PDF stream as a sequence of big-endian 16-bit
// glyph indices.  The value at position i is the glyph index for CID i.
//
// See section 9.7.4.2 of ISO 32000-2:2020.
package cidtogid

import (
	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/cidfont/internal/memo"
)

// Table maps CID values to glyph indices.
// A Table is immutable and safe for concurrent use.
type Table struct {
	gid []glyph.ID
	inv memo.Cell[map[glyph.ID]cid.CID]
}

// Parse decodes the contents of a CIDToGIDMap stream.
//
// There are no header or length fields.  A trailing odd byte is ignored,
// and glyph indices are not checked against the number of glyphs in the
// font.
func Parse(data []byte) *Table {
	n := len(data) / 2
	gid := make([]glyph.ID, n)
	for i := range gid {
		gid[i] = glyph.ID(data[2*i])<<8 | glyph.ID(data[2*i+1])
	}
	return &Table{gid: gid}
}

// New returns a table with the given glyph indices.
// The slice is used directly and must not be modified after the call.
func New(gid []glyph.ID) *Table {
	return &Table{gid: gid}
}

// Len returns the number of CID values covered by the table.
func (t *Table) Len() int {
	return len(t.gid)
}

// Lookup returns the glyph index for the given CID.
// If the CID is outside the table, (0, false) is returned.
func (t *Table) Lookup(c cid.CID) (glyph.ID, bool) {
	if uint64(c) >= uint64(len(t.gid)) {
		return 0, false
	}
	return t.gid[c], true
}

// CID returns a CID which is mapped to gid.
//
// If several CIDs map to the same glyph, the largest of these CIDs is
// returned.
func (t *Table) CID(gid glyph.ID) (cid.CID, bool) {
	c, ok := t.Inverse()[gid]
	return c, ok
}

// Inverse returns the map from glyph indices to CIDs.
// The map is computed on first use and must not be modified by the caller.
//
// When several CIDs map to the same glyph, the map keeps the last one,
// that is the largest CID.
func (t *Table) Inverse() map[glyph.ID]cid.CID {
	return t.inv.Get(t.invert)
}

func (t *Table) invert() map[glyph.ID]cid.CID {
	res := make(map[glyph.ID]cid.CID, len(t.gid))
	for c, gid := range t.gid {
		res[gid] = cid.CID(c)
	}
	return res
}
