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

package cidfont

import (
	"seehuhn.de/go/postscript/cid"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/cidfont/glyphdata"
)

// Encode returns the character code for a Unicode code point.
//
// The result is the two-byte, big-endian representation of the CID of the
// glyph.  If the font has no glyph for r, a [*NoGlyphError] is returned.
func (f *Font) Encode(r rune) ([]byte, error) {
	var c cid.CID

	switch f.res.Kind {
	case glyphdata.KindTrueType:
		if !f.res.IsEmbedded || isIdentity(f.parent.CMap()) {
			if f.unicode != nil {
				c = f.gidToCID(f.unicode.Lookup(r))
			}
		} else if ucs2 := f.parent.UCS2(); ucs2 != nil {
			c = ucs2.LookupCID(Code(r))
		}
	default:
		if ucs2 := f.parent.UCS2(); ucs2 != nil {
			c = ucs2.LookupCID(Code(r))
		}
	}

	if c == 0 || c > 0xFFFF {
		return nil, &NoGlyphError{Rune: r, Font: f.baseFont}
	}
	return []byte{byte(c >> 8), byte(c)}, nil
}

// gidToCID maps a glyph index back to a CID, using the inverse of the
// CIDToGIDMap if present.
func (f *Font) gidToCID(gid glyph.ID) cid.CID {
	if gid == 0 {
		return 0
	}
	if f.cidToGID != nil {
		c, _ := f.cidToGID.CID(gid)
		return c
	}
	return cid.CID(gid)
}
