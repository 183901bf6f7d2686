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
	"unicode/utf8"

	"seehuhn.de/go/postscript/cid"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/cidfont/glyphdata"
)

// CID returns the CID for a character code.
//
// If the CMap of the parent font has no CID mappings but maps codes to
// text, the first code point of the text is used as the CID.
func (f *Font) CID(code Code) cid.CID {
	cmap := f.parent.CMap()
	if cmap == nil {
		return 0
	}
	if !cmap.HasCIDMappings() && cmap.HasUnicodeMappings() {
		text, ok := cmap.ToUnicode(code)
		if !ok || text == "" {
			return 0
		}
		r, _ := utf8.DecodeRuneInString(text)
		return cid.CID(r)
	}
	return cmap.LookupCID(code)
}

// GID returns the glyph index for a character code.
// If the code cannot be mapped to a glyph, 0 is returned.
func (f *Font) GID(code Code) glyph.ID {
	c := f.CID(code)

	switch f.res.Kind {
	case glyphdata.KindCIDKeyedCFF:
		return f.res.CFF.GID(c)

	case glyphdata.KindPlainCFF:
		if int64(c) >= int64(f.numGlyphs) {
			return 0
		}
		return glyph.ID(c)

	case glyphdata.KindTrueType:
		if f.res.IsEmbedded || f.cidToGID != nil || f.identity {
			return f.tableGID(c)
		}
		return f.unicodeGID(code)

	default:
		return 0
	}
}

// tableGID maps a CID to a GID using the CIDToGIDMap of the font,
// or the identity mapping if no map is given.
func (f *Font) tableGID(c cid.CID) glyph.ID {
	gid := glyph.ID(c)
	if f.cidToGID != nil {
		var ok bool
		gid, ok = f.cidToGID.Lookup(c)
		if !ok {
			return 0
		}
	} else if int64(c) > int64(^glyph.ID(0)) {
		return 0
	}
	if int(gid) >= f.numGlyphs {
		return 0
	}
	return gid
}

// unicodeGID maps a character code to a GID via the text content of the
// code and the "cmap" table of the font.
func (f *Font) unicodeGID(code Code) glyph.ID {
	text, ok := f.parent.ToUnicode(code)
	if !ok || text == "" || f.unicode == nil {
		return 0
	}
	r, size := utf8.DecodeRuneInString(text)
	if size < len(text) {
		f.logger.Warn("using only the first code point for glyph lookup",
			"code", code, "text", text)
	}
	gid := f.unicode.Lookup(r)
	if int(gid) >= f.numGlyphs {
		return 0
	}
	return gid
}
