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

package sfntglyphs

import (
	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyf"

	"seehuhn.de/go/cidfont/glyphdata"
)

// Blank returns a TrueType font program with a single, blank .notdef
// glyph.  The result can be used in place of a missing font.
func Blank() *Program {
	p := New(&sfnt.Font{
		FamilyName: "Adobe Blank",
		UnitsPerEm: 1000,
		FontMatrix: glyphdata.DefaultFontMatrix,
		Outlines: &glyf.Outlines{
			Glyphs: make(glyf.Glyphs, 1),
			Widths: []funit.Int16{0},
		},
	})
	p.name = glyphdata.BlankName
	return p
}

// Empty returns a TrueType font program without glyphs.  This is used when
// embedded font data cannot be decoded.
func Empty() *Program {
	return New(&sfnt.Font{
		UnitsPerEm: 1000,
		FontMatrix: glyphdata.DefaultFontMatrix,
		Outlines:   &glyf.Outlines{},
	})
}
