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

package cffglyphs

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/postscript/cid"
	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/cidfont/glyphdata"
)

// Blank returns a CID-keyed CFF font program with a single, blank
// .notdef glyph.  The result can be used in place of a missing font.
func Blank() *Program {
	return New(&cff.Font{
		FontInfo: &type1.FontInfo{
			FontName:   glyphdata.BlankName,
			FontMatrix: glyphdata.DefaultFontMatrix,
		},
		Outlines: &cff.Outlines{
			Glyphs:       []*cff.Glyph{{Name: ".notdef"}},
			Private:      []*type1.PrivateDict{{}},
			FDSelect:     func(glyph.ID) int { return 0 },
			ROS:          &cid.SystemInfo{Registry: "Adobe", Ordering: "Identity"},
			GIDToCID:     []cid.CID{0},
			FontMatrices: []matrix.Matrix{matrix.Identity},
		},
	})
}

// Empty returns a CFF font program without glyphs.  This is used when
// embedded font data cannot be decoded.
func Empty() *Program {
	return New(&cff.Font{
		FontInfo: &type1.FontInfo{FontMatrix: glyphdata.DefaultFontMatrix},
		Outlines: &cff.Outlines{
			Private:  []*type1.PrivateDict{{}},
			FDSelect: func(glyph.ID) int { return 0 },
		},
	})
}
