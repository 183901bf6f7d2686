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
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/cidfont/glyphdata"
)

// Width returns the advance width of the glyph for a character code,
// in glyph space units (1/1000 of a text space unit).
func (f *Font) Width(code Code) float64 {
	return f.widths.Get(code, func(code Code) float64 {
		return f.glyphWidth(f.GID(code))
	})
}

// glyphWidth returns the advance width of a glyph in glyph space units.
func (f *Font) glyphWidth(gid glyph.ID) float64 {
	switch f.res.Kind {
	case glyphdata.KindCIDKeyedCFF, glyphdata.KindPlainCFF:
		w := f.res.CFF.GlyphWidth(gid)
		fd := 0
		if len(f.widthScale) > 1 {
			fd = f.res.CFF.FDSelect(gid)
			if fd < 0 || fd >= len(f.widthScale) {
				fd = 0
			}
		}
		return w * f.widthScale[fd]

	case glyphdata.KindTrueType:
		w := f.res.TrueType.GlyphWidth(gid)
		if f.ttScale != 1 {
			w *= f.ttScale
		}
		return w

	default:
		return 0
	}
}

// AverageWidth returns the average advance width of the glyphs in the
// font, in glyph space units.  Glyphs with zero width are ignored.  If
// the font has no glyphs with positive width, 500 is returned.
func (f *Font) AverageWidth() float64 {
	return f.avgWidth.Get(func() float64 {
		var sum float64
		var n int
		for i := range f.numGlyphs {
			w := f.glyphWidth(glyph.ID(i))
			if w > 0 {
				sum += w
				n++
			}
		}
		if n == 0 {
			return 500
		}
		return sum / float64(n)
	})
}

// Height returns the height of the glyph for a character code, in glyph
// space units.
//
// For CFF fonts this is the height of the glyph bounding box.  For
// TrueType fonts, the distance between ascent and descent of the font is
// returned.
func (f *Font) Height(code Code) float64 {
	gid := f.GID(code)
	return f.heights.Get(gid, func(gid glyph.ID) float64 {
		switch f.res.Kind {
		case glyphdata.KindTrueType:
			p := f.res.TrueType
			h := p.Ascent() - p.Descent()
			if f.ttScale != 1 {
				h *= f.ttScale
			}
			return h
		default:
			bbox := f.res.CFF.GlyphBBox(gid)
			return bbox.URy - bbox.LLy
		}
	})
}
