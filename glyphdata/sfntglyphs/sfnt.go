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

// Package sfntglyphs wraps TrueType and OpenType font programs for use as
// glyph data of CIDFontType2 fonts.
package sfntglyphs

import (
	"bytes"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/cidfont/glyphdata"
	"seehuhn.de/go/cidfont/internal/memo"
)

// Program is a [glyphdata.TrueTypeProgram] backed by an sfnt font with
// "glyf" outlines.
type Program struct {
	Font *sfnt.Font

	name string
	bbox memo.Cell[rect.Rect]
}

var _ glyphdata.TrueTypeProgram = (*Program)(nil)

// New wraps an sfnt font.  The font must have TrueType outlines and must not
// be modified after this call.
func New(f *sfnt.Font) *Program {
	return &Program{Font: f}
}

// Decode decodes font data which can be used for a CIDFontType2 font.  The
// declared container type tp must be [glyphdata.TrueType] or
// [glyphdata.OpenTypeGlyf].
//
// If the data is a valid OpenType font with CFF outlines, a
// [*glyphdata.NotSupportedError] is returned.
func Decode(data []byte, tp glyphdata.Type) (*Program, error) {
	if !tp.IsTrueType() {
		return nil, glyphdata.ErrWrongType
	}

	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if info.IsCFF() {
		return nil, &glyphdata.NotSupportedError{
			SubSystem: "glyphdata/truetype",
			Feature:   "OpenType fonts with CFF outlines in CIDFontType2",
		}
	}
	if !info.IsGlyf() {
		return nil, &glyphdata.InvalidFontError{SubSystem: "glyphdata/truetype", Reason: "missing glyf table"}
	}
	return New(info), nil
}

func (p *Program) outlines() *glyf.Outlines {
	o, _ := p.Font.Outlines.(*glyf.Outlines)
	return o
}

// PostScriptName implements [glyphdata.Program].
func (p *Program) PostScriptName() string {
	if p.name != "" {
		return p.name
	}
	return p.Font.PostScriptName()
}

// NumGlyphs implements [glyphdata.Program].
func (p *Program) NumGlyphs() int {
	o := p.outlines()
	if o == nil {
		return 0
	}
	return len(o.Glyphs)
}

// FontMatrix implements [glyphdata.Program].
//
// The glyph space of TrueType based CIDFonts always uses 1000 units per
// text space unit, so the result is always [glyphdata.DefaultFontMatrix].
func (p *Program) FontMatrix() matrix.Matrix {
	return glyphdata.DefaultFontMatrix
}

// UnitsPerEm implements [glyphdata.TrueTypeProgram].
func (p *Program) UnitsPerEm() uint16 {
	return p.Font.UnitsPerEm
}

// CMapTable implements [glyphdata.TrueTypeProgram].
func (p *Program) CMapTable() cmap.Table {
	return p.Font.CMapTable
}

// Ascent implements [glyphdata.TrueTypeProgram].
func (p *Program) Ascent() float64 {
	return float64(p.Font.Ascent)
}

// Descent implements [glyphdata.TrueTypeProgram].
func (p *Program) Descent() float64 {
	return float64(p.Font.Descent)
}

// HasLayoutTables implements [glyphdata.TrueTypeProgram].
func (p *Program) HasLayoutTables() bool {
	return p.Font.Gsub != nil || p.Font.Gpos != nil
}

// GlyphWidth implements [glyphdata.Program].
func (p *Program) GlyphWidth(gid glyph.ID) float64 {
	o := p.outlines()
	if o == nil || int(gid) >= len(o.Widths) {
		return 0
	}
	return float64(o.Widths[gid])
}

// designMatrix maps design units to text space units.
func (p *Program) designMatrix() matrix.Matrix {
	upm := p.Font.UnitsPerEm
	if upm == 0 {
		upm = 1000
	}
	q := 1 / float64(upm)
	return matrix.Scale(q, q)
}

// GlyphBBox implements [glyphdata.Program].
func (p *Program) GlyphBBox(gid glyph.ID) rect.Rect {
	o := p.outlines()
	if o == nil || int(gid) >= len(o.Glyphs) || o.Glyphs[gid] == nil {
		return rect.Rect{}
	}
	return o.GlyphBBoxPDF(p.designMatrix(), gid)
}

// FontBBox implements [glyphdata.Program].
func (p *Program) FontBBox() rect.Rect {
	return p.bbox.Get(func() (bbox rect.Rect) {
		first := true
		for i := range p.NumGlyphs() {
			b := p.GlyphBBox(glyph.ID(i))
			if b.IsZero() {
				continue
			}
			if first {
				bbox = b
				first = false
			} else {
				bbox.Extend(b)
			}
		}
		return bbox
	})
}
