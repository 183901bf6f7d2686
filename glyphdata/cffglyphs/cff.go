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

// Package cffglyphs wraps CFF font programs for use as glyph data of
// CIDFontType0 fonts.
package cffglyphs

import (
	"bytes"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/cidfont/glyphdata"
	"seehuhn.de/go/cidfont/internal/memo"
)

// Program is a [glyphdata.CFFProgram] backed by a decoded CFF font.
type Program struct {
	Font *cff.Font

	gid  map[cid.CID]glyph.ID
	bbox memo.Cell[rect.Rect]
}

var _ glyphdata.CFFProgram = (*Program)(nil)

// New wraps a CFF font.  The font must not be modified after this call.
func New(f *cff.Font) *Program {
	p := &Program{Font: f}
	if o := f.Outlines; o != nil && o.IsCIDKeyed() {
		p.gid = make(map[cid.CID]glyph.ID, len(o.GIDToCID))
		for i, x := range o.GIDToCID {
			if _, seen := p.gid[x]; !seen {
				p.gid[x] = glyph.ID(i)
			}
		}
	}
	return p
}

// Decode decodes font data which can be used for a CIDFontType0 font.
// The declared container type tp must be [glyphdata.CFF] or
// [glyphdata.OpenTypeCFF].  An OpenType font is unwrapped to its "CFF "
// table.
func Decode(data []byte, tp glyphdata.Type) (*Program, error) {
	switch tp {
	case glyphdata.CFF:
		f, err := cff.Read(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		if f.Outlines == nil {
			return nil, &glyphdata.InvalidFontError{SubSystem: "glyphdata/cff", Reason: "no outlines"}
		}
		return New(f), nil

	case glyphdata.OpenTypeCFF:
		info, err := sfnt.Read(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		if !info.IsCFF() {
			return nil, &glyphdata.InvalidFontError{SubSystem: "glyphdata/cff", Reason: "missing CFF table"}
		}
		return New(info.AsCFF()), nil

	default:
		return nil, glyphdata.ErrWrongType
	}
}

// PostScriptName implements [glyphdata.Program].
func (p *Program) PostScriptName() string {
	if p.Font.FontInfo == nil {
		return ""
	}
	return p.Font.FontInfo.FontName
}

// NumGlyphs implements [glyphdata.Program].
func (p *Program) NumGlyphs() int {
	if p.Font.Outlines == nil {
		return 0
	}
	return p.Font.Outlines.NumGlyphs()
}

// FontMatrix implements [glyphdata.Program].
func (p *Program) FontMatrix() matrix.Matrix {
	if p.Font.FontInfo == nil {
		return matrix.Matrix{}
	}
	return p.Font.FontInfo.FontMatrix
}

// IsCIDKeyed implements [glyphdata.CFFProgram].
func (p *Program) IsCIDKeyed() bool {
	return p.Font.Outlines != nil && p.Font.Outlines.IsCIDKeyed()
}

// GID implements [glyphdata.CFFProgram].
func (p *Program) GID(x cid.CID) glyph.ID {
	return p.gid[x]
}

// CID implements [glyphdata.CFFProgram].
func (p *Program) CID(gid glyph.ID) cid.CID {
	if p.Font.Outlines == nil {
		return 0
	}
	m := p.Font.Outlines.GIDToCID
	if int(gid) >= len(m) {
		return 0
	}
	return m[gid]
}

// FontMatrices implements [glyphdata.CFFProgram].
func (p *Program) FontMatrices() []matrix.Matrix {
	if !p.IsCIDKeyed() {
		return nil
	}
	return p.Font.Outlines.FontMatrices
}

// FDSelect implements [glyphdata.CFFProgram].
func (p *Program) FDSelect(gid glyph.ID) int {
	o := p.Font.Outlines
	if o == nil || o.FDSelect == nil || int(gid) >= o.NumGlyphs() {
		return 0
	}
	return o.FDSelect(gid)
}

// Glyph implements [glyphdata.CFFProgram].
func (p *Program) Glyph(gid glyph.ID) *cff.Glyph {
	if int(gid) >= p.NumGlyphs() {
		return nil
	}
	return p.Font.Outlines.Glyphs[gid]
}

// GlyphWidth implements [glyphdata.Program].
func (p *Program) GlyphWidth(gid glyph.ID) float64 {
	g := p.Glyph(gid)
	if g == nil {
		return 0
	}
	return g.Width
}

// GlyphBBox implements [glyphdata.Program].
//
// For CID-keyed fonts, the font matrix of the glyph's font dict is applied
// before the top-level font matrix.
func (p *Program) GlyphBBox(gid glyph.ID) rect.Rect {
	if p.Glyph(gid) == nil {
		return rect.Rect{}
	}
	o := p.Font.Outlines
	if o.IsCIDKeyed() {
		fd := p.FDSelect(gid)
		if fd < 0 || fd >= len(o.FontMatrices) {
			return rect.Rect{}
		}
	}
	return o.GlyphBBoxPDF(glyphdata.CheckFontMatrix(p.FontMatrix()), gid)
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
