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
	"log/slog"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/cidfont/cidtogid"
	"seehuhn.de/go/cidfont/glyphdata"
	"seehuhn.de/go/cidfont/internal/memo"
)

// Font is a CIDFont together with its selected glyph program.
type Font struct {
	baseFont string
	parent   Parent
	res      *Resolved
	logger   *slog.Logger

	// cidToGID is the explicit CIDToGIDMap of a CIDFontType2 font.
	// This is nil if no table was given.
	cidToGID *cidtogid.Table
	identity bool

	// unicode is the "cmap" subtable of a TrueType font used to map
	// text to glyphs.
	unicode cmap.Subtable

	fontMatrix matrix.Matrix
	numGlyphs  int

	// widthScale converts CFF glyph widths to glyph space units,
	// indexed by the font dict of the glyph.
	widthScale []float64
	// ttScale converts TrueType design units to glyph space units.
	ttScale float64

	widths   memo.Map[Code, float64]
	heights  memo.Map[glyph.ID, float64]
	avgWidth memo.Cell[float64]
}

// New selects a glyph program for the CIDFont d.
//
// If opt is nil, only embedded fonts are used and all other fonts are
// replaced by blank placeholder fonts.
//
// An error is returned if d has no parent font, or if the embedded font
// data uses an unsupported format.  Damaged font data does not cause an
// error; instead, [Font.IsDamaged] returns true.
func New(d *Dict, opt *Options) (*Font, error) {
	if d.Parent == nil {
		return nil, errMissingParent
	}
	opt = MergeOptions(opt, defaultOptions)

	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("font", d.BaseFont)

	res, err := acquire(d, opt, logger)
	if err != nil {
		return nil, err
	}

	f := &Font{
		baseFont: d.BaseFont,
		parent:   d.Parent,
		res:      res,
		logger:   logger,
	}
	f.numGlyphs = res.Program().NumGlyphs()

	switch res.Kind {
	case glyphdata.KindCIDKeyedCFF, glyphdata.KindPlainCFF:
		f.fontMatrix = glyphdata.CheckFontMatrix(res.CFF.FontMatrix())
		M := f.fontMatrix.Mul(matrix.Scale(1000, 1000))
		if fms := res.CFF.FontMatrices(); len(fms) > 0 {
			f.widthScale = make([]float64, len(fms))
			for i, fm := range fms {
				f.widthScale[i] = fm.Mul(M)[0]
			}
		} else {
			f.widthScale = []float64{M[0]}
		}

	case glyphdata.KindTrueType:
		f.fontMatrix = glyphdata.DefaultFontMatrix
		f.ttScale = 1
		if upm := res.TrueType.UnitsPerEm(); upm != 0 && upm != 1000 {
			f.ttScale = 1000 / float64(upm)
		}

		if d.CIDToGIDMap != nil {
			f.cidToGID = cidtogid.Parse(d.CIDToGIDMap)
		}
		f.identity = d.IdentityCIDToGID

		table := res.TrueType.CMapTable()
		sub, key, degraded := glyphdata.SelectUnicode(table)
		if sub == nil && len(table) > 0 {
			logger.Warn("no usable cmap subtable")
		} else if degraded {
			logger.Warn("no Unicode cmap subtable, using fallback",
				"platform", key.PlatformID, "encoding", key.EncodingID)
		}
		f.unicode = sub
	}

	return f, nil
}

// BaseFont returns the PostScript name of the font.
func (f *Font) BaseFont() string {
	return f.baseFont
}

// Program returns the glyph program used for the font.
func (f *Font) Program() *Resolved {
	return f.res
}

// IsEmbedded reports whether the glyph program was embedded in the PDF file.
func (f *Font) IsEmbedded() bool {
	return f.res.IsEmbedded
}

// IsDamaged reports whether the embedded glyph program could not be decoded.
func (f *Font) IsDamaged() bool {
	return f.res.IsDamaged
}

// FontMatrix returns the matrix which maps glyph space to text space.
func (f *Font) FontMatrix() matrix.Matrix {
	return f.fontMatrix
}

// FontBBox returns the font bounding box in glyph space units.
func (f *Font) FontBBox() rect.Rect {
	return f.res.Program().FontBBox()
}
