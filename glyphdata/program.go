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
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
)

// Kind identifies the variant of a glyph program.
type Kind int

// These are the supported kinds of glyph programs.
const (
	// KindCIDKeyedCFF is a CFF font which uses CIDFont operators.
	// The charset of the font maps CIDs to glyph indices.
	KindCIDKeyedCFF Kind = iota + 1

	// KindPlainCFF is a CFF font without CIDFont operators.
	// CIDs are used directly as glyph indices.
	KindPlainCFF

	// KindTrueType is a TrueType or OpenType font with "glyf" outlines.
	KindTrueType
)

func (k Kind) String() string {
	switch k {
	case KindCIDKeyedCFF:
		return "CID-keyed CFF"
	case KindPlainCFF:
		return "CFF"
	case KindTrueType:
		return "TrueType"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Program is the functionality shared by all glyph programs.
type Program interface {
	// PostScriptName returns the name of the font program.
	PostScriptName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// FontMatrix returns the font matrix declared by the font program.
	// The result may be the zero matrix, if no matrix is declared.
	FontMatrix() matrix.Matrix

	// FontBBox returns the font bounding box in glyph space units
	// (1/1000 of a text space unit).
	FontBBox() rect.Rect

	// GlyphWidth returns the advance width of a glyph in font design units.
	// If gid is out of range, 0 is returned.
	GlyphWidth(gid glyph.ID) float64

	// GlyphBBox returns the bounding box of the glyph outline in glyph
	// space units.  For blank or missing glyphs the zero rectangle is
	// returned.
	GlyphBBox(gid glyph.ID) rect.Rect
}

// CFFProgram is a glyph program with CFF outlines.
type CFFProgram interface {
	Program

	// IsCIDKeyed reports whether the font uses CIDFont operators.
	IsCIDKeyed() bool

	// GID returns the glyph index for a CID, using the charset of a
	// CID-keyed font.  If the CID is not present in the charset, 0 is
	// returned.
	GID(cid.CID) glyph.ID

	// CID returns the CID of a glyph, using the charset of a CID-keyed
	// font.
	CID(glyph.ID) cid.CID

	// FontMatrices returns the font matrices of the font dicts of a
	// CID-keyed font.  These are applied before the matrix returned by
	// FontMatrix.  For other fonts, the result is nil.
	FontMatrices() []matrix.Matrix

	// FDSelect returns the index of the font dict used for a glyph.
	FDSelect(glyph.ID) int

	// Glyph returns the outline of a glyph, or nil if gid is out of range.
	Glyph(glyph.ID) *cff.Glyph
}

// TrueTypeProgram is a glyph program with TrueType outlines.
type TrueTypeProgram interface {
	Program

	// UnitsPerEm returns the number of design units per em.
	UnitsPerEm() uint16

	// CMapTable returns all "cmap" subtables of the font.
	CMapTable() cmap.Table

	// Ascent and Descent return the vertical extent of the font in design
	// units.
	Ascent() float64
	Descent() float64

	// HasLayoutTables reports whether the font contains OpenType layout
	// tables.
	HasLayoutTables() bool
}

// DefaultFontMatrix is the font matrix used when a font program does not
// declare a usable matrix.
var DefaultFontMatrix = matrix.Matrix{0.001, 0, 0, 0.001, 0, 0}

// CheckFontMatrix returns M if it is a usable font matrix, and
// [DefaultFontMatrix] otherwise.  A matrix is usable if all coefficients are
// finite and the matrix is invertible.
func CheckFontMatrix(M matrix.Matrix) matrix.Matrix {
	for _, x := range M {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return DefaultFontMatrix
		}
	}
	det := M[0]*M[3] - M[1]*M[2]
	if det == 0 {
		return DefaultFontMatrix
	}
	return M
}

// BlankName is the PostScript name of the placeholder font programs used
// in place of missing fonts.
const BlankName = "AdobeBlank"

// IsBlank reports whether p is a placeholder program for a missing font.
func IsBlank(p Program) bool {
	return p != nil && p.PostScriptName() == BlankName
}
