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

import "fmt"

// Type describes the container format of embedded font data.
type Type int

const (
	// None indicates that no glyph data is embedded.
	None Type = iota

	// CFF indicates a bare CFF font program.  In PDF files, this data is
	// stored in a FontFile3 stream with subtype CIDFontType0C.
	CFF

	// OpenTypeCFF indicates an OpenType font with a "CFF " table.  In PDF
	// files, this data is stored in a FontFile3 stream with subtype OpenType.
	OpenTypeCFF

	// OpenTypeGlyf indicates an OpenType font with a "glyf" table.  In PDF
	// files, this data is stored in a FontFile3 stream with subtype OpenType.
	OpenTypeGlyf

	// TrueType indicates a TrueType font program, stored in a FontFile2
	// stream.
	TrueType
)

func (t Type) String() string {
	switch t {
	case None:
		return "None"
	case CFF:
		return "CFF"
	case OpenTypeCFF:
		return "OpenType/CFF"
	case OpenTypeGlyf:
		return "OpenType/glyf"
	case TrueType:
		return "TrueType"
	default:
		return fmt.Sprintf("Type(%d)", t)
	}
}

// IsCFF reports whether font data of type t can be used for a Type 0 CIDFont.
func (t Type) IsCFF() bool {
	return t == CFF || t == OpenTypeCFF
}

// IsTrueType reports whether font data of type t can be used for a Type 2
// CIDFont.
func (t Type) IsTrueType() bool {
	return t == TrueType || t == OpenTypeGlyf
}
