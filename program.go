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
	"fmt"

	"seehuhn.de/go/cidfont/glyphdata"
)

// Source describes where the glyph program of a font came from.
type Source int

// These are the possible sources of a glyph program.
const (
	// Embedded indicates that the font program was embedded in the PDF file.
	Embedded Source = iota + 1

	// Substitute indicates a font program with the same PostScript name
	// as the font.
	Substitute

	// Fallback indicates a font program chosen using the character
	// collection and the font descriptor.
	Fallback

	// Blank indicates that no font program was available and a blank
	// placeholder font is used.
	Blank
)

func (s Source) String() string {
	switch s {
	case Embedded:
		return "embedded"
	case Substitute:
		return "substitute"
	case Fallback:
		return "fallback"
	case Blank:
		return "blank"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Resolved is the glyph program selected for a CIDFont.
//
// Exactly one of CFF and TrueType is set, as indicated by Kind.
// Resolved values are not modified after construction.
type Resolved struct {
	Kind glyphdata.Kind

	CFF      glyphdata.CFFProgram
	TrueType glyphdata.TrueTypeProgram

	Source Source

	// IsEmbedded is true if the glyph program was read from the PDF file.
	IsEmbedded bool

	// IsDamaged is true if the embedded font data could not be decoded.
	// This implies IsEmbedded.
	IsDamaged bool
}

// Program returns the glyph program as a [glyphdata.Program].
func (r *Resolved) Program() glyphdata.Program {
	switch r.Kind {
	case glyphdata.KindCIDKeyedCFF, glyphdata.KindPlainCFF:
		return r.CFF
	case glyphdata.KindTrueType:
		return r.TrueType
	default:
		panic("unreachable")
	}
}

func resolvedCFF(p glyphdata.CFFProgram, src Source) *Resolved {
	kind := glyphdata.KindPlainCFF
	if p.IsCIDKeyed() {
		kind = glyphdata.KindCIDKeyedCFF
	}
	return &Resolved{
		Kind:       kind,
		CFF:        p,
		Source:     src,
		IsEmbedded: src == Embedded,
	}
}

func resolvedTrueType(p glyphdata.TrueTypeProgram, src Source) *Resolved {
	return &Resolved{
		Kind:       glyphdata.KindTrueType,
		TrueType:   p,
		Source:     src,
		IsEmbedded: src == Embedded,
	}
}
