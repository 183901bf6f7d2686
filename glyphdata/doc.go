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

// Package glyphdata provides access to the glyph programs used by CIDFonts.
//
// A glyph program is either a CFF font (CID-keyed or not) or a TrueType
// font.  This package defines the interfaces [CFFProgram] and
// [TrueTypeProgram], which expose the information needed to select glyphs
// and to compute glyph metrics.  Implementations, together with decoders
// for embedded font data, are in the subpackages cffglyphs and sfntglyphs.
package glyphdata
