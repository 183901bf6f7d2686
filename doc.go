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

// Package cidfont maps character codes of composite PDF fonts to glyphs.
//
// A composite (Type 0) font uses a CMap to map character codes to CIDs, and
// a descendant CIDFont to map CIDs to glyphs of a font program.  The font
// program is either a CFF font (CIDFontType0) or a TrueType/OpenType font
// (CIDFontType2).  If the font program is not embedded in the PDF file, a
// substitute program is used instead.
//
// [New] selects the glyph program for a CIDFont, using the following
// order:
//
//  1. Embedded font data, if present.  If the data cannot be decoded, the
//     font is marked as damaged and an empty glyph program is used.
//  2. A substitute font program, looked up by the PostScript name of the
//     font.
//  3. A fallback font program, chosen using the character collection and the
//     font descriptor.  If nothing suitable is available, a blank placeholder
//     font is used.
//
// The resulting [Font] can be used concurrently from different goroutines.
package cidfont
