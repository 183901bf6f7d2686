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
	"errors"
	"fmt"
)

var (
	// ErrNoGlyph is matched by [NoGlyphError] values using [errors.Is].
	ErrNoGlyph = errors.New("no glyph for code point")

	errMissingParent = errors.New("CIDFont without parent font")
	errMissingData   = errors.New("no font data")
)

// NoGlyphError is returned by [Font.Encode] if a character cannot be
// represented by the font.
type NoGlyphError struct {
	Rune rune
	Font string
}

func (err *NoGlyphError) Error() string {
	return fmt.Sprintf("font %q: no glyph for %q (U+%04X)", err.Font, err.Rune, err.Rune)
}

// Is allows to match NoGlyphError values against [ErrNoGlyph].
func (err *NoGlyphError) Is(target error) bool {
	return target == ErrNoGlyph
}
