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
	"strings"

	"seehuhn.de/go/postscript/cid"
)

// Code is a character code of a composite font.
type Code uint32

// CMap maps character codes to CIDs.
//
// A CMap may instead (or in addition) map character codes to Unicode text.
type CMap interface {
	// Name returns the name of the CMap, e.g. "Identity-H".
	Name() string

	// LookupCID returns the CID for a character code.
	// Unmapped codes return 0.
	LookupCID(code Code) cid.CID

	// HasCIDMappings reports whether the CMap maps codes to CIDs.
	HasCIDMappings() bool

	// HasUnicodeMappings reports whether the CMap maps codes to text.
	HasUnicodeMappings() bool

	// ToUnicode returns the text for a character code.
	ToUnicode(code Code) (string, bool)
}

// Parent is the Type 0 font which owns a CIDFont.
type Parent interface {
	// CMap returns the encoding of the Type 0 font.
	CMap() CMap

	// ToUnicode returns the text represented by a character code.
	ToUnicode(code Code) (string, bool)

	// UCS2 returns a CMap which maps UCS-2 code points to CIDs of the
	// character collection of the font.  If no such CMap exists, nil is
	// returned.
	UCS2() CMap
}

// isIdentity reports whether a CMap is one of the predefined Identity CMaps.
func isIdentity(c CMap) bool {
	return c != nil && strings.HasPrefix(c.Name(), "Identity-")
}

// identity is one of the predefined Identity CMaps.
type identity string

// These are the predefined Identity CMaps.
var (
	IdentityH CMap = identity("Identity-H")
	IdentityV CMap = identity("Identity-V")
)

func (c identity) Name() string {
	return string(c)
}

func (c identity) LookupCID(code Code) cid.CID {
	return cid.CID(code)
}

func (c identity) HasCIDMappings() bool {
	return true
}

func (c identity) HasUnicodeMappings() bool {
	return false
}

func (c identity) ToUnicode(Code) (string, bool) {
	return "", false
}

// TableCMap is a CMap given by explicit tables.
type TableCMap struct {
	CMapName string
	CIDs     map[Code]cid.CID
	Text     map[Code]string
}

var _ CMap = (*TableCMap)(nil)

// Name implements the [CMap] interface.
func (c *TableCMap) Name() string {
	return c.CMapName
}

// LookupCID implements the [CMap] interface.
func (c *TableCMap) LookupCID(code Code) cid.CID {
	return c.CIDs[code]
}

// HasCIDMappings implements the [CMap] interface.
func (c *TableCMap) HasCIDMappings() bool {
	return len(c.CIDs) > 0
}

// HasUnicodeMappings implements the [CMap] interface.
func (c *TableCMap) HasUnicodeMappings() bool {
	return len(c.Text) > 0
}

// ToUnicode implements the [CMap] interface.
func (c *TableCMap) ToUnicode(code Code) (string, bool) {
	s, ok := c.Text[code]
	return s, ok
}

// Type0 is a [Parent] with fixed tables.
type Type0 struct {
	// Encoding is the CMap of the font.
	Encoding CMap

	// Text maps character codes to text, like a ToUnicode CMap.
	// If a code is missing here, the Unicode mappings of Encoding
	// are used.
	Text map[Code]string

	// UCS2Map maps UCS-2 code points to CIDs.  This is optional.
	UCS2Map CMap
}

var _ Parent = (*Type0)(nil)

// CMap implements the [Parent] interface.
func (f *Type0) CMap() CMap {
	return f.Encoding
}

// ToUnicode implements the [Parent] interface.
func (f *Type0) ToUnicode(code Code) (string, bool) {
	if s, ok := f.Text[code]; ok {
		return s, true
	}
	if f.Encoding != nil && f.Encoding.HasUnicodeMappings() {
		return f.Encoding.ToUnicode(code)
	}
	return "", false
}

// UCS2 implements the [Parent] interface.
func (f *Type0) UCS2() CMap {
	return f.UCS2Map
}
