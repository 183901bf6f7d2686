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
	"bytes"
	"fmt"
	"io"

	"seehuhn.de/go/postscript/cid"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/cidfont/glyphdata"
)

// Subtype distinguishes the two kinds of CIDFonts.
type Subtype int

// These are the supported CIDFont subtypes.
const (
	// CIDFontType0 is a CIDFont with CFF glyph outlines.
	CIDFontType0 Subtype = iota

	// CIDFontType2 is a CIDFont with TrueType glyph outlines.
	CIDFontType2
)

func (s Subtype) String() string {
	switch s {
	case CIDFontType0:
		return "CIDFontType0"
	case CIDFontType2:
		return "CIDFontType2"
	default:
		return fmt.Sprintf("Subtype(%d)", int(s))
	}
}

// Dict holds the information from a CIDFont dictionary which is needed to
// select glyphs.
//
// See section 9.7.4 of ISO 32000-2:2020.
type Dict struct {
	Subtype Subtype

	// BaseFont is the PostScript name of the font.
	BaseFont string

	// ROS describes the character collection of the font.
	// This is optional.
	ROS *cid.SystemInfo

	// Descriptor is the font descriptor.  This is optional.
	Descriptor *Descriptor

	// FontFile is the embedded font program.
	// If this is nil, the font is not embedded.
	FontFile *FontFile

	// CIDToGIDMap is the raw content of the CIDToGIDMap stream.  This is
	// only used for CIDFontType2 fonts.  If this is nil and
	// IdentityCIDToGID is false, no mapping was given in the PDF file.
	CIDToGIDMap []byte

	// IdentityCIDToGID is true if the CIDToGIDMap entry was given as
	// /Identity.
	IdentityCIDToGID bool

	// Parent is the Type 0 font which uses this CIDFont.
	Parent Parent
}

// Descriptor holds the parts of a PDF font descriptor which are used to
// choose fallback fonts.
//
// See section 9.8.1 of ISO 32000-2:2020.
type Descriptor struct {
	FontName   string
	FontFamily string
	FontWeight os2.Weight

	IsFixedPitch bool // flag
	IsSerif      bool // flag
	IsSymbolic   bool // flag
	IsScript     bool // flag
	IsItalic     bool // flag
	ForceBold    bool // flag
}

// IsBold reports whether the descriptor asks for a bold font.
func (fd *Descriptor) IsBold() bool {
	return fd.ForceBold || fd.FontWeight >= os2.WeightBold
}

// FontFile is an embedded font program.
type FontFile struct {
	// Type is the container format declared in the PDF file.
	Type glyphdata.Type

	// Open returns a reader for the decoded font data.
	Open func() (io.ReadCloser, error)
}

// read returns the complete font data.
func (ff *FontFile) read() ([]byte, error) {
	if ff.Open == nil {
		return nil, errMissingData
	}
	r, err := ff.Open()
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	err2 := r.Close()
	if err == nil {
		err = err2
	}
	return data, err
}

// DataFile returns a FontFile which serves the given font data.
func DataFile(tp glyphdata.Type, data []byte) *FontFile {
	return &FontFile{
		Type: tp,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}
