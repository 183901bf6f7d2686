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

	"seehuhn.de/go/cidfont/glyphdata"
	"seehuhn.de/go/cidfont/glyphdata/cffglyphs"
	"seehuhn.de/go/cidfont/glyphdata/sfntglyphs"
)

// Substituter provides font programs for CIDFonts which are not embedded.
//
// The methods must return the same program object when called repeatedly
// with the same arguments.
type Substituter interface {
	// CFFByName returns a CFF font program with the given PostScript name,
	// or nil if no such font is available.
	CFFByName(name string) glyphdata.CFFProgram

	// TrueTypeByName returns a TrueType font program with the given
	// PostScript name, or nil if no such font is available.
	TrueTypeByName(name string) glyphdata.TrueTypeProgram

	// CFFFallback returns a CFF font program suitable for the character
	// collection ros (in the form "Registry-Ordering", or "" if unknown) and
	// the font descriptor fd (which may be nil).
	// The result is never nil.  If no suitable font is available, the
	// result of [cffglyphs.Blank] is returned.
	CFFFallback(ros string, fd *Descriptor) glyphdata.CFFProgram

	// TrueTypeFallback is like CFFFallback, but for TrueType font programs.
	TrueTypeFallback(ros string, fd *Descriptor) glyphdata.TrueTypeProgram
}

// Options allows to customize how glyph programs are selected.
type Options struct {
	// Logger receives diagnostic messages about damaged and substituted
	// fonts.  If this is nil, [slog.Default] is used.
	Logger *slog.Logger

	// Substituter provides fonts which are not embedded.
	Substituter Substituter

	// DecodeCFF decodes embedded data for CIDFontType0 fonts.
	DecodeCFF func(data []byte, tp glyphdata.Type) (glyphdata.CFFProgram, error)

	// DecodeTrueType decodes embedded data for CIDFontType2 fonts.
	DecodeTrueType func(data []byte, tp glyphdata.Type) (glyphdata.TrueTypeProgram, error)
}

var defaultOptions = &Options{
	Substituter: &placeholders{
		cff:      cffglyphs.Blank(),
		trueType: sfntglyphs.Blank(),
	},
	DecodeCFF: func(data []byte, tp glyphdata.Type) (glyphdata.CFFProgram, error) {
		return cffglyphs.Decode(data, tp)
	},
	DecodeTrueType: func(data []byte, tp glyphdata.Type) (glyphdata.TrueTypeProgram, error) {
		return sfntglyphs.Decode(data, tp)
	},
}

// MergeOptions takes an options struct and a default values struct and
// returns a new options struct with all fields set to the values from opt,
// except for fields which are zero in opt.
// opt can be nil in which case the default values are returned.
// defaultValues must not be nil.
func MergeOptions(opt, defaultValues *Options) *Options {
	if opt == nil {
		return defaultValues
	}

	res := &Options{}
	if opt.Logger != nil {
		res.Logger = opt.Logger
	} else {
		res.Logger = defaultValues.Logger
	}
	if opt.Substituter != nil {
		res.Substituter = opt.Substituter
	} else {
		res.Substituter = defaultValues.Substituter
	}
	if opt.DecodeCFF != nil {
		res.DecodeCFF = opt.DecodeCFF
	} else {
		res.DecodeCFF = defaultValues.DecodeCFF
	}
	if opt.DecodeTrueType != nil {
		res.DecodeTrueType = opt.DecodeTrueType
	} else {
		res.DecodeTrueType = defaultValues.DecodeTrueType
	}
	return res
}

// placeholders is a Substituter which knows no fonts.
// All fallback requests are answered with blank fonts.
type placeholders struct {
	cff      glyphdata.CFFProgram
	trueType glyphdata.TrueTypeProgram
}

func (p *placeholders) CFFByName(string) glyphdata.CFFProgram {
	return nil
}

func (p *placeholders) TrueTypeByName(string) glyphdata.TrueTypeProgram {
	return nil
}

func (p *placeholders) CFFFallback(string, *Descriptor) glyphdata.CFFProgram {
	return p.cff
}

func (p *placeholders) TrueTypeFallback(string, *Descriptor) glyphdata.TrueTypeProgram {
	return p.trueType
}
