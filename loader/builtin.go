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

package loader

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// builtin holds the font data of the Go fonts.
var builtin = map[string][]byte{
	"go/regular":        goregular.TTF,
	"go/bold":           gobold.TTF,
	"go/italic":         goitalic.TTF,
	"go/bolditalic":     gobolditalic.TTF,
	"go/mono":           gomono.TTF,
	"go/monobold":       gomonobold.TTF,
	"go/monoitalic":     gomonoitalic.TTF,
	"go/monobolditalic": gomonobolditalic.TTF,
}

// builtinFontMap lists the Go fonts, and the standard fonts for which Go
// fonts are used as substitutes.
const builtinFontMap = `# Go fonts
Go-Regular sfnt go/regular
Go-Bold sfnt go/bold
Go-Italic sfnt go/italic
Go-BoldItalic sfnt go/bolditalic
Go-Mono sfnt go/mono
Go-Mono-Bold sfnt go/monobold
Go-Mono-Italic sfnt go/monoitalic
Go-Mono-BoldItalic sfnt go/monobolditalic

# standard fonts
Helvetica sfnt go/regular
Helvetica-Bold sfnt go/bold
Helvetica-Oblique sfnt go/italic
Helvetica-BoldOblique sfnt go/bolditalic
Times-Roman sfnt go/regular
Times-Bold sfnt go/bold
Times-Italic sfnt go/italic
Times-BoldItalic sfnt go/bolditalic
Courier sfnt go/mono
Courier-Bold sfnt go/monobold
Courier-Oblique sfnt go/monoitalic
Courier-BoldOblique sfnt go/monobolditalic
`

// goFontName returns the name of the Go font which best matches the
// given style.
func goFontName(mono, bold, italic bool) string {
	name := "Go-"
	if mono {
		name += "Mono-"
	}
	switch {
	case bold && italic:
		name += "BoldItalic"
	case bold:
		name += "Bold"
	case italic:
		name += "Italic"
	case mono:
		return "Go-Mono"
	default:
		name += "Regular"
	}
	return name
}
