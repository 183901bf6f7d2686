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
	"cmp"
	"slices"

	"golang.org/x/exp/maps"
	"golang.org/x/text/language"

	"seehuhn.de/go/cidfont"
	"seehuhn.de/go/cidfont/glyphdata"
)

// rosLanguage maps the Adobe character collections to the language of the
// text they are intended for.
var rosLanguage = map[string]language.Tag{
	"Adobe-Japan1": language.Japanese,
	"Adobe-Japan2": language.Japanese,
	"Adobe-GB1":    language.SimplifiedChinese,
	"Adobe-CNS1":   language.TraditionalChinese,
	"Adobe-Korea1": language.Korean,
	"Adobe-KR":     language.Korean,
}

// candidates returns the names of the configured fallback fonts for the
// character collection ros.  The boolean result indicates whether ros
// belongs to a known CJK character collection.
func (l *FontLoader) candidates(ros string) ([]string, bool) {
	l.RLock()
	defer l.RUnlock()

	lang, isCJK := rosLanguage[ros]
	if !isCJK {
		return slices.Clone(l.fallback[language.Und]), false
	}

	keys := maps.Keys(l.fallback)
	slices.SortFunc(keys, compareTags)
	var tags []language.Tag
	for _, tag := range keys {
		if tag != language.Und {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil, true
	}
	_, idx, conf := language.NewMatcher(tags).Match(lang)
	if conf < language.High {
		return nil, true
	}
	return slices.Clone(l.fallback[tags[idx]]), true
}

func compareTags(a, b language.Tag) int {
	return cmp.Compare(a.String(), b.String())
}

// CFFFallback implements the [cidfont.Substituter] interface.
//
// The configured fallback fonts for the character collection are tried in
// order.  If none of these is a usable CFF font, a blank font is returned.
func (l *FontLoader) CFFFallback(ros string, fd *cidfont.Descriptor) glyphdata.CFFProgram {
	names, _ := l.candidates(ros)
	for _, name := range names {
		if p := l.CFFByName(name); p != nil {
			return p
		}
	}
	return l.blankCFF
}

// TrueTypeFallback implements the [cidfont.Substituter] interface.
//
// The configured fallback fonts for the character collection are tried in
// order.  For character collections other than the Chinese, Japanese and
// Korean ones, a Go font matching the font descriptor is used if no
// configured font is available.  Otherwise a blank font is returned.
func (l *FontLoader) TrueTypeFallback(ros string, fd *cidfont.Descriptor) glyphdata.TrueTypeProgram {
	names, isCJK := l.candidates(ros)
	for _, name := range names {
		if p := l.TrueTypeByName(name); p != nil {
			return p
		}
	}
	if !isCJK {
		var mono, bold, italic bool
		if fd != nil {
			mono = fd.IsFixedPitch
			bold = fd.IsBold()
			italic = fd.IsItalic
		}
		if p := l.TrueTypeByName(goFontName(mono, bold, italic)); p != nil {
			return p
		}
	}
	return l.blankTrueType
}
