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

// Package loader provides font programs for CIDFonts which are not embedded
// in a PDF file.
//
// A [FontLoader] knows the Go fonts and a set of font files registered
// using [FontLoader.AddFontMap], [FontLoader.AddFont] or a configuration
// file.  It implements the [cidfont.Substituter] interface.
package loader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/cidfont"
	"seehuhn.de/go/cidfont/glyphdata"
	"seehuhn.de/go/cidfont/glyphdata/cffglyphs"
	"seehuhn.de/go/cidfont/glyphdata/sfntglyphs"
)

// FontType is the type of a font file.
type FontType int

// Supported font types.
const (
	// FontTypeCFF is a bare CFF font file.
	FontTypeCFF FontType = iota + 1

	// FontTypeSfnt is a TrueType or OpenType font file.
	FontTypeSfnt
)

func (tp FontType) String() string {
	switch tp {
	case FontTypeCFF:
		return "cff"
	case FontTypeSfnt:
		return "sfnt"
	default:
		return fmt.Sprintf("FontType(%d)", int(tp))
	}
}

func parseFontType(s string) (FontType, error) {
	switch s {
	case "cff":
		return FontTypeCFF, nil
	case "sfnt":
		return FontTypeSfnt, nil
	default:
		return 0, fmt.Errorf("invalid font type %q", s)
	}
}

// A FontLoader provides font programs by PostScript name, and chooses
// fallback fonts for fonts which are not available.
//
// It is safe to use a FontLoader concurrently from multiple goroutines.
type FontLoader struct {
	sync.RWMutex
	lookup   map[key]*val
	fallback map[language.Tag][]string

	// Logger receives messages about font files which cannot be used.
	// If this is nil, [slog.Default] is used.
	Logger *slog.Logger

	cacheMu sync.Mutex
	cache   map[key]*entry

	blankCFF      *cffglyphs.Program
	blankTrueType *sfntglyphs.Program
}

var _ cidfont.Substituter = (*FontLoader)(nil)

type key struct {
	psname   string
	fontType FontType
}

type val struct {
	fname     string
	isBuiltin bool
}

// id identifies the font data of type tp, for caching.
func (v *val) id(tp FontType) key {
	if v.isBuiltin {
		return key{"builtin:" + v.fname, tp}
	}
	return key{"file:" + v.fname, tp}
}

type entry struct {
	prog glyphdata.Program
	err  error
}

// New creates a new font loader.
// The loader is initialized with the Go fonts, which are also used as
// substitutes for the Latin standard fonts.
func New() *FontLoader {
	res := &FontLoader{
		lookup:        make(map[key]*val),
		fallback:      make(map[language.Tag][]string),
		cache:         make(map[key]*entry),
		blankCFF:      cffglyphs.Blank(),
		blankTrueType: sfntglyphs.Blank(),
	}

	// There should not be any errors for the builtin fonts.
	err := res.AddFontMap(strings.NewReader(builtinFontMap))
	if err != nil {
		panic(err)
	}
	for _, font := range res.lookup {
		font.isBuiltin = true
	}

	return res
}

// Open opens the font file with the given PostScript name.  The returned
// io.ReadCloser must be closed by the caller.
func (l *FontLoader) Open(postscriptName string) (FontType, io.ReadCloser, error) {
	font, tp := l.find(postscriptName)
	if font == nil {
		return 0, nil, fs.ErrNotExist
	}
	r, err := font.open()
	if err != nil {
		return 0, nil, err
	}
	return tp, r, nil
}

func (l *FontLoader) find(postscriptName string) (*val, FontType) {
	l.RLock()
	defer l.RUnlock()
	for _, tp := range []FontType{FontTypeCFF, FontTypeSfnt} {
		if font, ok := l.lookup[key{postscriptName, tp}]; ok {
			return font, tp
		}
	}
	return nil, 0
}

func (v *val) open() (io.ReadCloser, error) {
	if v.isBuiltin {
		data, ok := builtin[v.fname]
		if !ok {
			return nil, fs.ErrNotExist
		}
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	return os.Open(v.fname)
}

// AddFontMap reads a font map from r and adds it to the loader.  A font map
// consists of lines of the form
//
//	<name> <type> <path>
//
// where <name> is the PostScript name of the font, <type> is either "cff"
// or "sfnt", and <path> is the path to the font file.  The fields must be
// separated by single spaces.  Lines starting with '#' or '%' are ignored.
//
// Any previous mapping for (<name>, <type>) is overwritten.
func (l *FontLoader) AddFontMap(r io.Reader) error {
	lines := bufio.NewScanner(r)
	for lines.Scan() {
		line := lines.Text()
		line = strings.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' || line[0] == '%' {
			continue
		}

		parts := strings.SplitN(line, " ", 3)
		if len(parts) != 3 {
			return fmt.Errorf("invalid font map line: %q", line)
		}
		fontType, err := parseFontType(parts[1])
		if err != nil {
			return err
		}

		l.AddFont(parts[0], fontType, parts[2])
	}
	return lines.Err()
}

// AddFont adds a font file to the loader.  Any previous mapping for the same
// PostScript name and font type is overwritten.
func (l *FontLoader) AddFont(postscriptName string, tp FontType, fname string) {
	key := key{postscriptName, tp}
	l.Lock()
	l.lookup[key] = &val{fname: fname}
	l.Unlock()
}

// AddFallback registers fallback fonts for text in the given language.
// The fonts are identified by PostScript name and are tried in order.
// Fonts registered for [language.Und] are used when the language of a
// font is not known.
func (l *FontLoader) AddFallback(lang language.Tag, names ...string) {
	l.Lock()
	l.fallback[lang] = append(l.fallback[lang], names...)
	l.Unlock()
}

// program returns the decoded font program registered for the given
// PostScript name and font type.  Decoded programs are cached, so that
// repeated calls return the same object.
func (l *FontLoader) program(postscriptName string, tp FontType) (glyphdata.Program, error) {
	l.RLock()
	font := l.lookup[key{postscriptName, tp}]
	l.RUnlock()
	if font == nil {
		return nil, fs.ErrNotExist
	}

	id := font.id(tp)
	l.cacheMu.Lock()
	defer l.cacheMu.Unlock()
	if e, ok := l.cache[id]; ok {
		return e.prog, e.err
	}

	prog, err := decode(font, tp)
	if err != nil {
		err = fmt.Errorf("font %q: %w", postscriptName, err)
		l.logger().Warn("cannot load font", "error", err)
	}
	l.cache[id] = &entry{prog: prog, err: err}
	return prog, err
}

func decode(font *val, tp FontType) (glyphdata.Program, error) {
	r, err := font.open()
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	err2 := r.Close()
	if err == nil {
		err = err2
	}
	if err != nil {
		return nil, err
	}

	switch tp {
	case FontTypeCFF:
		return cffglyphs.Decode(data, glyphdata.CFF)
	default:
		info, err := sfnt.Read(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		if info.IsCFF() {
			return cffglyphs.New(info.AsCFF()), nil
		} else if info.IsGlyf() {
			return sfntglyphs.New(info), nil
		}
		return nil, &glyphdata.InvalidFontError{
			SubSystem: "loader",
			Reason:    "no glyph outlines",
		}
	}
}

func (l *FontLoader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

// CFFByName implements the [cidfont.Substituter] interface.
//
// Bare CFF files are preferred.  If there is none, an OpenType font with
// CFF outlines is used.
func (l *FontLoader) CFFByName(name string) glyphdata.CFFProgram {
	for _, tp := range []FontType{FontTypeCFF, FontTypeSfnt} {
		p, err := l.program(name, tp)
		if err != nil {
			continue
		}
		if c, ok := p.(glyphdata.CFFProgram); ok {
			return c
		}
	}
	return nil
}

// TrueTypeByName implements the [cidfont.Substituter] interface.
func (l *FontLoader) TrueTypeByName(name string) glyphdata.TrueTypeProgram {
	p, err := l.program(name, FontTypeSfnt)
	if err != nil {
		return nil
	}
	if t, ok := p.(glyphdata.TrueTypeProgram); ok {
		return t
	}
	return nil
}
