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
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"

	"seehuhn.de/go/postscript/cid"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/cidfont"
	"seehuhn.de/go/cidfont/glyphdata"
	"seehuhn.de/go/cidfont/glyphdata/cffglyphs"
)

func quiet(l *FontLoader) *FontLoader {
	l.Logger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return l
}

func TestBuiltinFonts(t *testing.T) {
	loader := New()

	names := []string{
		"Go-Regular",
		"Go-Bold",
		"Go-Italic",
		"Go-BoldItalic",
		"Go-Mono",
		"Go-Mono-Bold",
		"Go-Mono-Italic",
		"Go-Mono-BoldItalic",
		"Helvetica",
		"Times-Roman",
		"Courier-BoldOblique",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			tp, r, err := loader.Open(name)
			if err != nil {
				t.Fatalf("error loading font %q: %v", name, err)
			}
			if tp != FontTypeSfnt {
				t.Errorf("expected font type %v, got %v", FontTypeSfnt, tp)
			}

			data, err := io.ReadAll(r)
			if err != nil {
				t.Fatal(err)
			}
			info, err := sfnt.Read(bytes.NewReader(data))
			if err != nil {
				t.Errorf("error reading font %q: %v", name, err)
			} else if !info.IsGlyf() {
				t.Errorf("font %q has no glyf outlines", name)
			}

			err = r.Close()
			if err != nil {
				t.Errorf("error closing font %q: %v", name, err)
			}
		})
	}

	_, _, err := loader.Open("Unknown")
	if err == nil {
		t.Error("unknown font opened without error")
	}
}

func TestByName(t *testing.T) {
	loader := New()

	helvetica := loader.TrueTypeByName("Helvetica")
	if helvetica == nil {
		t.Fatal("no substitute for Helvetica")
	}
	if loader.TrueTypeByName("Helvetica") != helvetica {
		t.Error("repeated lookup returned a different program")
	}
	if loader.TrueTypeByName("Go-Regular") != helvetica {
		t.Error("Helvetica is not mapped to Go-Regular")
	}
	if loader.CFFByName("Helvetica") != nil {
		t.Error("TrueType font returned as CFF")
	}
	if loader.TrueTypeByName("Unknown") != nil {
		t.Error("unknown font found")
	}
}

func TestGoFontFallback(t *testing.T) {
	loader := New()

	cases := []struct {
		fd   *cidfont.Descriptor
		want string
	}{
		{nil, "Go-Regular"},
		{&cidfont.Descriptor{}, "Go-Regular"},
		{&cidfont.Descriptor{IsFixedPitch: true}, "Go-Mono"},
		{&cidfont.Descriptor{IsItalic: true}, "Go-Italic"},
		{&cidfont.Descriptor{ForceBold: true}, "Go-Bold"},
		{&cidfont.Descriptor{FontWeight: 700, IsItalic: true}, "Go-BoldItalic"},
		{&cidfont.Descriptor{IsFixedPitch: true, FontWeight: 800}, "Go-Mono-Bold"},
	}
	for i, c := range cases {
		got := loader.TrueTypeFallback("Adobe-Identity", c.fd)
		want := loader.TrueTypeByName(c.want)
		if got != want {
			t.Errorf("%d: got %s, want %s", i, got.PostScriptName(), c.want)
		}
	}
}

func TestBlankFallback(t *testing.T) {
	loader := New()

	tt := loader.TrueTypeFallback("Adobe-Japan1", nil)
	if !glyphdata.IsBlank(tt) {
		t.Errorf("got %s, want blank font", tt.PostScriptName())
	}
	if loader.TrueTypeFallback("Adobe-Korea1", nil) != tt {
		t.Error("blank fonts differ")
	}

	c := loader.CFFFallback("", nil)
	if !glyphdata.IsBlank(c) {
		t.Errorf("got %s, want blank font", c.PostScriptName())
	}
}

func TestConfiguredFallback(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "font.ttf")
	err := os.WriteFile(fname, goregular.TTF, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	conf := &Config{
		Fonts: []*FontConfig{
			{Name: "Test-JP", Type: "sfnt", Path: fname},
		},
		Fallback: map[string][]string{
			"ja": {"Missing", "Test-JP"},
		},
	}
	loader := quiet(New())
	err = loader.Configure(conf)
	if err != nil {
		t.Fatal(err)
	}

	want := loader.TrueTypeByName("Test-JP")
	if want == nil {
		t.Fatal("configured font not found")
	}
	if got := loader.TrueTypeFallback("Adobe-Japan1", nil); got != want {
		t.Errorf("Japanese fallback: got %s", got.PostScriptName())
	}
	if got := loader.TrueTypeFallback("Adobe-Korea1", nil); !glyphdata.IsBlank(got) {
		t.Errorf("Korean fallback: got %s", got.PostScriptName())
	}
	if got := loader.CFFFallback("Adobe-Japan1", nil); !glyphdata.IsBlank(got) {
		t.Errorf("CFF fallback: got %s", got.PostScriptName())
	}
}

func TestUnknownLanguageFallback(t *testing.T) {
	loader := quiet(New())
	loader.AddFallback(language.Und, "Go-Mono")

	got := loader.TrueTypeFallback("", nil)
	if got != loader.TrueTypeByName("Go-Mono") {
		t.Errorf("got %s, want Go-Mono", got.PostScriptName())
	}
}

func TestBrokenFile(t *testing.T) {
	buf := &bytes.Buffer{}
	loader := New()
	loader.Logger = slog.New(slog.NewTextHandler(buf, nil))

	dir := t.TempDir()
	fname := filepath.Join(dir, "broken.ttf")
	err := os.WriteFile(fname, goregular.TTF[:200], 0o644)
	if err != nil {
		t.Fatal(err)
	}
	loader.AddFont("Broken", FontTypeSfnt, fname)
	loader.AddFont("Gone", FontTypeCFF, filepath.Join(dir, "missing.cff"))

	if p := loader.TrueTypeByName("Broken"); p != nil {
		t.Error("broken font loaded")
	}
	if p := loader.CFFByName("Gone"); p != nil {
		t.Error("missing font loaded")
	}
	if !strings.Contains(buf.String(), "Broken") {
		t.Errorf("broken font not logged: %q", buf.String())
	}
}

func TestSameNameBothTypes(t *testing.T) {
	loader := quiet(New())

	dir := t.TempDir()
	cffFile := filepath.Join(dir, "x.cff")
	buf := &bytes.Buffer{}
	err := cffglyphs.Blank().Font.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(cffFile, buf.Bytes(), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	ttFile := filepath.Join(dir, "x.ttf")
	err = os.WriteFile(ttFile, goregular.TTF, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	loader.AddFont("X", FontTypeSfnt, ttFile)
	loader.AddFont("X", FontTypeCFF, cffFile)

	tt := loader.TrueTypeByName("X")
	if tt == nil {
		t.Fatal("TrueType font not found")
	}
	if tt.NumGlyphs() < 100 {
		t.Errorf("TrueType font has %d glyphs", tt.NumGlyphs())
	}
	c := loader.CFFByName("X")
	if c == nil {
		t.Fatal("CFF font not found")
	}
	if !glyphdata.IsBlank(c) {
		t.Errorf("CFF font is %q", c.PostScriptName())
	}

	// the same file registered under both types is decoded separately
	loader.AddFont("Y", FontTypeCFF, ttFile)
	loader.AddFont("Y", FontTypeSfnt, ttFile)
	if loader.CFFByName("Y") != nil {
		t.Error("TrueType data used as CFF font")
	}
	if loader.TrueTypeByName("Y") != tt {
		t.Error("TrueType program not shared")
	}
}

func TestAddFontMap(t *testing.T) {
	loader := New()
	err := loader.AddFontMap(strings.NewReader(`# comment
% another comment

A cff /fonts/a.cff
B sfnt /fonts/with space.otf
`))
	if err != nil {
		t.Fatal(err)
	}
	if font, tp := loader.find("B"); font == nil || tp != FontTypeSfnt || font.fname != "/fonts/with space.otf" {
		t.Errorf("B: got %v %v", font, tp)
	}
	if font, tp := loader.find("A"); font == nil || tp != FontTypeCFF {
		t.Errorf("A: got %v %v", font, tp)
	}

	bad := []string{
		"A cff",
		"A type1 /fonts/a.pfb",
	}
	for _, m := range bad {
		if err := loader.AddFontMap(strings.NewReader(m)); err == nil {
			t.Errorf("%q: no error", m)
		}
	}
}

func TestParseConfig(t *testing.T) {
	good := `
fonts:
  - name: NotoSansCJKjp-Regular
    type: sfnt
    path: /fonts/NotoSansCJKjp-Regular.otf
fallback:
  ja: [NotoSansCJKjp-Regular]
  und: [Go-Regular]
`
	conf, err := ParseConfig([]byte(good))
	if err != nil {
		t.Fatal(err)
	}
	if len(conf.Fonts) != 1 || conf.Fonts[0].Type != "sfnt" {
		t.Errorf("unexpected fonts %v", conf.Fonts)
	}
	if len(conf.Fallback["und"]) != 1 {
		t.Errorf("unexpected fallback %v", conf.Fallback)
	}

	cases := []struct {
		yaml  string
		field string
	}{
		{"fonts: [{name: A, type: type1, path: /a}]", "fonts[0].type"},
		{"fonts: [{type: cff, path: /a}]", "fonts[0].name"},
		{"fonts: [{name: A, type: cff}]", "fonts[0].path"},
		{"fallback: {'not a tag!': [A]}", "fallback.not a tag!"},
		{"fonts: {", ""},
	}
	for _, c := range cases {
		_, err := ParseConfig([]byte(c.yaml))
		if !errors.Is(err, ErrConfig) {
			t.Errorf("%q: got %v, want ConfigError", c.yaml, err)
			continue
		}
		var e *ConfigError
		if errors.As(err, &e) && e.Field != c.field {
			t.Errorf("%q: field %q, want %q", c.yaml, e.Field, c.field)
		}
	}
}

func TestSubstituteFont(t *testing.T) {
	loader := New()
	d := &cidfont.Dict{
		Subtype:  cidfont.CIDFontType2,
		BaseFont: "Helvetica",
		ROS:      &cid.SystemInfo{Registry: "Adobe", Ordering: "Identity"},
		Parent:   &cidfont.Type0{Encoding: cidfont.IdentityH},
	}
	opt := &cidfont.Options{
		Logger:      slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		Substituter: loader,
	}
	F, err := cidfont.New(d, opt)
	if err != nil {
		t.Fatal(err)
	}
	if F.IsEmbedded() || F.IsDamaged() {
		t.Errorf("embedded=%t damaged=%t", F.IsEmbedded(), F.IsDamaged())
	}
	res := F.Program()
	if res.Source != cidfont.Substitute {
		t.Errorf("source = %s", res.Source)
	}

	F2, err := cidfont.New(d, opt)
	if err != nil {
		t.Fatal(err)
	}
	if F2.Program().TrueType != res.TrueType {
		t.Error("repeated construction used a different program")
	}
}
