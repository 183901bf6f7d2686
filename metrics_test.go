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
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/postscript/cid"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/cidfont/glyphdata"
	"seehuhn.de/go/cidfont/glyphdata/cffglyphs"
)

// countingTrueType records how often glyph widths are requested.
type countingTrueType struct {
	glyphdata.TrueTypeProgram

	mu    sync.Mutex
	calls map[glyph.ID]int
}

func (c *countingTrueType) GlyphWidth(gid glyph.ID) float64 {
	c.mu.Lock()
	c.calls[gid]++
	c.mu.Unlock()
	return c.TrueTypeProgram.GlyphWidth(gid)
}

func TestWidthCached(t *testing.T) {
	prog := &countingTrueType{
		TrueTypeProgram: ttProgram("Test", 2048, []funit.Int16{0, 1024, 2048, 777}, nil),
		calls:           make(map[glyph.ID]int),
	}
	d := &Dict{
		Subtype:  CIDFontType2,
		FontFile: DataFile(glyphdata.TrueType, []byte("data")),
		Parent:   identityParent(),
	}
	F, err := New(d, withTrueType(prog))
	if err != nil {
		t.Fatal(err)
	}

	first := make([]float64, 4)
	for code := range first {
		first[code] = F.Width(Code(code))
	}
	for range 5 {
		for code, w := range first {
			got := F.Width(Code(code))
			if math.Float64bits(got) != math.Float64bits(w) {
				t.Errorf("Width(%d) changed from %g to %g", code, w, got)
			}
		}
	}
	for gid := range glyph.ID(4) {
		if n := prog.calls[gid]; n != 1 {
			t.Errorf("glyph %d: %d width computations", gid, n)
		}
	}

	if w := F.Width(1); w != 500 {
		t.Errorf("Width(1) = %g, want 500", w)
	}
	if w := F.Width(2); w != 1000 {
		t.Errorf("Width(2) = %g, want 1000", w)
	}
}

func TestWidthUnitsPerEm1000(t *testing.T) {
	d := &Dict{
		Subtype:  CIDFontType2,
		FontFile: DataFile(glyphdata.TrueType, []byte("data")),
		Parent:   identityParent(),
	}
	F, err := New(d, withTrueType(ttProgram("Test", 1000, []funit.Int16{0, 333}, nil)))
	if err != nil {
		t.Fatal(err)
	}
	if w := F.Width(1); w != 333 {
		t.Errorf("Width(1) = %g, want 333", w)
	}
	if w := F.Width(2); w != 0 {
		t.Errorf("Width(2) = %g, want 0", w)
	}
	if F.FontMatrix() != glyphdata.DefaultFontMatrix {
		t.Errorf("FontMatrix = %v", F.FontMatrix())
	}
}

func TestWidthCFF(t *testing.T) {
	glyphs := []*cff.Glyph{
		cff.NewGlyph("", 0),
		cff.NewGlyph("", 500),
		cff.NewGlyph("", 500),
	}
	square := glyphs[2]
	square.MoveTo(0, -100)
	square.LineTo(400, -100)
	square.LineTo(400, 600)
	square.LineTo(0, 600)

	prog := cffglyphs.New(&cff.Font{
		FontInfo: &type1.FontInfo{
			FontName:   "Test",
			FontMatrix: matrix.Matrix{0.001, 0, 0, 0.001, 0, 0},
		},
		Outlines: &cff.Outlines{
			Glyphs:   glyphs,
			Private:  []*type1.PrivateDict{{}, {}},
			FDSelect: func(gid glyph.ID) int { return int(gid) % 2 },
			ROS:      &cid.SystemInfo{Registry: "Adobe", Ordering: "Identity"},
			GIDToCID: []cid.CID{0, 1, 2},
			FontMatrices: []matrix.Matrix{
				matrix.Identity,
				matrix.Scale(2, 2),
			},
		},
	})
	d := &Dict{
		Subtype:  CIDFontType0,
		FontFile: DataFile(glyphdata.CFF, []byte("data")),
		Parent:   identityParent(),
	}
	F, err := New(d, withCFF(prog))
	if err != nil {
		t.Fatal(err)
	}

	// glyph 1 uses the second font dict
	if w := F.Width(1); w != 1000 {
		t.Errorf("Width(1) = %g, want 1000", w)
	}
	if w := F.Width(2); w != 500 {
		t.Errorf("Width(2) = %g, want 500", w)
	}
	if avg := F.AverageWidth(); avg != 750 {
		t.Errorf("AverageWidth = %g, want 750", avg)
	}
	if h := F.Height(2); h != 700 {
		t.Errorf("Height(2) = %g, want 700", h)
	}
	if h := F.Height(1); h != 0 {
		t.Errorf("Height(1) = %g, want 0", h)
	}
}

func TestHeightCFFCurves(t *testing.T) {
	arch := cff.NewGlyph("", 200)
	arch.MoveTo(0, 0)
	arch.CurveTo(0, 400, 200, 400, 200, 0)
	bar := cff.NewGlyph("", 600)
	bar.MoveTo(-50, -100)
	bar.LineTo(550, -100)
	bar.LineTo(550, 0)
	bar.LineTo(-50, 0)

	prog := cffglyphs.New(&cff.Font{
		FontInfo: &type1.FontInfo{
			FontName:   "Test",
			FontMatrix: matrix.Matrix{0.001, 0, 0, 0.001, 0, 0},
		},
		Outlines: &cff.Outlines{
			Glyphs:   []*cff.Glyph{cff.NewGlyph("", 0), arch, bar},
			Private:  []*type1.PrivateDict{{}, {}},
			FDSelect: func(gid glyph.ID) int { return int(gid) % 2 },
			ROS:      &cid.SystemInfo{Registry: "Adobe", Ordering: "Identity"},
			GIDToCID: []cid.CID{0, 1, 2},
			FontMatrices: []matrix.Matrix{
				matrix.Identity,
				matrix.Scale(2, 2),
			},
		},
	})
	d := &Dict{
		Subtype:  CIDFontType0,
		FontFile: DataFile(glyphdata.CFF, []byte("data")),
		Parent:   identityParent(),
	}
	F, err := New(d, withCFF(prog))
	if err != nil {
		t.Fatal(err)
	}

	// the control points of the curve reach y=400, scaled by 2 by the
	// font dict of glyph 1
	if h := F.Height(1); h != 800 {
		t.Errorf("Height(1) = %g, want 800", h)
	}
	if h := F.Height(2); h != 100 {
		t.Errorf("Height(2) = %g, want 100", h)
	}

	want := rect.Rect{LLx: -50, LLy: -100, URx: 550, URy: 800}
	if d := cmp.Diff(want, F.FontBBox()); d != "" {
		t.Errorf("FontBBox: %s", d)
	}
}

func TestPlainCFFFontMatrix(t *testing.T) {
	d := &Dict{
		Subtype:  CIDFontType0,
		FontFile: DataFile(glyphdata.CFF, []byte("data")),
		Parent:   identityParent(),
	}
	F, err := New(d, withCFF(plainCFF("Test", 3)))
	if err != nil {
		t.Fatal(err)
	}
	want := matrix.Matrix{0.0005, 0, 0, 0.0005, 0, 0}
	if F.FontMatrix() != want {
		t.Errorf("FontMatrix = %v, want %v", F.FontMatrix(), want)
	}
	if w := F.Width(1); w != 600 {
		t.Errorf("Width(1) = %g, want 600", w)
	}
}

func TestInvalidFontMatrix(t *testing.T) {
	prog := plainCFF("Test", 3)
	prog.Font.FontInfo.FontMatrix = matrix.Matrix{}
	d := &Dict{
		Subtype:  CIDFontType0,
		FontFile: DataFile(glyphdata.CFF, []byte("data")),
		Parent:   identityParent(),
	}
	F, err := New(d, withCFF(prog))
	if err != nil {
		t.Fatal(err)
	}
	if F.FontMatrix() != glyphdata.DefaultFontMatrix {
		t.Errorf("FontMatrix = %v", F.FontMatrix())
	}
	if w := F.Width(1); w != 1200 {
		t.Errorf("Width(1) = %g, want 1200", w)
	}
}

func TestAverageWidth(t *testing.T) {
	cases := []struct {
		widths []funit.Int16
		upm    uint16
		want   float64
	}{
		{[]funit.Int16{0, 400, 600}, 1000, 500},
		{[]funit.Int16{0, 100, 0, 300}, 2000, 100},
		{[]funit.Int16{0, 0}, 1000, 500},
		{nil, 1000, 500},
	}
	for i, c := range cases {
		d := &Dict{
			Subtype:  CIDFontType2,
			FontFile: DataFile(glyphdata.TrueType, []byte("data")),
			Parent:   identityParent(),
		}
		F, err := New(d, withTrueType(ttProgram("Test", c.upm, c.widths, nil)))
		if err != nil {
			t.Fatal(err)
		}
		if got := F.AverageWidth(); got != c.want {
			t.Errorf("%d: AverageWidth = %g, want %g", i, got, c.want)
		}
		if got := F.AverageWidth(); got != c.want {
			t.Errorf("%d: second AverageWidth = %g, want %g", i, got, c.want)
		}
	}
}

func TestHeightTrueType(t *testing.T) {
	d := &Dict{
		Subtype:  CIDFontType2,
		FontFile: DataFile(glyphdata.TrueType, []byte("data")),
		Parent:   identityParent(),
	}
	// ascent 1600, descent -400
	F, err := New(d, withTrueType(ttProgram("Test", 2000, []funit.Int16{0, 1000}, nil)))
	if err != nil {
		t.Fatal(err)
	}
	if h := F.Height(1); h != 1000 {
		t.Errorf("Height(1) = %g, want 1000", h)
	}
}

func TestConcurrentWidths(t *testing.T) {
	widths := make([]funit.Int16, 256)
	for i := range widths {
		widths[i] = funit.Int16(4 * i)
	}
	d := &Dict{
		Subtype:  CIDFontType2,
		FontFile: DataFile(glyphdata.TrueType, []byte("data")),
		Parent:   identityParent(),
	}
	F, err := New(d, withTrueType(ttProgram("Test", 2000, widths, nil)))
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for code := range Code(256) {
				if w := F.Width(code); w != 2*float64(code) {
					t.Errorf("Width(%d) = %g", code, w)
				}
			}
		}()
	}
	wg.Wait()
}
