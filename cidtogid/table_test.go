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

package cidtogid

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/sfnt/glyph"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   []byte
		want []glyph.ID
	}{
		{nil, []glyph.ID{}},
		{[]byte{0x01}, []glyph.ID{}},
		{[]byte{0x00, 0x07}, []glyph.ID{7}},
		{[]byte{0x00, 0x00, 0x01, 0x02, 0xFF, 0xFF}, []glyph.ID{0, 0x0102, 0xFFFF}},
		{[]byte{0x00, 0x03, 0x00, 0x04, 0x09}, []glyph.ID{3, 4}},
	}
	for i, c := range cases {
		table := Parse(c.in)
		if d := cmp.Diff(c.want, table.gid); d != "" {
			t.Errorf("%d: unexpected table (-want +got):\n%s", i, d)
		}
		if table.Len() != len(c.want) {
			t.Errorf("%d: Len() = %d, want %d", i, table.Len(), len(c.want))
		}
	}
}

func TestLookup(t *testing.T) {
	table := Parse([]byte{0x00, 0x00, 0x00, 0x05, 0x01, 0x00})

	cases := []struct {
		cid    cid.CID
		gid    glyph.ID
		inside bool
	}{
		{0, 0, true},
		{1, 5, true},
		{2, 256, true},
		{3, 0, false},
		{0xFFFF_FFFF, 0, false},
	}
	for _, c := range cases {
		gid, ok := table.Lookup(c.cid)
		if gid != c.gid || ok != c.inside {
			t.Errorf("Lookup(%d) = (%d, %t), want (%d, %t)",
				c.cid, gid, ok, c.gid, c.inside)
		}
	}
}

func TestInverse(t *testing.T) {
	// CIDs 1 and 3 both map to glyph 7.
	table := New([]glyph.ID{0, 7, 2, 7})

	want := map[glyph.ID]cid.CID{
		0: 0,
		2: 2,
		7: 3,
	}
	if d := cmp.Diff(want, table.Inverse()); d != "" {
		t.Errorf("unexpected inverse (-want +got):\n%s", d)
	}

	if c, ok := table.CID(7); !ok || c != 3 {
		t.Errorf("CID(7) = (%d, %t), want (3, true)", c, ok)
	}
	if c, ok := table.CID(2); !ok || c != 2 {
		t.Errorf("CID(2) = (%d, %t), want (2, true)", c, ok)
	}
	if _, ok := table.CID(9); ok {
		t.Error("CID(9) found unexpectedly")
	}
}

func TestInverseRoundTrip(t *testing.T) {
	gid := make([]glyph.ID, 300)
	for i := range gid {
		gid[i] = glyph.ID(299 - i)
	}
	table := New(gid)
	for c := range cid.CID(300) {
		g, ok := table.Lookup(c)
		if !ok {
			t.Fatalf("CID %d missing", c)
		}
		back, ok := table.CID(g)
		if !ok || back != c {
			t.Errorf("CID(%d) = (%d, %t), want (%d, true)", g, back, ok, c)
		}
	}
}
