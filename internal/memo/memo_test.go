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

package memo

import (
	"sync"
	"testing"
)

func TestCell(t *testing.T) {
	var c Cell[float64]
	if c.IsSet() {
		t.Fatal("new cell is set")
	}

	calls := 0
	compute := func() float64 {
		calls++
		return 1.5
	}
	for range 3 {
		if v := c.Get(compute); v != 1.5 {
			t.Errorf("got %g, want 1.5", v)
		}
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}
	if !c.IsSet() {
		t.Error("cell not set after Get")
	}
}

func TestMap(t *testing.T) {
	var m Map[uint32, int]
	calls := make(map[uint32]int)
	compute := func(k uint32) int {
		calls[k]++
		return int(k) * 2
	}

	for _, k := range []uint32{1, 2, 1, 3, 2, 1} {
		if v := m.Get(k, compute); v != int(k)*2 {
			t.Errorf("Get(%d) = %d, want %d", k, v, int(k)*2)
		}
	}
	for k, n := range calls {
		if n != 1 {
			t.Errorf("key %d computed %d times", k, n)
		}
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestMapConcurrent(t *testing.T) {
	var m Map[int, int]
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range 100 {
				v := m.Get(k, func(k int) int { return k * k })
				if v != k*k {
					t.Errorf("worker %d: Get(%d) = %d", i, k, v)
				}
			}
		}()
	}
	wg.Wait()
	if m.Len() != 100 {
		t.Errorf("Len() = %d, want 100", m.Len())
	}
}
