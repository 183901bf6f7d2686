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

// Package memo provides lazily computed values which can be shared between
// goroutines.
//
// Values are computed without holding a lock.  If two goroutines ask for
// the same missing value at the same time, both compute it and the last
// write wins.  This is only correct for computations which always return
// the same result, which is the case for all uses in this module.
package memo

import (
	"sync"
	"sync/atomic"
)

// Cell holds a single value which is computed on first use.
// The zero value is an empty cell, ready to use.
type Cell[T any] struct {
	p atomic.Pointer[T]
}

// Get returns the value of the cell.  If the value has not been
// computed yet, compute is called and its result is stored.
func (c *Cell[T]) Get(compute func() T) T {
	if p := c.p.Load(); p != nil {
		return *p
	}
	v := compute()
	c.p.Store(&v)
	return v
}

// IsSet reports whether the value of the cell has been computed.
func (c *Cell[T]) IsSet() bool {
	return c.p.Load() != nil
}

// Map caches values indexed by integer keys.  Entries are never evicted.
// The zero value is an empty map, ready to use.
type Map[K comparable, V any] struct {
	m sync.Map
}

// Get returns the value for key.  If no value is cached, compute is called
// and its result is stored.
func (m *Map[K, V]) Get(key K, compute func(K) V) V {
	if v, ok := m.m.Load(key); ok {
		return v.(V)
	}
	v := compute(key)
	m.m.Store(key, v)
	return v
}

// Len returns the number of cached entries.
func (m *Map[K, V]) Len() int {
	n := 0
	m.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
