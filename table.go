// Copyright (c) 2016 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package openaddr provides a fixed size open addressing hash table with
// pluggable probe strategies and per key probe accounting.
//
// Inserting a key that is already present increments its frequency instead of
// storing it twice. There is no deletion and no resizing: the capacity given
// to New is final. For DoubleHash, the capacity m should be chosen such that m
// and m-2 are both prime (see package prime).
//
// A Table is not safe for concurrent use.
package openaddr

import (
	"fmt"
	"iter"
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/db47h/openaddr/hash"
)

// Table is an open addressing hash table.
type Table[K comparable] struct {
	hash     func(K) uint64
	strategy Strategy
	onInsert func(K, InsertResult)
	slots    []Entry[K]
	used     *bitset.BitSet
	live     int
	probes   int
}

// InsertResult describes the outcome of a call to Table.Insert.
type InsertResult struct {
	Slot      int  // slot where the key was stored or found
	Probes    int  // probe attempts used by this call
	Duplicate bool // the key was already present
}

// New returns a new table with the given capacity, using strategy s to
// resolve collisions. It panics if capacity < 1 or s is nil.
func New[K comparable](capacity int, s Strategy, opts ...Option) *Table[K] {
	if capacity < 1 {
		panic("capacity out of range [1, MaxInt]")
	}
	if s == nil {
		panic("nil Strategy")
	}
	o := getOpts(opts)
	t := &Table[K]{
		strategy: s,
		slots:    make([]Entry[K], capacity),
		used:     bitset.New(uint(capacity)),
	}
	if o.hasher != nil {
		t.hash = hasherOf[K](o.hasher)
	} else {
		t.hash = hash.Comparable[K]()
	}
	if o.onInsert != nil {
		t.onInsert = onInsertOf[K](o.onInsert)
	}
	return t
}

// Insert inserts key into the table. If the key is already present, its
// frequency is incremented and the result has Duplicate set.
//
// Only the first insertion of a key is accounted for in TotalProbes and
// AverageProbes. If no free slot is found after Capacity attempts, Insert
// returns an error wrapping ErrOverflow.
func (t *Table[K]) Insert(key K) (InsertResult, error) {
	m := len(t.slots)
	p := t.strategy.Probe(t.hash(key), m)
	for i := 1; i <= m; i, p = i+1, p.Next() {
		pos := p.Offset()
		if !t.used.Test(uint(pos)) {
			t.used.Set(uint(pos))
			t.slots[pos] = Entry[K]{key: key, freq: 1, probes: i}
			t.live++
			t.probes += i
			return t.inserted(key, InsertResult{Slot: pos, Probes: i}), nil
		}
		if e := &t.slots[pos]; e.key == key {
			e.freq++
			return t.inserted(key, InsertResult{Slot: pos, Probes: i, Duplicate: true}), nil
		}
	}
	return InsertResult{Slot: -1, Probes: m}, fmt.Errorf("insert %v: %w", key, ErrOverflow)
}

func (t *Table[K]) inserted(key K, r InsertResult) InsertResult {
	if t.onInsert != nil {
		t.onInsert(key, r)
	}
	return r
}

// Search returns the slot holding key and true, or -1 and false if key is not
// in the table.
func (t *Table[K]) Search(key K) (int, bool) {
	m := len(t.slots)
	p := t.strategy.Probe(t.hash(key), m)
	for i := 1; i <= m; i, p = i+1, p.Next() {
		pos := p.Offset()
		// empty slots hold a zero key
		if !t.used.Test(uint(pos)) {
			return -1, false
		}
		if t.slots[pos].key == key {
			return pos, true
		}
	}
	return -1, false
}

// At returns the entry in the given slot and true, or nil and false if the
// slot is empty. The returned entry is only valid until the next call to
// Insert.
func (t *Table[K]) At(slot int) (*Entry[K], bool) {
	if slot < 0 || slot >= len(t.slots) || !t.used.Test(uint(slot)) {
		return nil, false
	}
	return &t.slots[slot], true
}

// All returns an iterator over all occupied slots, in slot order. The table
// must not be modified while iterating.
func (t *Table[K]) All() iter.Seq2[int, *Entry[K]] {
	return func(yield func(int, *Entry[K]) bool) {
		for i, ok := t.used.NextSet(0); ok; i, ok = t.used.NextSet(i + 1) {
			if !yield(int(i), &t.slots[i]) {
				return
			}
		}
	}
}

// AverageProbes returns the average number of probe attempts used to insert
// each unique key. It returns NaN if the table is empty.
func (t *Table[K]) AverageProbes() float64 {
	if t.live == 0 {
		return math.NaN()
	}
	var sum int
	for _, e := range t.All() {
		sum += e.probes
	}
	return float64(sum) / float64(t.live)
}

// TotalProbes returns the total number of probe attempts used by the
// insertion of unique keys.
func (t *Table[K]) TotalProbes() int { return t.probes }

// Frequencies returns the total number of insertions, duplicates included.
func (t *Table[K]) Frequencies() int {
	var n int
	for _, e := range t.All() {
		n += e.freq
	}
	return n
}

// Len returns the number of unique keys in the table.
func (t *Table[K]) Len() int { return t.live }

// Capacity returns the number of slots in the table.
func (t *Table[K]) Capacity() int { return len(t.slots) }

// Load returns the table's load factor.
func (t *Table[K]) Load() float64 { return float64(t.live) / float64(len(t.slots)) }

// Strategy returns the table's probe strategy.
func (t *Table[K]) Strategy() Strategy { return t.strategy }
