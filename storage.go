// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cbdd

import (
	"github.com/bits-and-blooms/bitset"
)

// storage is the node table: a fixed-capacity list of cells addressed by
// their index. We use parallel slices rather than a slice of structs since the
// hot loops (chain walks and marking) only touch one or two fields at a time.
//
// Cell 0 is a sentinel and is never allocated: variable(0) == low(0) ==
// high(0) == next(0) == 0.
type storage struct {
	occupied *bitset.BitSet // cells that currently hold a node
	variable []int32        // variable of each node
	low      []Ref          // reference to the false branch
	high     []Ref          // reference to the true branch (never negated)
	next     []int          // next node in the same bucket, 0 if last
	minFree  int            // first *possibly* free cell
	// lastIndex is the highest index ever allocated (high-water mark).
	lastIndex int
	// realSize is the number of occupied cells.
	realSize int
}

func makestorage(capacity int) *storage {
	return &storage{
		occupied: bitset.New(uint(capacity)),
		variable: make([]int32, capacity),
		low:      make([]Ref, capacity),
		high:     make([]Ref, capacity),
		next:     make([]int, capacity),
		minFree:  1,
	}
}

func (s *storage) capacity() int {
	return len(s.variable)
}

func (s *storage) isOccupied(n int) bool {
	return s.occupied.Test(uint(n))
}

// alloc returns the index of a new occupied cell. We reuse the first free cell
// below lastIndex, if any, otherwise we grow lastIndex.
func (s *storage) alloc() int {
	n := s.lastIndex + 1
	if s.minFree <= s.lastIndex {
		if free, ok := s.occupied.NextClear(uint(s.minFree)); ok && int(free) <= s.lastIndex {
			n = int(free)
		}
	}
	if n >= s.capacity() {
		fatalf(ErrCapacity, "cannot allocate a new node (capacity: %d, live nodes: %d)", s.capacity(), s.realSize)
	}
	if n > s.lastIndex {
		s.lastIndex = n
	}
	s.occupied.Set(uint(n))
	s.realSize++
	s.minFree = n + 1
	return n
}

// add stores a new node in the table and returns its index. The new node is
// not linked to any bucket.
func (s *storage) add(level int32, low, high Ref) int {
	n := s.alloc()
	s.variable[n] = level
	s.low[n] = low
	s.high[n] = high
	s.next[n] = 0
	return n
}

// drop frees cell n. We do not erase the content of the cell, only its
// occupancy marker, and the cell can be reused by the next alloc.
func (s *storage) drop(n int) {
	if n <= 1 {
		fatalf(ErrCorrupted, "trying to free cell %d", n)
	}
	s.occupied.Clear(uint(n))
	s.realSize--
	if n < s.minFree {
		s.minFree = n
	}
}

func (s *storage) setNext(n, next int) {
	s.next[n] = next
}
