// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cbdd

import (
	"github.com/bits-and-blooms/bitset"
)

// gcstat stores status information about garbage collections. We use a stack
// (slice) of objects to record the sequence of GC during a computation.
type gcstat struct {
	history []GCPoint // Snaphot of GC stats at each occurrence
}

// GCPoint records information about one call to CollectGarbage.
type GCPoint struct {
	LastIndex int // Highest index used in the node table before collection
	Before    int // Number of nodes (RealSize) before collection
	After     int // Number of nodes (RealSize) after collection
}

// GCHistory returns a copy of the statistics collected at each call to
// CollectGarbage, oldest first.
func (b *BDD) GCHistory() []GCPoint {
	res := make([]GCPoint, len(b.history))
	copy(res, b.history)
	return res
}

// *************************************************************************

// CollectGarbage reclaims every node that is not reachable from roots. The
// references in roots (and the references to their descendants) stay valid and
// denote the same functions after the collection; every other reference
// obtained before the call must be considered as invalid. The operation cache
// is always cleared.
//
// Reclaimed cells are reused by the following allocations. Nodes that are
// kept never move.
func (b *BDD) CollectGarbage(roots ...Ref) {
	for _, r := range roots {
		b.checkref(r, "CollectGarbage")
	}
	point := GCPoint{LastIndex: b.storage.lastIndex, Before: b.storage.realSize}
	b.cache.clear()
	marked := b.mark(roots)
	for k, head := range b.buckets {
		// we drop the unreachable nodes at the beginning of the chain
		for head != 0 && !marked.Test(uint(head)) {
			next := b.storage.next[head]
			b.storage.setNext(head, 0)
			b.storage.drop(head)
			head = next
		}
		b.buckets[k] = head
		if head == 0 {
			continue
		}
		// then skip over the unreachable nodes in the rest of the chain
		prev := head
		for n := b.storage.next[head]; n != 0; {
			next := b.storage.next[n]
			if marked.Test(uint(n)) {
				b.storage.setNext(prev, n)
				prev = n
			} else {
				b.storage.setNext(n, 0)
				b.storage.drop(n)
			}
			n = next
		}
		b.storage.setNext(prev, 0)
	}
	point.After = b.storage.realSize
	b.history = append(b.history, point)
	b.logger.Debug("gc",
		"lastindex", point.LastIndex,
		"before", point.Before,
		"after", point.After,
	)
	if _DEBUG && _LOGLEVEL > 2 {
		b.logTable()
	}
}

// mark returns the set of indices reachable from roots, including the
// terminal. We use an explicit stack since the depth of a BDD can be as large
// as the number of variables.
func (b *BDD) mark(roots []Ref) *bitset.BitSet {
	marked := bitset.New(uint(b.storage.capacity()))
	marked.Set(1)
	stack := make([]int, 0, len(roots))
	for _, r := range roots {
		stack = append(stack, r.index())
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if marked.Test(uint(n)) {
			continue
		}
		marked.Set(uint(n))
		stack = append(stack, b.storage.low[n].index(), b.storage.high[n].index())
	}
	return marked
}
