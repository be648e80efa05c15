// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cbdd

// mkNode returns the canonical reference for the node (level, low, high). It
// enforces the two reduction rules: there are no redundant tests (low ==
// high), and the high branch of a stored node is never negated. Nodes are
// hash-consed in the unique table, so equivalent functions always get the same
// reference.
func (b *BDD) mkNode(level int32, low, high Ref) Ref {
	if low == high {
		return low
	}
	if high < 0 {
		return -b.mkNode(level, -low, -high)
	}
	b.uniqueAccess++
	hash := b.nodehash(level, low, high)
	prev := 0
	for n := b.buckets[hash]; n != 0; n = b.storage.next[n] {
		b.uniqueChain++
		if !b.storage.isOccupied(n) {
			fatalf(ErrCorrupted, "unused cell %d in bucket %d", n, hash)
		}
		if b.storage.variable[n] == level && b.storage.low[n] == low && b.storage.high[n] == high {
			b.uniqueHit++
			return Ref(n)
		}
		prev = n
	}
	b.uniqueMiss++
	n := b.storage.add(level, low, high)
	if prev == 0 {
		b.buckets[hash] = n
	} else {
		b.storage.setNext(prev, n)
	}
	if _DEBUG && _LOGLEVEL > 1 {
		b.logger.Debug("new node", "index", n, "level", level, "low", low, "high", high)
	}
	return Ref(n)
}

// topCofactors returns the cofactors of r with respect to the variable at
// level, which must be smaller or equal to the level of r. When r does not
// depend on this variable, both cofactors are r itself. The polarity of r is
// propagated to its children.
func (b *BDD) topCofactors(r Ref, level int32) (Ref, Ref) {
	n := r.index()
	if b.storage.variable[n] != level {
		return r, r
	}
	if r < 0 {
		return -b.storage.low[n], -b.storage.high[n]
	}
	return b.storage.low[n], b.storage.high[n]
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
