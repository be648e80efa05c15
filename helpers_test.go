// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cbdd

import (
	"math/rand"
)

// eval returns the value of r for an assignment, where assign[v-1] is the
// value of variable v.
func eval(b *BDD, r Ref, assign []bool) bool {
	for !r.IsConst() {
		if assign[b.Variable(r)-1] {
			r = b.High(r)
		} else {
			r = b.Low(r)
		}
	}
	return r == One
}

// assignment returns the values of the n variables encoded in the bits of a:
// variable v is true if bit v-1 of a is set.
func assignment(a uint64, n int) []bool {
	res := make([]bool, n)
	for v := 0; v < n; v++ {
		res[v] = a&(1<<v) != 0
	}
	return res
}

// truth returns the truth table of r over n variables (with n <= 6). Bit a of
// the result is the value of r for assignment(a, n).
func truth(b *BDD, r Ref, n int) uint64 {
	var res uint64
	for a := uint64(0); a < 1<<n; a++ {
		if eval(b, r, assignment(a, n)) {
			res |= 1 << a
		}
	}
	return res
}

// fromTable builds the BDD of the function over n variables with truth table
// tt, using Shannon expansion on variables 1..n.
func fromTable(b *BDD, tt uint64, n int) Ref {
	var build func(v int, a uint64) Ref
	build = func(v int, a uint64) Ref {
		if v > n {
			return b.From(tt&(1<<a) != 0)
		}
		low := build(v+1, a)
		high := build(v+1, a|1<<(v-1))
		return b.MkNode(v, low, high)
	}
	return build(1, 0)
}

// sample returns count random functions over n variables, together with their
// truth tables.
func sample(b *BDD, rng *rand.Rand, n, count int) ([]Ref, []uint64) {
	refs := make([]Ref, count)
	tables := make([]uint64, count)
	// the shift overflows to 0 when n == 6, and the mask is then all ones
	mask := uint64(1)<<(1<<n) - 1
	for k := range refs {
		tables[k] = rng.Uint64() & mask
		refs[k] = fromTable(b, tables[k], n)
	}
	return refs, tables
}
