// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cbdd

import (
	"math/big"
	"sort"

	"github.com/xtgo/set"
)

// Descendants returns the (sorted) indices of all the nodes reachable from
// roots, including the terminal node at index 1. The node table is not
// modified.
func (b *BDD) Descendants(roots ...Ref) []int {
	for _, r := range roots {
		b.checkref(r, "Descendants")
	}
	marked := b.mark(roots)
	res := make([]int, 0, marked.Count())
	for i, ok := marked.NextSet(0); ok; i, ok = marked.NextSet(i + 1) {
		res = append(res, int(i))
	}
	return res
}

// Size returns the number of nodes in the BDD f, counting the terminal node.
// Hence the size of a constant is 1. Since f and its negation share all their
// nodes, they have the same size.
func (b *BDD) Size(f Ref) int {
	b.checkref(f, "Size")
	n := Ref(f.index())
	if res, ok := b.cacheget(opSize, n, 0, 0); ok {
		return int(res)
	}
	size := b.mark([]Ref{n}).Count()
	b.cacheset(opSize, n, 0, 0, Ref(size))
	return int(size)
}

// Support returns the sorted list of variables that f depends on. The result
// is empty for the constants.
func (b *BDD) Support(f Ref) []int {
	b.checkref(f, "Support")
	marked := b.mark([]Ref{f})
	res := make([]int, 0, marked.Count())
	for i, ok := marked.NextSet(2); ok; i, ok = marked.NextSet(i + 1) {
		res = append(res, int(b.storage.variable[i]))
	}
	sort.Ints(res)
	return res[:set.Uniq(sort.IntSlice(res))]
}

// Allnodes applies function f over all the nodes accessible from the nodes in
// the sequence roots..., or all the nodes in the table if roots is empty. The
// parameters to function f are the id, variable, and the low and high branches
// of each node. The terminal node is never passed to f.
//
// The order in which nodes are visited is increasing in the node index. We
// stop the computation and return an error if f returns an error at some
// point.
func (b *BDD) Allnodes(f func(id, variable int, low, high Ref) error, roots ...Ref) error {
	for _, r := range roots {
		b.checkref(r, "Allnodes")
	}
	nodes := b.storage.occupied
	if len(roots) != 0 {
		nodes = b.mark(roots)
	}
	for i, ok := nodes.NextSet(2); ok; i, ok = nodes.NextSet(i + 1) {
		n := int(i)
		if err := f(n, int(b.storage.variable[n]), b.storage.low[n], b.storage.high[n]); err != nil {
			return err
		}
	}
	return nil
}

// ************************************************************

// Count returns the number of satisfying assignments of f, considered as a
// function over the variables 1..nvars. We return a result using
// arbitrary-precision arithmetic to avoid possible overflows. Count panics with
// ErrCount if f depends on a variable greater than nvars.
func (b *BDD) Count(f Ref, nvars int) *big.Int {
	b.checkref(f, "Count")
	if nvars < 0 {
		fatalf(ErrCount, "negative number of variables (%d) in call to Count", nvars)
	}
	// We compute 2^nvars with a bit shift 1 << nvars
	total := new(big.Int).SetBit(new(big.Int), nvars, 1)
	c := b.count(f.index(), nvars, total, newmemo[int, *big.Int](&b.cacheStat))
	if f < 0 {
		return new(big.Int).Sub(total, c)
	}
	return new(big.Int).Set(c)
}

// count returns the number of models of the (positive) node n. Every model of
// a child is also a model of the node for exactly one value of its variable,
// hence the average of the two children. Values in the memo are never
// modified.
func (b *BDD) count(n int, nvars int, total *big.Int, satc *memo[int, *big.Int]) *big.Int {
	if n == 1 {
		return total
	}
	if res, ok := satc.get(n); ok {
		return res
	}
	if v := int(b.storage.variable[n]); v > nvars {
		fatalf(ErrCount, "variable %d greater than the number of variables (%d)", v, nvars)
	}
	low := b.storage.low[n]
	res := new(big.Int).Set(b.count(low.index(), nvars, total, satc))
	if low < 0 {
		res.Sub(total, res)
	}
	res.Add(res, b.count(b.storage.high[n].index(), nvars, total, satc))
	res.Rsh(res, 1)
	return satc.set(n, res)
}

// ************************************************************

// OneSat returns one satisfying assignment of f, as a slice of length nvars
// where entry i gives the value of variable i+1: 1 if the variable is true, 0
// if it is false, and -1 if it is a don't care. We always try the high branch
// first. The result is nil if f is unsatisfiable.
func (b *BDD) OneSat(f Ref, nvars int) []int {
	b.checkref(f, "OneSat")
	if nvars < 0 {
		fatalf(ErrCount, "negative number of variables (%d) in call to OneSat", nvars)
	}
	if f == Zero {
		return nil
	}
	prof := make([]int, nvars)
	for k := range prof {
		prof[k] = -1
	}
	if !b.onesat(f, prof) {
		return nil
	}
	return prof
}

func (b *BDD) onesat(r Ref, prof []int) bool {
	switch r {
	case One:
		return true
	case Zero:
		return false
	}
	level := b.level(r)
	if int(level) > len(prof) {
		fatalf(ErrCount, "variable %d greater than the number of variables (%d)", level, len(prof))
	}
	low, high := b.topCofactors(r, level)
	prof[level-1] = 1
	if b.onesat(high, prof) {
		return true
	}
	prof[level-1] = 0
	if b.onesat(low, prof) {
		return true
	}
	prof[level-1] = -1
	return false
}

// AllSat iterates through all legal variable assignments for f and calls the
// function fn on each of them. We pass an int slice of length nvars to fn
// where entry i is either 0 if variable i+1 is false, 1 if it is true, and -1
// if it is a don't care. The slice is reused between calls. We stop and return
// the error if fn returns an error at some point.
//
// The following is an example of a callback handler that counts the number of
// possible assignments (such that we do not count don't care twice):
//
//	acc := new(int)
//	b.AllSat(n, nvars, func(varset []int) error {
//		*acc++
//		return nil
//	})
func (b *BDD) AllSat(f Ref, nvars int, fn func([]int) error) error {
	b.checkref(f, "AllSat")
	if nvars < 0 {
		fatalf(ErrCount, "negative number of variables (%d) in call to AllSat", nvars)
	}
	prof := make([]int, nvars)
	for k := range prof {
		prof[k] = -1
	}
	// the function does not create new nodes
	return b.allsat(f, prof, fn)
}

func (b *BDD) allsat(r Ref, prof []int, fn func([]int) error) error {
	switch r {
	case One:
		return fn(prof)
	case Zero:
		return nil
	}
	level := b.level(r)
	if int(level) > len(prof) {
		fatalf(ErrCount, "variable %d greater than the number of variables (%d)", level, len(prof))
	}
	low, high := b.topCofactors(r, level)
	if low != Zero {
		prof[level-1] = 0
		dontcare(prof, level, b.level(low))
		if err := b.allsat(low, prof, fn); err != nil {
			return err
		}
	}
	if high != Zero {
		prof[level-1] = 1
		dontcare(prof, level, b.level(high))
		if err := b.allsat(high, prof, fn); err != nil {
			return err
		}
	}
	return nil
}

// dontcare sets to -1 all the variables strictly between from and to.
func dontcare(prof []int, from, to int32) {
	for v := int(from) + 1; v < int(to) && v <= len(prof); v++ {
		prof[v-1] = -1
	}
}
