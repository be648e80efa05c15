// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cbdd

import (
	"log/slog"
	"sort"

	"github.com/dalzilio/cbdd/internal/log"
)

// BDD is a Binary Decision Diagram with complemented edges. It owns the node
// table, the unique table and the operation caches. All the diagrams built
// with the same BDD share their nodes and use the same variable ordering: the
// natural order on (strictly positive) integers.
//
// A BDD is not safe for concurrent use, not even for concurrent reads, since
// every operation may update the caches.
type BDD struct {
	storage   *storage     // node table
	buckets   []int        // unique table; heads of hash chains threaded through storage.next
	cache     *opcache     // cache for apply, ite, substitute and size results
	logger    *slog.Logger // logger, with the section attribute set
	cacheStat              // information about the caches
	gcstat                 // information about garbage collections
}

// New returns a new BDD with a node table of the given capacity. Index 0 in
// the table is reserved and index 1 holds the terminal node, so at most
// capacity-2 internal nodes can be alive at the same time. There is no
// automatic resizing: an operation that needs more nodes panics with
// ErrCapacity. You can call CollectGarbage to reclaim unreachable nodes.
//
// You can specify optional parameters with the configuration functions
// Buckets, Cachesize and Logger.
func New(capacity int, options ...func(*configs)) *BDD {
	if capacity < 2 {
		fatalf(ErrCapacity, "capacity (%d) must be at least 2", capacity)
	}
	c := makeconfigs(capacity)
	for _, f := range options {
		f(c)
	}
	b := &BDD{
		storage: makestorage(c.nodesize),
		buckets: make([]int, c.buckets),
		cache:   makeopcache(c.cachesize),
		logger:  c.logger,
	}
	if b.logger == nil {
		b.logger = log.DefaultLogger.With("section", "bdd")
	}
	// the terminal node is never added to the unique table
	terminal := b.storage.add(_TERMLEVEL, 0, 0)
	if terminal != 1 {
		fatalf(ErrCorrupted, "terminal allocated at index %d", terminal)
	}
	b.gcstat.history = []GCPoint{}
	return b
}

// ************************************************************

// True returns the constant true BDD
func (b *BDD) True() Ref {
	return One
}

// False returns the constant false BDD
func (b *BDD) False() Ref {
	return Zero
}

// From returns a (constant) Ref from a boolean value.
func (b *BDD) From(v bool) Ref {
	if v {
		return One
	}
	return Zero
}

// MkVar returns the BDD for a literal: variable lit when lit is positive, and
// the negation of variable -lit otherwise. It panics with ErrVariable if lit is
// zero.
func (b *BDD) MkVar(lit int) Ref {
	if lit < 0 {
		if lit < -_MAXVAR {
			fatalf(ErrVariable, "literal %d smaller than %d in call to MkVar", lit, -_MAXVAR)
		}
		return -b.MkVar(-lit)
	}
	checkvar(lit, "MkVar")
	return b.mkNode(int32(lit), Zero, One)
}

// MkNode returns the canonical node testing variable v, with branches low (when
// v is false) and high. The variables of low and high must be strictly greater
// than v.
func (b *BDD) MkNode(v int, low, high Ref) Ref {
	checkvar(v, "MkNode")
	b.checkref(low, "MkNode")
	b.checkref(high, "MkNode")
	if int32(v) >= b.level(low) || int32(v) >= b.level(high) {
		fatalf(ErrOrder, "variable %d is not smaller than the variables of its children (%d, %d)", v, b.level(low), b.level(high))
	}
	return b.mkNode(int32(v), low, high)
}

// Clause returns the disjunction of the given literals. Literals are positive
// or negative (for negated variables) integers. The empty clause is Zero.
func (b *BDD) Clause(lits ...int) Ref {
	res := Zero
	for _, lit := range sortlits(lits, "Clause") {
		res = b.applyOr(res, b.MkVar(lit))
	}
	return res
}

// Cube returns the conjunction of the given literals. The empty cube is One.
func (b *BDD) Cube(lits ...int) Ref {
	res := One
	for _, lit := range sortlits(lits, "Cube") {
		res = b.applyAnd(res, b.MkVar(lit))
	}
	return res
}

// sortlits returns a copy of lits sorted in decreasing order of variables, so
// that we build clauses and cubes bottom-up.
func sortlits(lits []int, where string) []int {
	res := make([]int, len(lits))
	copy(res, lits)
	for _, lit := range res {
		if lit == 0 {
			fatalf(ErrVariable, "literal 0 in call to %s", where)
		}
		if lit < -_MAXVAR {
			fatalf(ErrVariable, "literal %d smaller than %d in call to %s", lit, -_MAXVAR, where)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return abs(res[i]) > abs(res[j])
	})
	return res
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ************************************************************

// Variable returns the variable tested by the root node of r. It panics if r
// is a constant.
func (b *BDD) Variable(r Ref) int {
	b.checkref(r, "Variable")
	if r.IsConst() {
		fatalf(ErrRef, "constant has no variable")
	}
	return int(b.storage.variable[r.index()])
}

// Low returns the false branch of r, taking into account the polarity of r.
// The result is r itself if r is a constant.
func (b *BDD) Low(r Ref) Ref {
	b.checkref(r, "Low")
	low, _ := b.topCofactors(r, b.level(r))
	return low
}

// High returns the true branch of r.
func (b *BDD) High(r Ref) Ref {
	b.checkref(r, "High")
	_, high := b.topCofactors(r, b.level(r))
	return high
}

// level returns the variable of the node referenced by r, or _TERMLEVEL for
// the constants, which is greater than every variable.
func (b *BDD) level(r Ref) int32 {
	return b.storage.variable[r.index()]
}

// RealSize returns the number of nodes currently stored in the node table,
// including the terminal node.
func (b *BDD) RealSize() int {
	return b.storage.realSize
}

// LastIndex returns the highest index ever used in the node table. It can be
// much larger than RealSize after a garbage collection.
func (b *BDD) LastIndex() int {
	return b.storage.lastIndex
}

// Capacity returns the number of cells in the node table.
func (b *BDD) Capacity() int {
	return b.storage.capacity()
}

// And returns the logical 'and' of a sequence of nodes.
func (b *BDD) And(n ...Ref) Ref {
	res := One
	for k := len(n) - 1; k >= 0; k-- {
		res = b.ApplyAnd(n[k], res)
	}
	return res
}

// Or returns the logical 'or' of a sequence of BDDs.
func (b *BDD) Or(n ...Ref) Ref {
	res := Zero
	for k := len(n) - 1; k >= 0; k-- {
		res = b.ApplyOr(n[k], res)
	}
	return res
}

// Imp returns the logical 'implication' between two BDDs.
func (b *BDD) Imp(n1, n2 Ref) Ref {
	return b.Apply(n1, n2, OPimp)
}

// Equiv returns the logical 'bi-implication' between two BDDs.
func (b *BDD) Equiv(n1, n2 Ref) Ref {
	return b.Apply(n1, n2, OPbiimp)
}
