// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cbdd

import (
	"sort"

	"github.com/xtgo/set"
)

// varset returns a sorted copy of vars without duplicates. It panics if one of
// the variables is not valid.
func varset(vars []int, where string) []int {
	res := make([]int, len(vars))
	copy(res, vars)
	for _, v := range res {
		checkvar(v, where)
	}
	sort.Ints(res)
	return res[:set.Uniq(sort.IntSlice(res))]
}

// Exists returns the existential quantification of f over the variables in
// vars. All the variables are eliminated in a single traversal of f. The
// result is f when vars is empty.
func (b *BDD) Exists(f Ref, vars ...int) Ref {
	b.checkref(f, "Exists")
	vs := varset(vars, "Exists")
	if len(vs) == 0 {
		return f
	}
	return b.exists(f, vs, newmemo[Ref, Ref](&b.cacheStat))
}

// Forall returns the universal quantification of f over the variables in
// vars.
func (b *BDD) Forall(f Ref, vars ...int) Ref {
	b.checkref(f, "Forall")
	vs := varset(vars, "Forall")
	if len(vs) == 0 {
		return f
	}
	return -b.exists(-f, vs, newmemo[Ref, Ref](&b.cacheStat))
}

// skipvars returns the suffix of vars starting with the first variable not
// smaller than level. Since the recursion always goes down in the variable
// order, a cursor never needs to move back.
func skipvars(vars []int, level int32) []int {
	for len(vars) > 0 && int32(vars[0]) < level {
		vars = vars[1:]
	}
	return vars
}

// exists is the recursive part of Exists. The position of the cursor in vars
// only depends on the level of f, so f is enough to index the memo.
func (b *BDD) exists(f Ref, vars []int, m *memo[Ref, Ref]) Ref {
	if f.IsConst() {
		return f
	}
	level := b.level(f)
	vars = skipvars(vars, level)
	if len(vars) == 0 {
		return f
	}
	if res, ok := m.get(f); ok {
		return res
	}
	f0, f1 := b.topCofactors(f, level)
	low := b.exists(f0, vars, m)
	if int32(vars[0]) == level {
		if low == One {
			return m.set(f, One)
		}
		return m.set(f, b.applyOr(low, b.exists(f1, vars, m)))
	}
	high := b.exists(f1, vars, m)
	return m.set(f, b.mkNode(level, low, high))
}

// ************************************************************

type refpair struct {
	f, g Ref
}

// RelProduct returns the relational product of f and g over vars, that is the
// existential quantification of (f and g) over vars, without building the
// conjunction first.
func (b *BDD) RelProduct(f, g Ref, vars ...int) Ref {
	b.checkref(f, "RelProduct")
	b.checkref(g, "RelProduct")
	vs := varset(vars, "RelProduct")
	if len(vs) == 0 {
		return b.applyAnd(f, g)
	}
	return b.relprod(f, g, vs, newmemo[refpair, Ref](&b.cacheStat), newmemo[Ref, Ref](&b.cacheStat))
}

func (b *BDD) relprod(f, g Ref, vars []int, m *memo[refpair, Ref], me *memo[Ref, Ref]) Ref {
	switch {
	case f == Zero || g == Zero || f == -g:
		return Zero
	case f == One && g == One:
		return One
	case f == One:
		return b.exists(g, vars, me)
	case g == One || f == g:
		return b.exists(f, vars, me)
	}
	level := min32(b.level(f), b.level(g))
	vars = skipvars(vars, level)
	if len(vars) == 0 {
		return b.applyAnd(f, g)
	}
	if f > g {
		f, g = g, f
	}
	key := refpair{f, g}
	if res, ok := m.get(key); ok {
		return res
	}
	f0, f1 := b.topCofactors(f, level)
	g0, g1 := b.topCofactors(g, level)
	low := b.relprod(f0, g0, vars, m, me)
	if int32(vars[0]) == level {
		if low == One {
			return m.set(key, One)
		}
		return m.set(key, b.applyOr(low, b.relprod(f1, g1, vars, m, me)))
	}
	high := b.relprod(f1, g1, vars, m, me)
	return m.set(key, b.mkNode(level, low, high))
}
