// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cbdd

// Not returns the negation of n. With complemented edges this is a constant
// time operation that never creates a node.
func (b *BDD) Not(n Ref) Ref {
	b.checkref(n, "Not")
	return -n
}

// ApplyAnd returns the conjunction of u and v.
func (b *BDD) ApplyAnd(u, v Ref) Ref {
	b.checkref(u, "ApplyAnd")
	b.checkref(v, "ApplyAnd")
	return b.applyAnd(u, v)
}

// ApplyOr returns the disjunction of u and v.
func (b *BDD) ApplyOr(u, v Ref) Ref {
	b.checkref(u, "ApplyOr")
	b.checkref(v, "ApplyOr")
	return b.applyOr(u, v)
}

// ApplyXor returns the exclusive or of u and v.
func (b *BDD) ApplyXor(u, v Ref) Ref {
	b.checkref(u, "ApplyXor")
	b.checkref(v, "ApplyXor")
	return b.applyXor(u, v)
}

// Apply performs all of the basic bdd operations with two operands, such as
// AND, OR etc. Left and right are the operand and op is the requested
// operation and must be one of the following:
//
//	Identifier    Description             Truth table
//
//	OPand         logical and             [0,0,0,1]
//	OPxor         logical xor             [0,1,1,0]
//	OPor          logical or              [0,1,1,1]
//	OPnand        logical not-and         [1,1,1,0]
//	OPnor         logical not-or          [1,0,0,0]
//	OPimp         implication             [1,1,0,1]
//	OPbiimp       equivalence             [1,0,0,1]
//	OPdiff        set difference          [0,0,1,0]
//	OPless        less than               [0,1,0,0]
//	OPinvimp      reverse implication     [1,0,1,1]
//
// Every operator is reduced to a conjunction, a disjunction or an exclusive
// or, using negation on the operands or the result.
func (b *BDD) Apply(left, right Ref, op Operator) Ref {
	b.checkref(left, "Apply")
	b.checkref(right, "Apply")
	switch op {
	case OPand:
		return b.applyAnd(left, right)
	case OPxor:
		return b.applyXor(left, right)
	case OPor:
		return b.applyOr(left, right)
	case OPnand:
		return -b.applyAnd(left, right)
	case OPnor:
		return -b.applyOr(left, right)
	case OPimp:
		return b.applyOr(-left, right)
	case OPbiimp:
		return -b.applyXor(left, right)
	case OPdiff:
		return b.applyAnd(left, -right)
	case OPless:
		return b.applyAnd(-left, right)
	case OPinvimp:
		return b.applyOr(left, -right)
	}
	fatalf(ErrRef, "unknown operator (%s) in call to Apply", op)
	return 0
}

// ************************************************************

func (b *BDD) applyAnd(u, v Ref) Ref {
	switch {
	case u == Zero || v == Zero:
		return Zero
	case u == One:
		return v
	case v == One:
		return u
	case u == v:
		return u
	case u == -v:
		return Zero
	}
	if u > v {
		u, v = v, u
	}
	if res, ok := b.cacheget(opAnd, u, v, 0); ok {
		return res
	}
	m := min32(b.level(u), b.level(v))
	u0, u1 := b.topCofactors(u, m)
	v0, v1 := b.topCofactors(v, m)
	low := b.applyAnd(u0, v0)
	high := b.applyAnd(u1, v1)
	return b.cacheset(opAnd, u, v, 0, b.mkNode(m, low, high))
}

func (b *BDD) applyOr(u, v Ref) Ref {
	switch {
	case u == One || v == One:
		return One
	case u == Zero:
		return v
	case v == Zero:
		return u
	case u == v:
		return u
	case u == -v:
		return One
	}
	if u > v {
		u, v = v, u
	}
	if res, ok := b.cacheget(opOr, u, v, 0); ok {
		return res
	}
	m := min32(b.level(u), b.level(v))
	u0, u1 := b.topCofactors(u, m)
	v0, v1 := b.topCofactors(v, m)
	low := b.applyOr(u0, v0)
	high := b.applyOr(u1, v1)
	return b.cacheset(opOr, u, v, 0, b.mkNode(m, low, high))
}

func (b *BDD) applyXor(u, v Ref) Ref {
	switch {
	case u == Zero:
		return v
	case v == Zero:
		return u
	case u == One:
		return -v
	case v == One:
		return -u
	case u == v:
		return Zero
	case u == -v:
		return One
	}
	// (not u) xor v == not (u xor v), so we only cache positive operands
	neg := false
	if u < 0 {
		u, neg = -u, !neg
	}
	if v < 0 {
		v, neg = -v, !neg
	}
	if u > v {
		u, v = v, u
	}
	res, ok := b.cacheget(opXor, u, v, 0)
	if !ok {
		m := min32(b.level(u), b.level(v))
		u0, u1 := b.topCofactors(u, m)
		v0, v1 := b.topCofactors(v, m)
		low := b.applyXor(u0, v0)
		high := b.applyXor(u1, v1)
		res = b.cacheset(opXor, u, v, 0, b.mkNode(m, low, high))
	}
	if neg {
		return -res
	}
	return res
}

// ************************************************************

// ApplyIte, short for if-then-else operator, computes the BDD for the
// expression [(f /\ g) \/ (not f /\ h)] more efficiently than doing the three
// operations separately.
func (b *BDD) ApplyIte(f, g, h Ref) Ref {
	b.checkref(f, "ApplyIte")
	b.checkref(g, "ApplyIte")
	b.checkref(h, "ApplyIte")
	return b.applyIte(f, g, h)
}

// min3 returns the smallest value between p, q and r. This is used in function
// ite to compute the smallest level.
func min3(p, q, r int32) int32 {
	if p <= q {
		if p <= r { // p <= q && p <= r
			return p
		}
		return r // r < p <= q
	}
	if q <= r { // q < p && q <= r
		return q
	}
	return r // r < q < p
}

func (b *BDD) applyIte(f, g, h Ref) Ref {
	switch f {
	case One:
		return g
	case Zero:
		return h
	}
	// we can replace g and h by a constant when they are equal to f, or to its
	// negation
	switch g {
	case f:
		g = One
	case -f:
		g = Zero
	}
	switch h {
	case f:
		h = Zero
	case -f:
		h = One
	}
	switch {
	case g == h:
		return g
	case g == One && h == Zero:
		return f
	case g == Zero && h == One:
		return -f
	case g == One:
		return b.applyOr(f, h)
	case g == Zero:
		return b.applyAnd(-f, h)
	case h == Zero:
		return b.applyAnd(f, g)
	case h == One:
		return b.applyOr(-f, g)
	case g == -h:
		return b.applyXor(f, h)
	}
	// standard triples: f and g are regular edges
	if f < 0 {
		f, g, h = -f, h, g
	}
	neg := false
	if g < 0 {
		g, h, neg = -g, -h, true
	}
	res, ok := b.cacheget(opIte, f, g, h)
	if !ok {
		m := min3(b.level(f), b.level(g), b.level(h))
		f0, f1 := b.topCofactors(f, m)
		g0, g1 := b.topCofactors(g, m)
		h0, h1 := b.topCofactors(h, m)
		low := b.applyIte(f0, g0, h0)
		high := b.applyIte(f1, g1, h1)
		res = b.cacheset(opIte, f, g, h, b.mkNode(m, low, high))
	}
	if neg {
		return -res
	}
	return res
}
