// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cbdd

// Substitute returns the functional composition of f and g over variable v,
// that is the BDD for f where every occurrence of v is replaced by g.
func (b *BDD) Substitute(f Ref, v int, g Ref) Ref {
	b.checkref(f, "Substitute")
	b.checkref(g, "Substitute")
	checkvar(v, "Substitute")
	return b.substitute(f, int32(v), g)
}

// Restrict returns the cofactor of f for a literal: f with variable lit set to
// true when lit is positive, and variable -lit set to false otherwise.
func (b *BDD) Restrict(f Ref, lit int) Ref {
	b.checkref(f, "Restrict")
	if lit < 0 {
		checkvar(-lit, "Restrict")
		return b.substitute(f, int32(-lit), Zero)
	}
	checkvar(lit, "Restrict")
	return b.substitute(f, int32(lit), One)
}

func (b *BDD) substitute(f Ref, v int32, g Ref) Ref {
	if f.IsConst() || b.level(f) > v {
		return f
	}
	// f[v := g] is the negation of (not f)[v := g]
	if f < 0 {
		return -b.substitute(-f, v, g)
	}
	if res, ok := b.cacheget(opSubstitute, f, Ref(v), g); ok {
		return res
	}
	var res Ref
	if level := b.level(f); level == v {
		f0, f1 := b.topCofactors(f, level)
		res = b.applyIte(g, f1, f0)
	} else {
		m := min32(level, b.level(g))
		f0, f1 := b.topCofactors(f, m)
		g0, g1 := b.topCofactors(g, m)
		low := b.substitute(f0, v, g0)
		high := b.substitute(f1, v, g1)
		res = b.mkNode(m, low, high)
	}
	return b.cacheset(opSubstitute, f, Ref(v), g, res)
}
