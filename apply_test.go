// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cbdd

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//********************************************************************************************

func TestMin3(t *testing.T) {
	var minTests = []struct {
		p, q, r  int32
		expected int32
	}{
		{3, 2, 3, 2},
		{4, 4, 4, 4},
		{2, 3, 3, 2},
		{3, 2, 2, 2},
		{3, 3, 2, 2},
		{1, 2, 3, 1},
	}
	for _, tt := range minTests {
		assert.Equal(t, tt.expected, min3(tt.p, tt.q, tt.r), "min3(%d, %d, %d)", tt.p, tt.q, tt.r)
	}
}

//********************************************************************************************

func TestApplyLaws(t *testing.T) {
	b := New(1 << 16)
	rng := rand.New(rand.NewSource(1))
	refs, tables := sample(b, rng, 4, 40)
	refs = append(refs, One, Zero, b.MkVar(2), b.MkVar(-4))
	tables = append(tables, 0xFFFF, 0, truth(b, b.MkVar(2), 4), truth(b, b.MkVar(-4), 4))

	for i, f := range refs {
		assert.Equal(t, f, b.ApplyAnd(f, f))
		assert.Equal(t, Zero, b.ApplyAnd(f, -f))
		assert.Equal(t, f, b.ApplyOr(f, f))
		assert.Equal(t, One, b.ApplyOr(f, -f))
		assert.Equal(t, Zero, b.ApplyXor(f, f))
		assert.Equal(t, One, b.ApplyXor(f, -f))
		for j, g := range refs {
			and := b.ApplyAnd(f, g)
			or := b.ApplyOr(f, g)
			xor := b.ApplyXor(f, g)
			assert.Equal(t, and, b.ApplyAnd(g, f))
			assert.Equal(t, or, b.ApplyOr(g, f))
			assert.Equal(t, xor, b.ApplyXor(g, f))
			// De Morgan
			assert.Equal(t, -or, b.ApplyAnd(-f, -g))
			assert.Equal(t, -and, b.ApplyOr(-f, -g))
			assert.Equal(t, -xor, b.ApplyXor(-f, g))
			// semantics
			assert.Equal(t, tables[i]&tables[j], truth(b, and, 4))
			assert.Equal(t, tables[i]|tables[j], truth(b, or, 4))
			assert.Equal(t, tables[i]^tables[j], truth(b, xor, 4))
		}
	}
	assert.Positive(t, b.CacheHits())
	assert.Positive(t, b.CacheMisses())
}

func TestApplyOperators(t *testing.T) {
	b := New(100)
	x, y := b.MkVar(1), b.MkVar(2)
	// truth tables are given for (x, y) in (0,0), (0,1), (1,0), (1,1)
	var opTests = []struct {
		op    Operator
		table [4]bool
	}{
		{OPand, [4]bool{false, false, false, true}},
		{OPxor, [4]bool{false, true, true, false}},
		{OPor, [4]bool{false, true, true, true}},
		{OPnand, [4]bool{true, true, true, false}},
		{OPnor, [4]bool{true, false, false, false}},
		{OPimp, [4]bool{true, true, false, true}},
		{OPbiimp, [4]bool{true, false, false, true}},
		{OPdiff, [4]bool{false, false, true, false}},
		{OPless, [4]bool{false, true, false, false}},
		{OPinvimp, [4]bool{true, false, true, true}},
	}
	for _, tt := range opTests {
		t.Run(tt.op.String(), func(t *testing.T) {
			r := b.Apply(x, y, tt.op)
			for k, expected := range tt.table {
				assign := []bool{k&2 != 0, k&1 != 0}
				assert.Equal(t, expected, eval(b, r, assign), "%s(%v)", tt.op, assign)
			}
		})
	}
	assert.Equal(t, "unknown", Operator(42).String())
	assertPanicsWith(t, ErrRef, func() { b.Apply(x, y, Operator(42)) })
}

func TestAndOrVariadic(t *testing.T) {
	b := New(1000)
	assert.Equal(t, One, b.And())
	assert.Equal(t, Zero, b.Or())
	x1, x2, x3 := b.MkVar(1), b.MkVar(2), b.MkVar(3)
	assert.Equal(t, b.Cube(1, 2, 3), b.And(x1, x2, x3))
	assert.Equal(t, b.Clause(1, 2, 3), b.Or(x3, x1, x2))
	assert.Equal(t, b.Clause(-1, 2), b.Imp(x1, x2))
	assert.Equal(t, -b.ApplyXor(x1, x2), b.Equiv(x1, x2))
	assert.Equal(t, Zero, b.Not(One))
	assert.Equal(t, One, b.From(true))
	assert.Equal(t, Zero, b.From(false))
	assert.Equal(t, One, b.True())
	assert.Equal(t, Zero, b.False())
}

func TestApplyInvalid(t *testing.T) {
	b := New(100)
	assertPanicsWith(t, ErrRef, func() { b.ApplyAnd(0, One) })
	assertPanicsWith(t, ErrRef, func() { b.ApplyOr(One, 7) })
	assertPanicsWith(t, ErrRef, func() { b.ApplyXor(-7, One) })
	assertPanicsWith(t, ErrRef, func() { b.ApplyIte(One, One, 0) })
	assertPanicsWith(t, ErrRef, func() { b.Not(0) })
}

//********************************************************************************************

func TestIte_1(t *testing.T) {
	bdd := New(5000)
	n1 := bdd.Cube(1, 3, 4)
	n2 := bdd.Cube(1, 4)
	actual := bdd.Equiv(bdd.ApplyIte(n1, n2, bdd.Not(n2)), bdd.Or(bdd.And(n1, n2), bdd.And(bdd.Not(n1), bdd.Not(n2))))
	assert.Equal(t, bdd.True(), actual, "ite(f,g,h) <=> (f and g) or (-f and h)")
}

func TestIte(t *testing.T) {
	b := New(1 << 16)
	rng := rand.New(rand.NewSource(2))
	refs, tables := sample(b, rng, 4, 12)
	refs = append(refs, One, Zero, b.MkVar(1), b.MkVar(-3))
	tables = append(tables, 0xFFFF, 0, truth(b, b.MkVar(1), 4), truth(b, b.MkVar(-3), 4))
	n := len(refs)
	for i := 0; i < n; i++ {
		f := refs[i]
		// special cases where g or h depends on f
		assert.Equal(t, f, b.ApplyIte(f, One, Zero))
		assert.Equal(t, -f, b.ApplyIte(f, Zero, One))
		assert.Equal(t, f, b.ApplyIte(f, f, f))
		assert.Equal(t, One, b.ApplyIte(f, f, -f))
		assert.Equal(t, Zero, b.ApplyIte(f, -f, f))
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				g, h := refs[j], refs[k]
				expected := (tables[i] & tables[j]) | (^tables[i] & tables[k])
				res := b.ApplyIte(f, g, h)
				require.Equal(t, expected, truth(b, res, 4), "ite(%s, %s, %s)", f, g, h)
				assert.Equal(t, b.ApplyOr(b.ApplyAnd(f, g), b.ApplyAnd(-f, h)), res)
				assert.Equal(t, -res, b.ApplyIte(f, -g, -h))
				assert.Equal(t, res, b.ApplyIte(-f, h, g))
			}
		}
	}
}

//********************************************************************************************

// TestOperations implements the same tests than the bddtest program in the
// Buddy distribution. It uses function AllSat for checking that all
// assignments are detected.
func TestOperations(t *testing.T) {
	bdd := New(1000)
	varnum := 4

	test1_check := func(x Ref) error {
		allsatBDD := x
		allsatSumBDD := bdd.False()
		// Calculate whole set of asignments and remove all assignments
		// from original set
		err := bdd.AllSat(x, varnum, func(varset []int) error {
			x := bdd.True()
			for k, v := range varset {
				switch v {
				case 0:
					x = bdd.And(x, bdd.MkVar(-(k + 1)))
				case 1:
					x = bdd.And(x, bdd.MkVar(k+1))
				}
			}
			// Sum up all assignments
			allsatSumBDD = bdd.Or(allsatSumBDD, x)
			// Remove assignment from initial set
			allsatBDD = bdd.Apply(allsatBDD, x, OPdiff)
			return nil
		})
		if err != nil {
			return err
		}

		// Now the summed set should be equal to the original set and the
		// subtracted set should be empty
		if allsatSumBDD != x {
			return errors.New("AllSat sum is not the initial BDD")
		}
		if allsatBDD != bdd.False() {
			return errors.New("AllSat is not False")
		}
		return nil
	}

	a := bdd.MkVar(1)
	b := bdd.MkVar(2)
	c := bdd.MkVar(3)
	d := bdd.MkVar(4)
	na := bdd.MkVar(-1)
	nb := bdd.MkVar(-2)
	nc := bdd.MkVar(-3)
	nd := bdd.MkVar(-4)

	assert.NoError(t, test1_check(bdd.True()))
	assert.NoError(t, test1_check(bdd.False()))

	// a & b | !a & !b
	assert.NoError(t, test1_check(bdd.Or(bdd.And(a, b), bdd.And(na, nb))))

	// a & b | c & d
	assert.NoError(t, test1_check(bdd.Or(bdd.And(a, b), bdd.And(c, d))))

	// a & !b | a & !d | a & b & !c
	assert.NoError(t, test1_check(bdd.Or(bdd.And(a, nb), bdd.And(a, nd), bdd.And(a, b, nc))))

	for i := 1; i <= varnum; i++ {
		assert.NoError(t, test1_check(bdd.MkVar(i)))
		assert.NoError(t, test1_check(bdd.MkVar(-i)))
	}

	rng := rand.New(rand.NewSource(3))
	set := bdd.True()
	for i := 0; i < 50; i++ {
		v := rng.Intn(varnum) + 1
		if rng.Intn(2) == 0 {
			set = bdd.Or(set, bdd.MkVar(v))
		} else {
			set = bdd.And(set, bdd.MkVar(-v))
		}
		assert.NoError(t, test1_check(set))
	}
}
