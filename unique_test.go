// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cbdd

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// assertPanicsWith checks that f panics with an error wrapping target.
func assertPanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if !assert.NotNil(t, r, "expected a panic") {
			return
		}
		err, ok := r.(error)
		if assert.True(t, ok, "panic value is not an error: %v", r) {
			assert.True(t, errors.Is(err, target), "expected %v, got %v", target, err)
		}
	}()
	f()
}

func TestNew(t *testing.T) {
	b := New(100)
	assert.Equal(t, 1, b.RealSize())
	assert.Equal(t, 1, b.LastIndex())
	assert.Equal(t, 100, b.Capacity())
	assert.Equal(t, 100, len(b.buckets))
	assert.Equal(t, 1024, b.cache.len())

	b = New(100, Buckets(7), Cachesize(3000))
	assert.Equal(t, 7, len(b.buckets))
	assert.Equal(t, 4096, b.cache.len())

	assertPanicsWith(t, ErrCapacity, func() { New(1) })
}

func TestMkVar(t *testing.T) {
	b := New(100)
	for v := 1; v <= 10; v++ {
		x := b.MkVar(v)
		assert.Equal(t, x, b.MkVar(v), "hash-consing of x%d", v)
		assert.Equal(t, -x, b.MkVar(-v))
		assert.False(t, x.IsNegated())
		assert.Equal(t, v, b.Variable(x))
		assert.Equal(t, Zero, b.Low(x))
		assert.Equal(t, One, b.High(x))
		assert.Equal(t, One, b.Low(-x))
		assert.Equal(t, Zero, b.High(-x))
	}
	assert.Equal(t, 11, b.RealSize())
	assertPanicsWith(t, ErrVariable, func() { b.MkVar(0) })
	assertPanicsWith(t, ErrVariable, func() { b.MkVar(_MAXVAR + 1) })
	assertPanicsWith(t, ErrVariable, func() { b.MkVar(-_MAXVAR - 1) })
	assertPanicsWith(t, ErrVariable, func() { b.MkVar(math.MinInt) })
}

func TestMkNode(t *testing.T) {
	b := New(100)
	x2 := b.MkVar(2)
	x3 := b.MkVar(3)

	// no redundant tests
	assert.Equal(t, x2, b.MkNode(1, x2, x2))

	// the high branch is never complemented
	n := b.MkNode(1, x2, -x3)
	assert.True(t, n.IsNegated())
	assert.Equal(t, x2, b.Low(n))
	assert.Equal(t, -x3, b.High(n))
	assert.Equal(t, -n, b.MkNode(1, -x2, x3))
	assert.Equal(t, -x2, b.storage.low[n.index()])
	assert.Equal(t, x3, b.storage.high[n.index()])

	// hash-consing
	size := b.RealSize()
	assert.Equal(t, n, b.MkNode(1, x2, -x3))
	assert.Equal(t, size, b.RealSize())

	assertPanicsWith(t, ErrOrder, func() { b.MkNode(2, x2, One) })
	assertPanicsWith(t, ErrOrder, func() { b.MkNode(3, x2, One) })
	assertPanicsWith(t, ErrRef, func() { b.MkNode(1, 0, One) })
	assertPanicsWith(t, ErrRef, func() { b.MkNode(1, 50, One) })
	assertPanicsWith(t, ErrVariable, func() { b.MkNode(0, Zero, One) })
}

func TestUniqueChains(t *testing.T) {
	// with a single bucket, all nodes are in the same chain
	b := New(100, Buckets(1))
	refs := []Ref{}
	for v := 1; v <= 20; v++ {
		refs = append(refs, b.MkVar(v))
	}
	for v := 1; v <= 20; v++ {
		assert.Equal(t, refs[v-1], b.MkVar(v))
	}
	// nodes are appended at the end of the chain
	n := b.buckets[0]
	for k := 0; k < 20; k++ {
		assert.Equal(t, refs[k].index(), n)
		n = b.storage.next[n]
	}
	assert.Equal(t, 0, n)
	assert.Greater(t, b.uniqueChain, 20)
	assert.Equal(t, 20, b.uniqueMiss)
	assert.Equal(t, 20, b.uniqueHit)
}

func TestCorruptedChain(t *testing.T) {
	b := New(100, Buckets(1))
	x := b.MkVar(1)
	b.storage.drop(x.index())
	assertPanicsWith(t, ErrCorrupted, func() { b.MkVar(2) })
}

func TestClauseCube(t *testing.T) {
	b := New(1000)
	assert.Equal(t, Zero, b.Clause())
	assert.Equal(t, One, b.Cube())
	assert.Equal(t, b.MkVar(-3), b.Clause(-3))
	c := b.Clause(1, -2, 3)
	assert.Equal(t, c, b.Clause(3, 1, -2))
	assert.Equal(t, c, b.Or(b.MkVar(1), b.MkVar(-2), b.MkVar(3)))
	assert.Equal(t, -c, b.Cube(-1, 2, -3))
	// complementary literals
	assert.Equal(t, One, b.Clause(1, -1))
	assert.Equal(t, Zero, b.Cube(1, -1))
	assertPanicsWith(t, ErrVariable, func() { b.Clause(1, 0) })
	assertPanicsWith(t, ErrVariable, func() { b.Cube(0) })
	assertPanicsWith(t, ErrVariable, func() { b.Clause(2, math.MinInt) })
	assertPanicsWith(t, ErrVariable, func() { b.Cube(math.MinInt, 1) })
}
