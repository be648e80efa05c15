// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cbdd

import (
	"github.com/pkg/errors"
)

// The library never returns errors from its core operations. Every contract
// violation is a programming error and we panic with one of the following
// values, wrapped with a stack trace and some context. Use errors.Is (or
// errors.Cause) on the recovered value to test for a specific kind.
var (
	// ErrVariable is raised when a variable index, or a literal, is not
	// strictly positive (respectively is zero).
	ErrVariable = errors.New("invalid variable")
	// ErrRef is raised when an operand is the invalid reference 0, or points
	// to an unused cell of the node table.
	ErrRef = errors.New("invalid reference")
	// ErrOrder is raised by MkNode when the variable ordering is not
	// respected.
	ErrOrder = errors.New("variable ordering violated")
	// ErrCapacity is raised when the node table is full. There is no
	// automatic resizing; use a larger capacity in New.
	ErrCapacity = errors.New("node table capacity exceeded")
	// ErrCorrupted is raised when we detect that an internal invariant does
	// not hold. This always denotes a bug in the library.
	ErrCorrupted = errors.New("corrupted node table")
	// ErrCount is raised when the number of variables given to Count, OneSat
	// or AllSat is smaller than a variable in the BDD.
	ErrCount = errors.New("not enough variables")
)

func fatalf(err error, format string, a ...interface{}) {
	panic(errors.Wrapf(err, format, a...))
}

// checkref panics if r does not reference a live node.
func (b *BDD) checkref(r Ref, where string) {
	if r == 0 {
		fatalf(ErrRef, "zero reference in call to %s", where)
	}
	n := r.index()
	if n > b.storage.lastIndex || !b.storage.isOccupied(n) {
		fatalf(ErrRef, "reference %s to an unused node in call to %s", r, where)
	}
}

func checkvar(v int, where string) {
	if v <= 0 {
		fatalf(ErrVariable, "variable %d in call to %s", v, where)
	}
	if v > _MAXVAR {
		fatalf(ErrVariable, "variable %d greater than %d in call to %s", v, _MAXVAR, where)
	}
}
