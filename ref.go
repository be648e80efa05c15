// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cbdd

import "fmt"

// Ref is a reference to a Boolean function in a BDD. The absolute value of a
// Ref is the index of a node in the node table, while its sign encodes a
// complemented edge: r and -r always denote a function and its negation. The
// value 0 is never a valid reference.
type Ref int

// One and Zero are the two Boolean constants. They both reference the unique
// terminal node, stored at index 1.
const (
	One  Ref = 1
	Zero Ref = -1
)

// Not returns the negation of r. It never allocates.
func (r Ref) Not() Ref {
	return -r
}

// IsConst reports whether r is one of the two constants.
func (r Ref) IsConst() bool {
	return r == One || r == Zero
}

// IsNegated reports whether r is a complemented edge.
func (r Ref) IsNegated() bool {
	return r < 0
}

func (r Ref) index() int {
	if r < 0 {
		return int(-r)
	}
	return int(r)
}

func (r Ref) String() string {
	switch {
	case r == One:
		return "1"
	case r == Zero:
		return "0"
	case r < 0:
		return fmt.Sprintf("~@%d", -r)
	}
	return fmt.Sprintf("@%d", int(r))
}
