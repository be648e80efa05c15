// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cbdd

// Operator describe the potential (binary) operations available on an Apply.
type Operator int

const (
	OPand    Operator = iota // Boolean conjunction
	OPxor                    // Exclusive or
	OPor                     // Disjunction
	OPnand                   // Negation of and
	OPnor                    // Negation of or
	OPimp                    // Implication
	OPbiimp                  // Equivalence
	OPdiff                   // Difference
	OPless                   // Set difference
	OPinvimp                 // Reverse implication
)

var opnames = [10]string{
	OPand:    "and",
	OPxor:    "xor",
	OPor:     "or",
	OPnand:   "nand",
	OPnor:    "nor",
	OPimp:    "imp",
	OPbiimp:  "biimp",
	OPdiff:   "diff",
	OPless:   "less",
	OPinvimp: "invimp",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(opnames) {
		return "unknown"
	}
	return opnames[op]
}

// opKind is used to separate the entries of the different operations in the
// operation cache. The zero value is never used so that an empty slot cannot
// match any operation.
type opKind uint8

const (
	opAnd opKind = iota + 1
	opOr
	opXor
	opIte
	opSize
	opSubstitute
)

var opkindnames = [...]string{
	opAnd:        "AND",
	opOr:         "OR",
	opXor:        "XOR",
	opIte:        "ITE",
	opSize:       "SIZE",
	opSubstitute: "SUBSTITUTE",
}

func (k opKind) String() string {
	return opkindnames[k]
}
