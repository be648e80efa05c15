// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cbdd

// Hash functions

// pair is the Cantor pairing function. It maps (bijectively, before overflow)
// a pair of naturals (a, b) into a single natural. All computations wrap
// modulo 2^64, so the function is total.
func pair(a, b uint64) uint64 {
	return (a+b)*(a+b+1)/2 + b
}

// triple is used for selecting buckets in the unique table. Collisions are
// resolved by chaining.
func triple(a, b, c uint64) uint64 {
	return pair(pair(a, b), c)
}

// pairing folds pair over args, from left to right. Order matters.
func pairing(args ...uint64) uint64 {
	if len(args) == 0 {
		return 0
	}
	res := args[0]
	for _, a := range args[1:] {
		res = pair(res, a)
	}
	return res
}

// compress returns the key stored in the operation cache for an operation and
// its arguments. The top bit is always set so that a key can never be equal
// to the value 0 that marks an empty slot.
func compress(op opKind, a, b, c Ref) uint64 {
	return pairing(uint64(op), zigzag(a), zigzag(b), zigzag(c)) | (1 << 63)
}

// zigzag maps signed references to naturals: 0, -1, 1, -2, 2, ... are mapped
// to 0, 1, 2, 3, 4, ...
func zigzag(r Ref) uint64 {
	return uint64((int64(r) << 1) ^ (int64(r) >> 63))
}

// nodehash returns the bucket for the triplet (level, low, high). We only use
// the absolute value of the children, as in the canonical form the sign of
// low is the only polarity information left.
func (b *BDD) nodehash(level int32, low, high Ref) int {
	h := triple(uint64(level), uint64(low.index()), uint64(high.index()))
	return int(h % uint64(len(b.buckets)))
}
