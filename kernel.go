// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cbdd

// _MAXVAR is the maximal variable index. Variables are stored as int32 and we
// keep the largest value for the level of the terminal node, which is below
// every variable in the ordering.
const _MAXVAR int = 0x7FFFFFFE

// _TERMLEVEL is the level of the terminal node.
const _TERMLEVEL int32 = 0x7FFFFFFF

// _DEFAULTCACHESIZE is the upper limit on the default number of entries in
// the operation cache (about a million entries).
const _DEFAULTCACHESIZE int = 1 << 20

// _MINCACHESIZE is the lower limit on the number of entries in the operation
// cache.
const _MINCACHESIZE int = 1 << 10
