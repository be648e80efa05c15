// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cbdd

import (
	"log/slog"
)

// configs is used to store the values of different parameters of the BDD
type configs struct {
	nodesize  int          // number of cells in the node table, including the sentinel cell 0
	buckets   int          // number of buckets in the unique table
	cachesize int          // number of entries in the operation cache
	logger    *slog.Logger // logger used for GC and debug traces
}

func makeconfigs(capacity int) *configs {
	c := &configs{nodesize: capacity, buckets: capacity}
	// by default we use one cache entry for every 4 slots in the node table
	c.cachesize = capacity / 4
	if c.cachesize > _DEFAULTCACHESIZE {
		c.cachesize = _DEFAULTCACHESIZE
	}
	if c.cachesize < _MINCACHESIZE {
		c.cachesize = _MINCACHESIZE
	}
	return c
}

// Buckets is a configuration option (function). Used as a parameter in New it
// sets the number of buckets in the unique table. The default is to use as
// many buckets as there are cells in the node table. Values smaller than 1 are
// ignored.
func Buckets(size int) func(*configs) {
	return func(c *configs) {
		if size >= 1 {
			c.buckets = size
		}
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New it
// sets the number of entries in the operation cache. The value is rounded up
// to the next power of two. The default is a quarter of the node table
// capacity, within the limits of 1 024 and about a million entries. The cache
// never grows.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		if size >= 1 {
			c.cachesize = size
		}
	}
}

// Logger is a configuration option (function). Used as a parameter in New it
// sets the logger used to report garbage collections and, when compiled with
// the debug build tag, internal traces.
func Logger(logger *slog.Logger) func(*configs) {
	return func(c *configs) {
		if logger != nil {
			c.logger = logger
		}
	}
}
