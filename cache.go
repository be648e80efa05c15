// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package cbdd

import (
	"fmt"
)

// ************************************************************

// opcache is a direct-mapped cache used for the results of apply, ite,
// substitute and size. It never grows: a new entry simply overwrites the
// previous one stored in the same slot.
type opcache struct {
	table []cacheData
	mask  uint64
}

// cacheData is a unit of information stored in the operation cache. A slot
// with key 0 is empty. The compressed key is only used to select and filter
// entries; we always check the full operands before trusting res.
type cacheData struct {
	key uint64
	op  opKind
	a   Ref
	b   Ref
	c   Ref
	res Ref
}

// cacheStat stores status information about cache usage
type cacheStat struct {
	uniqueAccess int // accesses to the unique node table
	uniqueChain  int // iterations through the cache chains in the unique node table
	uniqueHit    int // entries actually found in the the unique node table
	uniqueMiss   int // entries not found in the the unique node table
	opHit        int // entries found in the operator caches
	opMiss       int // entries not found in the operator caches
}

// ************************************************************

func makeopcache(size int) *opcache {
	// we round size to the next power of two so that we can use a mask
	s := 1
	for s < size {
		s <<= 1
	}
	return &opcache{
		table: make([]cacheData, s),
		mask:  uint64(s - 1),
	}
}

func (oc *opcache) clear() {
	for k := range oc.table {
		oc.table[k] = cacheData{}
	}
}

func (oc *opcache) len() int {
	return len(oc.table)
}

// cacheget returns the result cached for op(a, b, c), if any.
func (b *BDD) cacheget(op opKind, x, y, z Ref) (Ref, bool) {
	key := compress(op, x, y, z)
	entry := &b.cache.table[key&b.cache.mask]
	if entry.key == key && entry.op == op && entry.a == x && entry.b == y && entry.c == z {
		b.opHit++
		return entry.res, true
	}
	b.opMiss++
	return 0, false
}

func (b *BDD) cacheset(op opKind, x, y, z, res Ref) Ref {
	key := compress(op, x, y, z)
	b.cache.table[key&b.cache.mask] = cacheData{
		key: key,
		op:  op,
		a:   x,
		b:   y,
		c:   z,
		res: res,
	}
	return res
}

// ************************************************************

// memo is an exact cache scoped to a single top-level operation, like one call
// to Exists or Count. It is never shared between calls and is dropped at the
// end of the call.
type memo[K comparable, V any] struct {
	table map[K]V
	stat  *cacheStat
}

func newmemo[K comparable, V any](stat *cacheStat) *memo[K, V] {
	return &memo[K, V]{table: make(map[K]V), stat: stat}
}

func (m *memo[K, V]) get(k K) (V, bool) {
	v, ok := m.table[k]
	if ok {
		m.stat.opHit++
	} else {
		m.stat.opMiss++
	}
	return v, ok
}

func (m *memo[K, V]) set(k K, v V) V {
	m.table[k] = v
	return v
}

// ************************************************************

// CacheHits returns the number of results found in the operation caches since
// the BDD was created.
func (b *BDD) CacheHits() int {
	return b.opHit
}

// CacheMisses returns the number of operations that were not found in the
// operation caches and had to be computed.
func (b *BDD) CacheMisses() int {
	return b.opMiss
}

// String prints information about the cache performance. The information
// contains the number of accesses to the unique node table, the number of times
// a node was (not) found there and how many times a hash chain had to
// traversed. Hit and miss count is also given for the operator caches.
func (c cacheStat) String() string {
	res := fmt.Sprintf("Unique Access:  %d\n", c.uniqueAccess)
	res += fmt.Sprintf("Unique Chain:   %d\n", c.uniqueChain)
	res += fmt.Sprintf("Unique Hit:     %d\n", c.uniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d\n", c.uniqueMiss)
	res += fmt.Sprintf("Operator Hits:  %d\n", c.opHit)
	res += fmt.Sprintf("Operator Miss:  %d", c.opMiss)
	return res
}
