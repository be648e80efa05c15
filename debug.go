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

//go:build debug

package cbdd

const _DEBUG bool = true
const _LOGLEVEL int = 3

// ******************************************************************************************************

// logTable dumps every occupied cell of the node table, together with its
// bucket and the next cell in its chain.
func (b *BDD) logTable() {
	for n, ok := b.storage.occupied.NextSet(1); ok; n, ok = b.storage.occupied.NextSet(n + 1) {
		k := int(n)
		hash := -1
		if k > 1 {
			hash = b.nodehash(b.storage.variable[k], b.storage.low[k], b.storage.high[k])
		}
		b.logger.Debug("node",
			"index", k,
			"var", b.storage.variable[k],
			"low", b.storage.low[k],
			"high", b.storage.high[k],
			"bucket", hash,
			"next", b.storage.next[k],
		)
	}
}
