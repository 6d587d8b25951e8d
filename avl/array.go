// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// KeySlice - snapshot of all keys in ascending order
func (tree *Tree[K, V]) KeySlice() []K {
	keys := make([]K, 0, tree.count)
	for p := tree.First(); nil != p; p = p.Next() {
		keys = append(keys, p.key)
	}
	return keys
}

// ValueSlice - snapshot of all values in ascending key order
func (tree *Tree[K, V]) ValueSlice() []V {
	values := make([]V, 0, tree.count)
	for p := tree.First(); nil != p; p = p.Next() {
		values = append(values, p.value)
	}
	return values
}

// EntrySlice - snapshot of all key/value pairs in ascending key order
func (tree *Tree[K, V]) EntrySlice() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, tree.count)
	for p := tree.First(); nil != p; p = p.Next() {
		entries = append(entries, p.Entry())
	}
	return entries
}
