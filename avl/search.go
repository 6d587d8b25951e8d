// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
//
// returns the node and its zero based in-order index, or nil and -1
// if the key is not in the tree
func (tree *Tree[K, V]) Search(key K) (*Node[K, V], int) {
	index := 0
	p := tree.root
	for nil != p {
		switch c := tree.compare(p.key, key); {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			index += p.leftNodes + 1
			p = p.right
		default:
			return p, index + p.leftNodes
		}
	}
	return nil, -1
}

// Get - value stored under a key
func (tree *Tree[K, V]) Get(key K) (V, bool) {
	if p := tree.search(key); nil != p {
		return p.value, true
	}
	var zero V
	return zero, false
}

// Contains - true if the key is in the tree
func (tree *Tree[K, V]) Contains(key K) bool {
	return nil != tree.search(key)
}

// internal: plain descent without index accounting
func (tree *Tree[K, V]) search(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		c := tree.compare(p.key, key)
		if c > 0 {
			p = p.left
		} else if c < 0 {
			p = p.right
		} else {
			return p
		}
	}
	return nil
}
