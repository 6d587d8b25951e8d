// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Floor - the node with the greatest key less than or equal to key
//
// nil if every key in the tree is greater
func (tree *Tree[K, V]) Floor(key K) *Node[K, V] {
	return tree.seek(key, true, false)
}

// Ceiling - the node with the least key greater than or equal to key
//
// nil if every key in the tree is less
func (tree *Tree[K, V]) Ceiling(key K) *Node[K, V] {
	return tree.seek(key, true, true)
}

// Less - the node with the greatest key strictly less than key
func (tree *Tree[K, V]) Less(key K) *Node[K, V] {
	return tree.seek(key, false, false)
}

// Greater - the node with the least key strictly greater than key
func (tree *Tree[K, V]) Greater(key K) *Node[K, V] {
	return tree.seek(key, false, true)
}

// internal: descend as for a search, remembering the last node on
// the path that lies on the requested side of key.  An exact match
// is returned directly, or stepped over with Next/Prev when an
// exact match is not allowed.
func (tree *Tree[K, V]) seek(key K, exact bool, greater bool) *Node[K, V] {
	var candidate *Node[K, V]
	p := tree.root
	for nil != p {
		c := tree.compare(p.key, key)
		switch {
		case c > 0: // p.key > key
			if greater {
				candidate = p
			}
			p = p.left
		case c < 0: // p.key < key
			if !greater {
				candidate = p
			}
			p = p.right
		default:
			if exact {
				return p
			}
			if greater {
				return p.Next()
			}
			return p.Prev()
		}
	}
	return candidate
}
