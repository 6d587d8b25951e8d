// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[K, V]) Next() *Node[K, V] {
	if nil != p.right {
		return p.right.first()
	}
	// climb until arriving from a left branch
	for up := p.up; nil != up; p, up = up, up.up {
		if up.left == p {
			return up
		}
	}
	return nil
}

// Prev - given a node, return the node with the next lowest key value
// or nil if no more nodes
func (p *Node[K, V]) Prev() *Node[K, V] {
	if nil != p.left {
		return p.left.last()
	}
	// climb until arriving from a right branch
	for up := p.up; nil != up; p, up = up, up.up {
		if up.right == p {
			return up
		}
	}
	return nil
}
