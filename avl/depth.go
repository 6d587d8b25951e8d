// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Height - number of levels from the root to the farthest leaf
//
// an empty tree has height 0, a single node height 1
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

func height[K any, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	// the balance factor tells which side is taller
	if p.balance < 0 {
		return 1 + height(p.left)
	}
	return 1 + height(p.right)
}

// NearestLeaf - number of levels from the root to the nearest leaf
func (tree *Tree[K, V]) NearestLeaf() int {
	return nearestLeaf(tree.root)
}

func nearestLeaf[K any, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	if nil == p.left {
		return 1 + nearestLeaf(p.right)
	}
	if nil == p.right {
		return 1 + nearestLeaf(p.left)
	}
	l := nearestLeaf(p.left)
	r := nearestLeaf(p.right)
	if l < r {
		return 1 + l
	}
	return 1 + r
}

// ChildrenAtDepth - returns all nodes at a specific depth below this node
func (p *Node[K, V]) ChildrenAtDepth(depth uint) []*Node[K, V] {
	if 0 == depth {
		return []*Node[K, V]{p}
	}

	nodes := []*Node[K, V]{}
	if nil != p.left {
		nodes = append(nodes, p.left.ChildrenAtDepth(depth-1)...)
	}
	if nil != p.right {
		nodes = append(nodes, p.right.ChildrenAtDepth(depth-1)...)
	}
	return nodes
}

// Depth - get the depth of a node, the root is at depth zero
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	for up := p.up; nil != up; up = up.up {
		count += 1
	}
	return count
}
