// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rebalance a node whose balance has reached ±2
//
// returns the new root of the sub-tree and whether the sub-tree is
// now one level lower than it was before the rotation.  Only a single
// rotation over a child with zero balance leaves the height unchanged,
// and that case can only arise from a delete.
func (tree *Tree[K, V]) rebalance(p *Node[K, V]) (*Node[K, V], bool) {
	if p.balance < 0 {
		p1 := p.left
		if p1.balance <= 0 {
			// single LL rotation
			tree.rotateRight(p)
			if 0 == p1.balance {
				p.balance = -1
				p1.balance = +1
				return p1, false
			}
			p.balance = 0
			p1.balance = 0
			return p1, true
		}

		// double LR rotation
		p2 := p1.right
		tree.rotateLeft(p1)
		tree.rotateRight(p)
		if -1 == p2.balance {
			p.balance = +1
		} else {
			p.balance = 0
		}
		if +1 == p2.balance {
			p1.balance = -1
		} else {
			p1.balance = 0
		}
		p2.balance = 0
		return p2, true
	}

	p1 := p.right
	if p1.balance >= 0 {
		// single RR rotation
		tree.rotateLeft(p)
		if 0 == p1.balance {
			p.balance = +1
			p1.balance = -1
			return p1, false
		}
		p.balance = 0
		p1.balance = 0
		return p1, true
	}

	// double RL rotation
	p2 := p1.left
	tree.rotateRight(p1)
	tree.rotateLeft(p)
	if +1 == p2.balance {
		p.balance = -1
	} else {
		p.balance = 0
	}
	if -1 == p2.balance {
		p1.balance = +1
	} else {
		p1.balance = 0
	}
	p2.balance = 0
	return p2, true
}

// rotate p down to the right, its left child takes its place
//
// links and node counts are updated, balance factors are left to
// the caller
func (tree *Tree[K, V]) rotateRight(p *Node[K, V]) *Node[K, V] {
	p1 := p.left

	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	p1.right = p

	tree.replace(p, p1)
	p1.up = p.up
	p.up = p1

	p.leftNodes = p1.rightNodes
	p1.rightNodes = 1 + p.leftNodes + p.rightNodes

	return p1
}

// rotate p down to the left, its right child takes its place
func (tree *Tree[K, V]) rotateLeft(p *Node[K, V]) *Node[K, V] {
	p1 := p.right

	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	p1.left = p

	tree.replace(p, p1)
	p1.up = p.up
	p.up = p1

	p.rightNodes = p1.leftNodes
	p1.leftNodes = 1 + p.leftNodes + p.rightNodes

	return p1
}

// point the link that referred to old (parent's child or the root)
// at n instead; n's own up pointer is not changed
func (tree *Tree[K, V]) replace(old *Node[K, V], n *Node[K, V]) {
	up := old.up
	switch {
	case nil == up:
		tree.root = n
	case up.left == old:
		up.left = n
	default:
		up.right = n
	}
}
