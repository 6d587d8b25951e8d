// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns the value that was stored and true, or the zero value and
// false if the key was not present
func (tree *Tree[K, V]) Delete(key K) (V, bool) {
	q := tree.search(key)
	if nil == q { // key not in tree
		var zero V
		return zero, false
	}
	value := q.value // preserve the value part
	tree.unlink(q)
	tree.freeNode(q) // return deleted node to pool
	return value, true
}

// internal: detach node q from the tree and rebalance
//
// when q has two children its in-order neighbour r is moved into q's
// position (the successor for a right leaning or balanced q, else the
// predecessor) so the node actually taken out of its position has at
// most one child.  r keeps its identity, only links change.
func (tree *Tree[K, V]) unlink(q *Node[K, V]) {
	r := q
	if nil != q.left && nil != q.right {
		if q.balance < 0 {
			r = q.left.last()
		} else {
			r = q.right.first()
		}
	}

	// everything above r loses one node
	for n, p := r, r.up; nil != p; n, p = p, p.up {
		if p.left == n {
			p.leftNodes -= 1
		} else {
			p.rightNodes -= 1
		}
	}

	child := r.left
	if nil == child {
		child = r.right
	}
	parent := r.up
	leftShrunk := false
	if nil == parent {
		tree.root = child
	} else if parent.left == r {
		parent.left = child
		leftShrunk = true
	} else {
		parent.right = child
	}
	if nil != child {
		child.up = parent
	}

	if r != q {
		r.left = q.left
		r.right = q.right
		r.balance = q.balance
		r.leftNodes = q.leftNodes
		r.rightNodes = q.rightNodes
		if nil != r.left {
			r.left.up = r
		}
		if nil != r.right {
			r.right.up = r
		}
		tree.replace(q, r)
		r.up = q.up

		if parent == q {
			parent = r
		}
	}
	tree.count -= 1

	tree.deleteBalance(parent, leftShrunk)
}

// internal: walk up from the parent of the removed position
//
// unlike insert, a rotation can reduce the height of the sub-tree so
// the walk continues after it, unless the rotation left the height
// unchanged
func (tree *Tree[K, V]) deleteBalance(p *Node[K, V], leftShrunk bool) {
	for nil != p {
		if leftShrunk {
			p.balance += 1
		} else {
			p.balance -= 1
		}

		switch p.balance {
		case -1, +1:
			return // height did not change
		case 0:
			// height decreased, carry on upwards
		default:
			shrunk := false
			p, shrunk = tree.rebalance(p)
			if !shrunk {
				return
			}
		}

		up := p.up
		if nil != up {
			leftShrunk = up.left == p
		}
		p = up
	}
}
