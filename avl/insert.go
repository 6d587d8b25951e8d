// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// if the key already exists its key and value are overwritten in
// place and false is returned
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	if nil == tree.root {
		tree.root = tree.newNode(key, value)
		tree.count = 1
		return true
	}

	p := tree.root
	for {
		c := tree.compare(p.key, key)
		if 0 == c {
			p.key = key
			p.value = value
			return false
		}

		var next **Node[K, V]
		if c > 0 { // p.key > key
			next = &p.left
		} else { // p.key < key
			next = &p.right
		}
		if nil != *next {
			p = *next
			continue
		}

		n := tree.newNode(key, value)
		n.up = p
		*next = n
		tree.count += 1

		addCounts(n)
		tree.insertBalance(n)
		return true
	}
}

// internal: a new leaf has been linked in, every ancestor gains one
// node on the side that leads down to it
func addCounts[K any, V any](n *Node[K, V]) {
	for p := n.up; nil != p; n, p = p, p.up {
		if p.left == n {
			p.leftNodes += 1
		} else {
			p.rightNodes += 1
		}
	}
}

// internal: walk up from a new leaf adjusting balance factors
//
// stops as soon as a sub-tree did not change height, and after at
// most one rotation since that always restores the height the
// sub-tree had before the insert
func (tree *Tree[K, V]) insertBalance(n *Node[K, V]) {
	for p := n.up; nil != p; n, p = p, p.up {
		if p.left == n {
			p.balance -= 1 // left branch has grown
		} else {
			p.balance += 1 // right branch has grown
		}

		switch p.balance {
		case 0:
			return
		case -1, +1:
			continue
		default:
			tree.rebalance(p)
			return
		}
	}
}
