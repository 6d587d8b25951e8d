// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree[K, V]) newNode(key K, value V) *Node[K, V] {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			fault.Panic("avl: pool corrupt")
		}
		return &Node[K, V]{
			key:     key,
			value:   value,
			balance: 0,
		}
	}
	p := tree.pool
	tree.pool = p.up
	tree.freeNodes -= 1

	p.key = key
	p.value = value
	p.up = nil // ensure freelist pointer is cleared
	return p
}

// reclaim a node and keep it in the pool
//
// key and value are zeroed so the pool does not hold on to caller data
func (tree *Tree[K, V]) freeNode(node *Node[K, V]) {
	var zeroKey K
	var zeroValue V

	node.left = nil
	node.right = nil
	node.key = zeroKey
	node.value = zeroValue
	node.balance = 0
	node.leftNodes = 0
	node.rightNodes = 0

	node.up = tree.pool // use as free list pointer
	tree.pool = node
	tree.freeNodes += 1
}
