// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the structure of the whole tree
//
// checks key order, parent pointers, balance factors against the
// actual sub-tree heights and the node counts.  A non-nil result
// always indicates a bug in this package or an inconsistent compare
// function.
func (tree *Tree[K, V]) Check() error {
	if nil != tree.root && nil != tree.root.up {
		return fault.ErrTreeParent
	}
	n, _, err := tree.check(tree.root, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrTreeCount
	}
	return nil
}

// internal: consistency checker
//
// returns the number of nodes and the height of the sub-tree
func (tree *Tree[K, V]) check(p *Node[K, V], up *Node[K, V]) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if p.up != up {
		return 0, 0, fault.ErrTreeParent
	}
	if nil != p.left && tree.compare(p.left.key, p.key) >= 0 {
		return 0, 0, fault.ErrTreeOrder
	}
	if nil != p.right && tree.compare(p.right.key, p.key) <= 0 {
		return 0, 0, fault.ErrTreeOrder
	}

	ln, lh, err := tree.check(p.left, p)
	if nil != err {
		return 0, 0, err
	}
	rn, rh, err := tree.check(p.right, p)
	if nil != err {
		return 0, 0, err
	}

	// adjacent keys across the node must also be ordered, which
	// catches a key placed in the wrong sub-tree further down
	if nil != p.left && tree.compare(p.left.last().key, p.key) >= 0 {
		return 0, 0, fault.ErrTreeOrder
	}
	if nil != p.right && tree.compare(p.right.first().key, p.key) <= 0 {
		return 0, 0, fault.ErrTreeOrder
	}

	if p.balance != rh-lh || p.balance < -1 || p.balance > 1 {
		return 0, 0, fault.ErrTreeBalance
	}
	if p.leftNodes != ln || p.rightNodes != rn {
		return 0, 0, fault.ErrTreeCount
	}

	h := lh
	if rh > h {
		h = rh
	}
	return 1 + ln + rn, 1 + h, nil
}
