// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// At - node at a specific zero based in-order index
//
// returns nil if the index is out of range
func (tree *Tree[K, V]) At(index int) *Node[K, V] {
	if index < 0 || index >= tree.count {
		return nil
	}

	p := tree.root
	for nil != p {
		nl := p.leftNodes
		if index < nl {
			p = p.left
		} else if index > nl {
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			p = p.right
		} else {
			return p
		}
	}
	return nil
}
