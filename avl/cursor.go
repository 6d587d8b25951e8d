// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Direction - order of traversal for a cursor
type Direction int

// traversal directions
const (
	Forward  Direction = +1
	Backward Direction = -1
)

// Cursor - steps through the tree one node at a time yielding a
// projection of each node (its key, value or entry)
//
// the tree must not be modified while a cursor is in use except
// through the cursor's own Remove.  Any other insert or delete leaves
// the cursor in an undefined state, it may skip or repeat items.
type Cursor[K any, V any, T any] struct {
	tree      *Tree[K, V]
	next      *Node[K, V] // node to be returned by the next call to Next
	current   *Node[K, V] // node last returned, nil after Remove
	direction Direction
	project   func(*Node[K, V]) T
}

func newCursor[K any, V any, T any](tree *Tree[K, V], start *Node[K, V], direction Direction, project func(*Node[K, V]) T) *Cursor[K, V, T] {
	return &Cursor[K, V, T]{
		tree:      tree,
		next:      start,
		direction: direction,
		project:   project,
	}
}

// HasNext - true if a call to Next will return an item
func (c *Cursor[K, V, T]) HasNext() bool {
	return nil != c.next
}

// Next - return the next item and advance the cursor
//
// the second result is false when the cursor is exhausted
func (c *Cursor[K, V, T]) Next() (T, bool) {
	if nil == c.next {
		var zero T
		return zero, false
	}
	c.current = c.next
	if Backward == c.direction {
		c.next = c.current.Prev()
	} else {
		c.next = c.current.Next()
	}
	return c.project(c.current), true
}

// Remove - delete the item last returned by Next from the tree
//
// fails if Next has not yet returned an item or if that item has
// already been removed
func (c *Cursor[K, V, T]) Remove() error {
	if nil == c.current {
		return fault.ErrNoCurrentItem
	}
	c.tree.unlink(c.current)
	c.tree.freeNode(c.current)
	c.current = nil
	return nil
}

// Direction - the direction of travel
func (c *Cursor[K, V, T]) Direction() Direction {
	return c.direction
}

// Count - number of nodes in the underlying tree
func (c *Cursor[K, V, T]) Count() int {
	return c.tree.count
}

func nodeKey[K any, V any](p *Node[K, V]) K {
	return p.key
}

func nodeValue[K any, V any](p *Node[K, V]) V {
	return p.value
}

func nodeEntry[K any, V any](p *Node[K, V]) Entry[K, V] {
	return p.Entry()
}

// Keys - ascending cursor over the keys
func (tree *Tree[K, V]) Keys() *Cursor[K, V, K] {
	return newCursor(tree, tree.First(), Forward, nodeKey[K, V])
}

// Values - cursor over the values in ascending key order
func (tree *Tree[K, V]) Values() *Cursor[K, V, V] {
	return newCursor(tree, tree.First(), Forward, nodeValue[K, V])
}

// Entries - cursor over the key/value pairs in ascending key order
func (tree *Tree[K, V]) Entries() *Cursor[K, V, Entry[K, V]] {
	return newCursor(tree, tree.First(), Forward, nodeEntry[K, V])
}

// ReverseKeys - descending cursor over the keys
func (tree *Tree[K, V]) ReverseKeys() *Cursor[K, V, K] {
	return newCursor(tree, tree.Last(), Backward, nodeKey[K, V])
}

// ReverseValues - cursor over the values in descending key order
func (tree *Tree[K, V]) ReverseValues() *Cursor[K, V, V] {
	return newCursor(tree, tree.Last(), Backward, nodeValue[K, V])
}

// ReverseEntries - cursor over the key/value pairs in descending key order
func (tree *Tree[K, V]) ReverseEntries() *Cursor[K, V, Entry[K, V]] {
	return newCursor(tree, tree.Last(), Backward, nodeEntry[K, V])
}

// KeysFrom - ascending cursor over the keys starting at key
//
// returns nil and false if key is not in the tree
func (tree *Tree[K, V]) KeysFrom(key K) (*Cursor[K, V, K], bool) {
	return cursorFrom(tree, key, Forward, nodeKey[K, V])
}

// ValuesFrom - ascending cursor over the values starting at key
func (tree *Tree[K, V]) ValuesFrom(key K) (*Cursor[K, V, V], bool) {
	return cursorFrom(tree, key, Forward, nodeValue[K, V])
}

// EntriesFrom - ascending cursor over the key/value pairs starting at key
func (tree *Tree[K, V]) EntriesFrom(key K) (*Cursor[K, V, Entry[K, V]], bool) {
	return cursorFrom(tree, key, Forward, nodeEntry[K, V])
}

// ReverseKeysFrom - descending cursor over the keys starting at key
func (tree *Tree[K, V]) ReverseKeysFrom(key K) (*Cursor[K, V, K], bool) {
	return cursorFrom(tree, key, Backward, nodeKey[K, V])
}

// ReverseValuesFrom - descending cursor over the values starting at key
func (tree *Tree[K, V]) ReverseValuesFrom(key K) (*Cursor[K, V, V], bool) {
	return cursorFrom(tree, key, Backward, nodeValue[K, V])
}

// ReverseEntriesFrom - descending cursor over the key/value pairs
// starting at key
func (tree *Tree[K, V]) ReverseEntriesFrom(key K) (*Cursor[K, V, Entry[K, V]], bool) {
	return cursorFrom(tree, key, Backward, nodeEntry[K, V])
}

func cursorFrom[K any, V any, T any](tree *Tree[K, V], key K, direction Direction, project func(*Node[K, V]) T) (*Cursor[K, V, T], bool) {
	start := tree.search(key)
	if nil == start {
		return nil, false
	}
	return newCursor(tree, start, direction, project), true
}

// ForEach - call f for every node in the given direction until f
// returns false
//
// f must not modify the tree
func (tree *Tree[K, V]) ForEach(direction Direction, f func(*Node[K, V]) bool) {
	if Backward == direction {
		for p := tree.Last(); nil != p; p = p.Prev() {
			if !f(p) {
				return
			}
		}
		return
	}
	for p := tree.First(); nil != p; p = p.Next() {
		if !f(p) {
			return
		}
	}
}
