// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/fault"
)

// Item - a key type that can order itself against another key
//
// Compare must return -1, 0 or +1 when the receiver is less than,
// equal to or greater than the argument
type Item[K any] interface {
	Compare(K) int
}

// CompareFunc - ordering function for keys, same result convention
// as Item.Compare
type CompareFunc[K any] func(a K, b K) int

// Node - a node in the tree
type Node[K any, V any] struct {
	left       *Node[K, V] // left sub-tree
	right      *Node[K, V] // right sub-tree
	up         *Node[K, V] // points to parent node
	key        K           // key part for ordering
	value      V           // value part for data storage
	balance    int         // -1, 0, +1
	leftNodes  int         // number of nodes in left sub-tree
	rightNodes int         // number of nodes in right sub-tree
}

// Tree - type to hold the root node of a tree
//
// not safe for concurrent use, callers sharing a tree between
// goroutines must provide their own locking
type Tree[K any, V any] struct {
	root    *Node[K, V]
	count   int
	compare CompareFunc[K]

	// reclaimed nodes
	pool      *Node[K, V]
	freeNodes int
}

// Entry - a key/value pair as returned by the entry views
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// New - create an initially empty tree for keys with a natural order
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](compareOrdered[K])
}

// NewItem - create an initially empty tree for keys that implement
// the Item interface
func NewItem[K Item[K], V any]() *Tree[K, V] {
	return NewFunc[K, V](func(a K, b K) int {
		return a.Compare(b)
	})
}

// NewFunc - create an initially empty tree ordered by the compare
// function
func NewFunc[K any, V any](compare CompareFunc[K]) *Tree[K, V] {
	if nil == compare {
		fault.Panic("avl: nil compare function")
	}
	return &Tree[K, V]{
		root:    nil,
		count:   0,
		compare: compare,
	}
}

func compareOrdered[K constraints.Ordered](a K, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Clear - drop all nodes
//
// any outstanding cursor is invalidated
func (tree *Tree[K, V]) Clear() {
	tree.root = nil
	tree.count = 0
	tree.pool = nil
	tree.freeNodes = 0
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node[K, V]) Balance() int {
	return p.balance
}

// Entry - the key/value pair of a node
func (p *Node[K, V]) Entry() Entry[K, V] {
	return Entry[K, V]{
		Key:   p.key,
		Value: p.value,
	}
}
