// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

//go:generate mockgen -destination=mocks/store.go -package=mocks github.com/bitmark-inc/avltree/workload Store

// Store - ordered key/value store under test
type Store interface {
	Insert(key int64, value string) bool
	Delete(key int64) (string, bool)
	Get(key int64) (string, bool)
	Floor(key int64) (int64, bool)
	Ceiling(key int64) (int64, bool)
	Count() int
	Check() error
}

// Shape - optional statistics a store may offer
type Shape interface {
	Height() int
	NearestLeaf() int
}

// names accepted by NewStore
const (
	TreeStoreName     = "tree"
	SkipListStoreName = "skiplist"
)

var storeConstructors = map[string]func() Store{
	TreeStoreName:     func() Store { return NewTreeStore() },
	SkipListStoreName: func() Store { return NewSkipListStore() },
}

// NewStore - create an empty store by name
func NewStore(name string) (Store, error) {
	constructor, ok := storeConstructors[name]
	if !ok {
		return nil, fault.ErrInvalidStore
	}
	return constructor(), nil
}

// TreeStore - Store backed by an AVL tree
type TreeStore struct {
	tree *avl.Tree[int64, string]
}

// NewTreeStore - create an empty tree backed store
func NewTreeStore() *TreeStore {
	return &TreeStore{
		tree: avl.New[int64, string](),
	}
}

// Tree - access the underlying tree
func (s *TreeStore) Tree() *avl.Tree[int64, string] {
	return s.tree
}

func (s *TreeStore) Insert(key int64, value string) bool {
	return s.tree.Insert(key, value)
}

func (s *TreeStore) Delete(key int64) (string, bool) {
	return s.tree.Delete(key)
}

func (s *TreeStore) Get(key int64) (string, bool) {
	return s.tree.Get(key)
}

func (s *TreeStore) Floor(key int64) (int64, bool) {
	return nodeKey(s.tree.Floor(key))
}

func (s *TreeStore) Ceiling(key int64) (int64, bool) {
	return nodeKey(s.tree.Ceiling(key))
}

func (s *TreeStore) Count() int {
	return s.tree.Count()
}

func (s *TreeStore) Check() error {
	return s.tree.Check()
}

func (s *TreeStore) Height() int {
	return s.tree.Height()
}

func (s *TreeStore) NearestLeaf() int {
	return s.tree.NearestLeaf()
}

func nodeKey(p *avl.Node[int64, string]) (int64, bool) {
	if nil == p {
		return 0, false
	}
	return p.Key(), true
}
