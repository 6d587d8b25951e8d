// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fused_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/fused"
)

func newTree(keys ...int) *avl.Tree[int, string] {
	tree := avl.New[int, string]()
	for _, k := range keys {
		tree.Insert(k, "")
	}
	return tree
}

func TestNoSources(t *testing.T) {
	f, err := fused.New[int]()
	assert.Nil(t, f)
	assert.Equal(t, fault.ErrNoIterators, err)

	f, err = fused.New[int](nil)
	assert.Nil(t, f)
	assert.Equal(t, fault.ErrNoIterators, err)
}

func TestConcatenation(t *testing.T) {
	t1 := newTree(3, 1, 2)
	t2 := newTree()
	t3 := newTree(10, 20)

	f, err := fused.New[int](t1.Keys(), t2.Keys(), t3.ReverseKeys())
	require.NoError(t, err)

	items := []int{}
	for f.HasNext() {
		k, ok := f.Next()
		require.True(t, ok)
		items = append(items, k)
	}
	assert.Equal(t, []int{1, 2, 3, 20, 10}, items)

	_, ok := f.Next()
	assert.False(t, ok)
	assert.False(t, f.HasNext())
}

func TestNextWithoutHasNext(t *testing.T) {
	f, err := fused.New[int](newTree().Keys(), newTree(7).Keys())
	require.NoError(t, err)

	k, ok := f.Next()
	assert.True(t, ok)
	assert.Equal(t, 7, k)

	_, ok = f.Next()
	assert.False(t, ok)
}

func TestRemoveAcrossTrees(t *testing.T) {
	t1 := newTree(1, 2, 3)
	t2 := newTree(4, 5, 6)

	f, err := fused.New[int](t1.Keys(), t2.Keys())
	require.NoError(t, err)

	assert.Equal(t, fault.ErrNoCurrentItem, f.Remove(), "remove before next")

	for f.HasNext() {
		k, _ := f.Next()
		if 1 == k%2 {
			require.NoError(t, f.Remove())
		}
	}
	assert.Equal(t, []int{2}, t1.KeySlice())
	assert.Equal(t, []int{4, 6}, t2.KeySlice())

	err = f.Remove()
	assert.Equal(t, fault.ErrIteratorExhausted, err)
	assert.True(t, fault.IsErrNotFound(err))
}

// the last item of the last source can still be removed until
// HasNext reports the end
func TestRemoveLastItem(t *testing.T) {
	tree := newTree(1)
	f, err := fused.New[int](tree.Keys())
	require.NoError(t, err)

	f.Next()
	require.NoError(t, f.Remove())
	assert.True(t, tree.IsEmpty())

	assert.False(t, f.HasNext())
	assert.Equal(t, fault.ErrIteratorExhausted, f.Remove())
}
