// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

func makeTree(keys ...int) *avl.Tree[int, string] {
	tree := avl.New[int, string]()
	for _, k := range keys {
		tree.Insert(k, string(rune('a'+k)))
	}
	return tree
}

func drain[T any](c interface {
	HasNext() bool
	Next() (T, bool)
}) []T {
	items := []T{}
	for c.HasNext() {
		item, ok := c.Next()
		if !ok {
			break
		}
		items = append(items, item)
	}
	return items
}

func TestCursorViews(t *testing.T) {
	tree := makeTree(3, 1, 4, 0, 2)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, drain[int](tree.Keys()))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, drain[string](tree.Values()))
	assert.Equal(t, []int{4, 3, 2, 1, 0}, drain[int](tree.ReverseKeys()))
	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, drain[string](tree.ReverseValues()))

	entries := drain[avl.Entry[int, string]](tree.Entries())
	require.Len(t, entries, 5)
	assert.Equal(t, avl.Entry[int, string]{Key: 0, Value: "a"}, entries[0])
	assert.Equal(t, avl.Entry[int, string]{Key: 4, Value: "e"}, entries[4])

	reversed := drain[avl.Entry[int, string]](tree.ReverseEntries())
	require.Len(t, reversed, 5)
	assert.Equal(t, 4, reversed[0].Key)

	assert.Equal(t, tree.KeySlice(), drain[int](tree.Keys()))
	assert.Equal(t, tree.ValueSlice(), drain[string](tree.Values()))
	assert.Equal(t, tree.EntrySlice(), entries)
}

func TestCursorExhausted(t *testing.T) {
	tree := makeTree(1)
	c := tree.Keys()

	assert.Equal(t, avl.Forward, c.Direction())
	assert.Equal(t, avl.Backward, tree.ReverseKeys().Direction())
	assert.Equal(t, 1, c.Count())

	k, ok := c.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, k)
	assert.False(t, c.HasNext())

	_, ok = c.Next()
	assert.False(t, ok, "exhausted cursor returned an item")
}

func TestKeyedCursors(t *testing.T) {
	tree := makeTree(1, 2, 3, 4, 5)

	c, ok := tree.KeysFrom(3)
	require.True(t, ok)
	assert.Equal(t, []int{3, 4, 5}, drain[int](c))

	rc, ok := tree.ReverseKeysFrom(3)
	require.True(t, ok)
	assert.Equal(t, []int{3, 2, 1}, drain[int](rc))

	vc, ok := tree.ValuesFrom(4)
	require.True(t, ok)
	assert.Equal(t, []string{"e", "f"}, drain[string](vc))

	rvc, ok := tree.ReverseValuesFrom(2)
	require.True(t, ok)
	assert.Equal(t, []string{"c", "b"}, drain[string](rvc))

	ec, ok := tree.EntriesFrom(5)
	require.True(t, ok)
	assert.Equal(t, []avl.Entry[int, string]{{Key: 5, Value: "f"}}, drain[avl.Entry[int, string]](ec))

	rec, ok := tree.ReverseEntriesFrom(1)
	require.True(t, ok)
	assert.Equal(t, []avl.Entry[int, string]{{Key: 1, Value: "b"}}, drain[avl.Entry[int, string]](rec))

	// absent start key
	_, ok = tree.KeysFrom(6)
	assert.False(t, ok)
	_, ok = tree.ReverseKeysFrom(0)
	assert.False(t, ok)
	_, ok = tree.EntriesFrom(-1)
	assert.False(t, ok)

	_, ok = makeTree().ValuesFrom(1)
	assert.False(t, ok, "keyed cursor on empty tree")
}

func TestCursorRemove(t *testing.T) {
	tree := makeTree(1, 2, 3, 4, 5)
	c := tree.Keys()

	c.Next()
	k, _ := c.Next()
	require.Equal(t, 2, k)

	require.NoError(t, c.Remove())
	assert.False(t, tree.Contains(2))
	assert.Equal(t, 4, tree.Count())
	assert.Equal(t, 4, c.Count())
	assert.NoError(t, tree.Check())

	assert.Equal(t, []int{3, 4, 5}, drain[int](c))
	assert.Equal(t, []int{1, 3, 4, 5}, tree.KeySlice())
}

func TestCursorRemoveErrors(t *testing.T) {
	tree := makeTree(1, 2)
	c := tree.Keys()

	err := c.Remove()
	assert.Equal(t, fault.ErrNoCurrentItem, err, "remove before next")
	assert.True(t, fault.IsErrInvalid(err))

	c.Next()
	assert.NoError(t, c.Remove())
	assert.Equal(t, fault.ErrNoCurrentItem, c.Remove(), "second remove")

	c.Next()
	assert.NoError(t, c.Remove(), "remove after advancing again")
	assert.True(t, tree.IsEmpty())
}

func TestReverseCursorRemove(t *testing.T) {
	tree := makeTree(1, 2, 3, 4, 5)
	c := tree.ReverseKeys()
	for c.HasNext() {
		k, _ := c.Next()
		if 0 == k%2 {
			require.NoError(t, c.Remove())
		}
	}
	assert.Equal(t, []int{1, 3, 5}, tree.KeySlice())
	assert.NoError(t, tree.Check())
}

// removing the root, which has two children, moves a neighbour into
// its place and the cursor must still continue in order
func TestCursorRemoveTwoChildNodes(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, direction := range []avl.Direction{avl.Forward, avl.Backward} {
		tree := avl.New[int, int]()
		for _, k := range r.Perm(1000) {
			tree.Insert(k, k)
		}

		var c *avl.Cursor[int, int, int]
		if avl.Forward == direction {
			c = tree.Keys()
		} else {
			c = tree.ReverseKeys()
		}

		seen := 0
		kept := []int{}
		for c.HasNext() {
			k, ok := c.Next()
			require.True(t, ok)
			seen += 1
			if 0 == r.Intn(2) {
				require.NoError(t, c.Remove())
			} else {
				kept = append(kept, k)
			}
		}
		assert.Equal(t, 1000, seen, "direction: %d", direction)
		assert.Equal(t, len(kept), tree.Count())
		require.NoError(t, tree.Check())

		if avl.Backward == direction {
			for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
				kept[i], kept[j] = kept[j], kept[i]
			}
		}
		assert.Equal(t, kept, tree.KeySlice())
	}
}

func TestForEach(t *testing.T) {
	tree := makeTree(5, 3, 8, 1)

	forward := []int{}
	tree.ForEach(avl.Forward, func(p *avl.Node[int, string]) bool {
		forward = append(forward, p.Key())
		return true
	})
	assert.Equal(t, []int{1, 3, 5, 8}, forward)

	backward := []int{}
	tree.ForEach(avl.Backward, func(p *avl.Node[int, string]) bool {
		backward = append(backward, p.Key())
		return 3 != len(backward)
	})
	assert.Equal(t, []int{8, 5, 3}, backward)
}
