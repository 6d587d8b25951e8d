// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/workload"
)

func TestTreeStore(t *testing.T) {
	var s workload.Store = workload.NewTreeStore()

	assert.True(t, s.Insert(10, "ten"))
	assert.True(t, s.Insert(20, "twenty"))
	assert.False(t, s.Insert(10, "TEN"))
	assert.Equal(t, 2, s.Count())

	v, ok := s.Get(10)
	assert.True(t, ok)
	assert.Equal(t, "TEN", v)

	k, ok := s.Floor(15)
	assert.True(t, ok)
	assert.Equal(t, int64(10), k)

	k, ok = s.Ceiling(15)
	assert.True(t, ok)
	assert.Equal(t, int64(20), k)

	_, ok = s.Floor(5)
	assert.False(t, ok)
	_, ok = s.Ceiling(25)
	assert.False(t, ok)

	v, ok = s.Delete(20)
	assert.True(t, ok)
	assert.Equal(t, "twenty", v)
	assert.NoError(t, s.Check())

	shape, ok := s.(workload.Shape)
	assert.True(t, ok, "tree store has no shape")
	assert.Equal(t, 1, shape.Height())
	assert.Equal(t, 1, shape.NearestLeaf())
}
