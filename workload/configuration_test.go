// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/workload"
)

func TestValidate(t *testing.T) {
	config := workload.DefaultConfiguration()
	assert.NoError(t, config.Validate(), "defaults")
	assert.Equal(t, workload.DefaultInserts+workload.DefaultDeletes+workload.DefaultProbes, config.Operations())

	tests := []struct {
		modify func(*workload.Configuration)
		err    error
	}{
		{func(c *workload.Configuration) { c.KeySpace = 0 }, fault.ErrInvalidKeySpace},
		{func(c *workload.Configuration) { c.KeySpace = -5 }, fault.ErrInvalidKeySpace},
		{func(c *workload.Configuration) { c.Inserts = -1 }, fault.ErrInvalidCount},
		{func(c *workload.Configuration) { c.Deletes = -1 }, fault.ErrInvalidCount},
		{func(c *workload.Configuration) { c.Probes = -1 }, fault.ErrInvalidCount},
		{func(c *workload.Configuration) { c.CheckEvery = -1 }, fault.ErrInvalidCount},
		{func(c *workload.Configuration) { c.Inserts, c.Deletes, c.Probes = 0, 0, 0 }, nil},
	}

	for i, item := range tests {
		c := workload.DefaultConfiguration()
		item.modify(&c)
		err := c.Validate()
		assert.Equal(t, item.err, err, "%d: validate", i)
		if nil != err {
			assert.True(t, fault.IsErrInvalid(err), "%d: error class", i)
		}
	}
}

func TestStoreSelection(t *testing.T) {
	for _, name := range []string{workload.TreeStoreName, workload.SkipListStoreName} {
		config := workload.DefaultConfiguration()
		config.Store = name
		assert.NoError(t, config.Validate(), "store: %q", name)

		s, err := workload.NewStore(name)
		assert.NoError(t, err)
		assert.NotNil(t, s)
	}

	config := workload.DefaultConfiguration()
	config.Store = "btree"
	assert.Equal(t, fault.ErrInvalidStore, config.Validate())

	s, err := workload.NewStore("")
	assert.Nil(t, s)
	assert.Equal(t, fault.ErrInvalidStore, err)
}
