// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"github.com/bitmark-inc/avltree/fault"
)

// defaults for an unconfigured run
const (
	DefaultSeed       = 1
	DefaultInserts    = 100000
	DefaultDeletes    = 50000
	DefaultProbes     = 100000
	DefaultKeySpace   = 200000
	DefaultCheckEvery = 10000
	DefaultStore      = TreeStoreName
)

// Configuration - shape of a run
//
// keys are drawn uniformly from [0, KeySpace), a CheckEvery of zero
// only checks the store once at the end
type Configuration struct {
	Store      string `gluamapper:"store" json:"store"`
	Seed       int64  `gluamapper:"seed" json:"seed"`
	Inserts    int    `gluamapper:"inserts" json:"inserts"`
	Deletes    int    `gluamapper:"deletes" json:"deletes"`
	Probes     int    `gluamapper:"probes" json:"probes"`
	KeySpace   int64  `gluamapper:"key_space" json:"key_space"`
	CheckEvery int    `gluamapper:"check_every" json:"check_every"`
}

// DefaultConfiguration - values used when a configuration file
// omits them
func DefaultConfiguration() Configuration {
	return Configuration{
		Store:      DefaultStore,
		Seed:       DefaultSeed,
		Inserts:    DefaultInserts,
		Deletes:    DefaultDeletes,
		Probes:     DefaultProbes,
		KeySpace:   DefaultKeySpace,
		CheckEvery: DefaultCheckEvery,
	}
}

// Validate - reject impossible settings
func (c Configuration) Validate() error {
	if _, ok := storeConstructors[c.Store]; !ok {
		return fault.ErrInvalidStore
	}
	if c.KeySpace <= 0 {
		return fault.ErrInvalidKeySpace
	}
	if c.Inserts < 0 || c.Deletes < 0 || c.Probes < 0 || c.CheckEvery < 0 {
		return fault.ErrInvalidCount
	}
	return nil
}

// Operations - total number of operations in a run
func (c Configuration) Operations() int {
	return c.Inserts + c.Deletes + c.Probes
}
