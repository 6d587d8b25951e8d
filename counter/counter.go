// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - atomic operation tallies for workload reports
package counter

import (
	"sync/atomic"
)

// Counter - number of operations of one kind
//
// safe to update from several goroutines, the zero value is ready
// for use
type Counter uint64

// Increment - count one more operation, returns new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Add - count a batch of operations, returns new value
func (c *Counter) Add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(c), n)
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// Reset - set back to zero, returns the previous value
func (c *Counter) Reset() uint64 {
	return atomic.SwapUint64((*uint64)(c), 0)
}

// IsZero - check if no operations were counted
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
