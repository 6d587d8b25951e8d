// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - drive an ordered store with a seeded random
// mix of inserts, deletes and probes
//
// every answer from the store is compared against a simple
// reference model so that a run doubles as a long randomised
// consistency test.  The same seed always produces the same
// sequence of operations.
package workload
