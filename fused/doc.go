// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fused - chain several iterators into a single sequence
//
// the sources are consumed in the order they were given, each one
// to exhaustion before the next is started.  Remove is forwarded to
// the source that produced the last item, so a fused sequence of
// tree cursors can delete entries from several trees in one pass.
package fused
