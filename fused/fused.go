// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fused

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Iterator - a removable forward sequence, *avl.Cursor satisfies this
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, bool)
	Remove() error
}

// Fused - concatenation of several iterators
type Fused[T any] struct {
	sources []Iterator[T]
	index   int
}

// New - create a fused iterator over one or more sources
func New[T any](sources ...Iterator[T]) (*Fused[T], error) {
	if 0 == len(sources) {
		return nil, fault.ErrNoIterators
	}
	for _, s := range sources {
		if nil == s {
			return nil, fault.ErrNoIterators
		}
	}
	return &Fused[T]{
		sources: sources,
		index:   0,
	}, nil
}

// HasNext - true if any remaining source has items left
//
// exhausted sources are skipped permanently
func (f *Fused[T]) HasNext() bool {
	for f.index < len(f.sources) {
		if f.sources[f.index].HasNext() {
			return true
		}
		f.index += 1
	}
	return false
}

// Next - return the next item from the first source that has one
func (f *Fused[T]) Next() (T, bool) {
	for f.index < len(f.sources) {
		if item, ok := f.sources[f.index].Next(); ok {
			return item, true
		}
		f.index += 1
	}
	var zero T
	return zero, false
}

// Remove - delete the last returned item through its source
func (f *Fused[T]) Remove() error {
	if f.index >= len(f.sources) {
		return fault.ErrIteratorExhausted
	}
	return f.sources[f.index].Remove()
}
