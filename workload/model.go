// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"golang.org/x/exp/slices"
)

// expected store contents: a map for lookups and a sorted key list
// for floor and ceiling
type model struct {
	values map[int64]string
	keys   []int64
}

func newModel() *model {
	return &model{
		values: make(map[int64]string),
		keys:   []int64{},
	}
}

func (m *model) insert(key int64, value string) bool {
	_, exists := m.values[key]
	m.values[key] = value
	if exists {
		return false
	}
	i, _ := slices.BinarySearch(m.keys, key)
	m.keys = slices.Insert(m.keys, i, key)
	return true
}

func (m *model) delete(key int64) (string, bool) {
	value, ok := m.values[key]
	if !ok {
		return "", false
	}
	delete(m.values, key)
	i, _ := slices.BinarySearch(m.keys, key)
	m.keys = slices.Delete(m.keys, i, i+1)
	return value, true
}

func (m *model) get(key int64) (string, bool) {
	value, ok := m.values[key]
	return value, ok
}

// greatest key <= key
func (m *model) floor(key int64) (int64, bool) {
	i, found := slices.BinarySearch(m.keys, key)
	if found {
		return key, true
	}
	if 0 == i {
		return 0, false
	}
	return m.keys[i-1], true
}

// least key >= key
func (m *model) ceiling(key int64) (int64, bool) {
	i, _ := slices.BinarySearch(m.keys, key)
	if i >= len(m.keys) {
		return 0, false
	}
	return m.keys[i], true
}

func (m *model) count() int {
	return len(m.keys)
}
