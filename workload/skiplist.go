// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"bytes"
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"

	"github.com/bitmark-inc/avltree/fault"
)

const skipListCapacity = 4096

// SkipListStore - Store backed by the leveldb in-memory skip list,
// used as an independent ordered structure to compare against
type SkipListStore struct {
	db *memdb.DB
}

// NewSkipListStore - create an empty skip list store
func NewSkipListStore() *SkipListStore {
	return &SkipListStore{
		db: memdb.New(comparer.DefaultComparer, skipListCapacity),
	}
}

// keys are stored big endian with the sign bit flipped so that byte
// order matches integer order
func encodeKey(key int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(key)^(1<<63))
	return b
}

func decodeKey(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b) ^ (1 << 63))
}

func (s *SkipListStore) Insert(key int64, value string) bool {
	k := encodeKey(key)
	added := !s.db.Contains(k)
	if err := s.db.Put(k, []byte(value)); nil != err {
		fault.Panic("skip list put: " + err.Error())
	}
	return added
}

func (s *SkipListStore) Delete(key int64) (string, bool) {
	k := encodeKey(key)
	value, err := s.db.Get(k)
	if nil != err {
		return "", false
	}
	v := string(value) // copy before the node is released
	if err := s.db.Delete(k); nil != err {
		fault.Panic("skip list delete: " + err.Error())
	}
	return v, true
}

func (s *SkipListStore) Get(key int64) (string, bool) {
	value, err := s.db.Get(encodeKey(key))
	if nil != err {
		return "", false
	}
	return string(value), true
}

func (s *SkipListStore) Floor(key int64) (int64, bool) {
	k := encodeKey(key)
	iter := s.db.NewIterator(nil)
	defer iter.Release()

	if iter.Seek(k) {
		if bytes.Equal(iter.Key(), k) {
			return key, true
		}
		if iter.Prev() {
			return decodeKey(iter.Key()), true
		}
		return 0, false
	}
	if iter.Last() {
		return decodeKey(iter.Key()), true
	}
	return 0, false
}

func (s *SkipListStore) Ceiling(key int64) (int64, bool) {
	iter := s.db.NewIterator(nil)
	defer iter.Release()

	if iter.Seek(encodeKey(key)) {
		return decodeKey(iter.Key()), true
	}
	return 0, false
}

func (s *SkipListStore) Count() int {
	return s.db.Len()
}

// Check - keys strictly ascending and the length agrees with a scan
func (s *SkipListStore) Check() error {
	iter := s.db.NewIterator(nil)
	defer iter.Release()

	n := 0
	var previous []byte
	for iter.Next() {
		if nil != previous && bytes.Compare(previous, iter.Key()) >= 0 {
			return fault.ErrTreeOrder
		}
		previous = append(previous[:0], iter.Key()...)
		n += 1
	}
	if n != s.db.Len() {
		return fault.ErrTreeCount
	}
	return iter.Error()
}
