// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// Result - tallies from a completed run
type Result struct {
	Inserts     counter.Counter `json:"inserts"`
	Overwrites  counter.Counter `json:"overwrites"`
	Deletes     counter.Counter `json:"deletes"`
	Misses      counter.Counter `json:"misses"`
	Probes      counter.Counter `json:"probes"`
	Checks      counter.Counter `json:"checks"`
	Count       int             `json:"count"`
	Height      int             `json:"height,omitempty"`
	NearestLeaf int             `json:"nearest_leaf,omitempty"`
	Elapsed     string          `json:"elapsed"`
}

type operation int

const (
	opInsert operation = iota
	opDelete
	opProbe
)

// Run - apply the configured operations to a store
//
// stops at the first answer that differs from the reference model
// and returns the partial result together with the error
func Run(store Store, config Configuration, log *logger.L) (*Result, error) {
	if err := config.Validate(); nil != err {
		return nil, err
	}

	log.Infof("start: seed: %d  inserts: %d  deletes: %d  probes: %d  key space: %d",
		config.Seed, config.Inserts, config.Deletes, config.Probes, config.KeySpace)

	r := rand.New(rand.NewSource(config.Seed))
	m := newModel()
	result := &Result{}
	start := time.Now()

	remaining := [...]int{
		opInsert: config.Inserts,
		opDelete: config.Deletes,
		opProbe:  config.Probes,
	}
	total := config.Operations()

	for i := 0; i < total; i += 1 {

		// choose with weights proportional to the outstanding
		// operations so that every kind runs to its configured count
		op := opInsert
		n := r.Intn(total - i)
		for o, left := range remaining {
			if n < left {
				op = operation(o)
				break
			}
			n -= left
		}
		remaining[op] -= 1

		key := r.Int63n(config.KeySpace)

		var err error
		switch op {
		case opInsert:
			err = insert(store, m, key, fmt.Sprintf("value:%d:%d", key, i), result)
		case opDelete:
			err = remove(store, m, key, result)
		case opProbe:
			err = probe(store, m, key, result)
		}
		if nil != err {
			log.Errorf("operation: %d  key: %d  error: %s", i, key, err)
			return finish(store, result, start), err
		}

		if config.CheckEvery > 0 && 0 == (i+1)%config.CheckEvery {
			if err := check(store, m, result); nil != err {
				log.Errorf("check after operation: %d  error: %s", i, err)
				return finish(store, result, start), err
			}
			log.Debugf("checked after operation: %d  count: %d", i, m.count())
		}
	}

	if err := check(store, m, result); nil != err {
		log.Errorf("final check error: %s", err)
		return finish(store, result, start), err
	}

	finish(store, result, start)
	log.Infof("finished: count: %d  elapsed: %s", result.Count, result.Elapsed)
	return result, nil
}

func insert(store Store, m *model, key int64, value string, result *Result) error {
	expected := m.insert(key, value)
	if added := store.Insert(key, value); added != expected {
		return fault.ErrInsertMismatch
	}
	if expected {
		result.Inserts.Increment()
	} else {
		result.Overwrites.Increment()
	}
	return nil
}

func remove(store Store, m *model, key int64, result *Result) error {
	expected, expectedOk := m.delete(key)
	value, ok := store.Delete(key)
	if ok != expectedOk || value != expected {
		return fault.ErrDeleteMismatch
	}
	if ok {
		result.Deletes.Increment()
	} else {
		result.Misses.Increment()
	}
	return nil
}

func probe(store Store, m *model, key int64, result *Result) error {
	expected, expectedOk := m.get(key)
	value, ok := store.Get(key)
	if ok != expectedOk || value != expected {
		return fault.ErrGetMismatch
	}

	expectedKey, expectedOk := m.floor(key)
	k, ok := store.Floor(key)
	if ok != expectedOk || k != expectedKey {
		return fault.ErrProbeMismatch
	}

	expectedKey, expectedOk = m.ceiling(key)
	k, ok = store.Ceiling(key)
	if ok != expectedOk || k != expectedKey {
		return fault.ErrProbeMismatch
	}

	result.Probes.Increment()
	return nil
}

func check(store Store, m *model, result *Result) error {
	if store.Count() != m.count() {
		return fault.ErrCountMismatch
	}
	result.Checks.Increment()
	return store.Check()
}

func finish(store Store, result *Result, start time.Time) *Result {
	result.Count = store.Count()
	if s, ok := store.(Shape); ok {
		result.Height = s.Height()
		result.NearestLeaf = s.NearestLeaf()
	}
	result.Elapsed = time.Since(start).String()
	return result
}
