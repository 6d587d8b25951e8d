// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.  Insert and delete
// are iterative here, walking back up the parent pointers to update
// the balance factors, so neither depends on recursion depth.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.  Also delete does not
// copy data around so that nodes keep their identity, which is what
// allows a cursor to delete the node it has just returned and carry
// on from the next one.
//
// Each node also records the number of nodes in its left and right
// sub-trees so that an item can be fetched by its in-order index.
package avl
