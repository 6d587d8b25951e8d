// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-bench - exercise the AVL tree with a randomised workload
//
// the workload shape is read from a Lua configuration file, every
// operation is verified against a reference model and a JSON report
// of the run is printed and optionally written to a file.
//
//	avl-bench --config-file=avl-bench.conf
//	avl-bench sample > avl-bench.conf
package main
