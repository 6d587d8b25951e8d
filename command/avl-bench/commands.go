// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
)

// a complete configuration file showing every setting
const sampleConfiguration = `-- avl-bench.conf  -*- mode: lua -*-

local M = {}

-- "." is the directory containing this file
M.data_directory = "."

-- optional pid file
-- M.pidfile = "avl-bench.pid"

-- optional JSON report, a plain file name in the data directory
M.report = "report.json"

-- keys are drawn from [0, key_space)
-- check_every = 0 only verifies the tree at the end of the run
-- store is "tree" or "skiplist" (leveldb memdb, for comparison)
M.workload = {
    store = "tree",
    seed = 1,
    inserts = 100000,
    deletes = 50000,
    probes = 100000,
    key_space = 200000,
    check_every = 10000,
}

M.logging = {
    directory = "log",
    file = "avl-bench.log",
    size = 1048576,
    count = 10,
    console = false,
    levels = {
        DEFAULT = "info",
        workload = "info",
    },
}

return M
`

// setup command handler
//
// commands that do not need the configuration file, returns true if
// the program should stop
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "sample", "s":
		fmt.Print(sampleConfiguration)

	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")
		fmt.Printf("  sample                     (s)      - print a sample configuration file\n\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}
	return true
}
