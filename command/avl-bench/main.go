// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/workload"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// Report - output of a run
type Report struct {
	Version  string                 `json:"version"`
	Workload workload.Configuration `json:"workload"`
	Result   *workload.Result       `json:"result,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]", program)
	}

	// commands that do not need a configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: panic logger setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	if verbose {
		if err := writeJson(os.Stdout, "configuration", masterConfiguration); nil != err {
			exitwithstatus.Message("%s: print configuration error: %s", program, err)
		}
	}

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != masterConfiguration.PidFile {
		lockFile, err := os.OpenFile(masterConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, masterConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(masterConfiguration.PidFile)
	}

	store, err := workload.NewStore(masterConfiguration.Workload.Store)
	if nil != err {
		exitwithstatus.Message("%s: store: %q  error: %s", program, masterConfiguration.Workload.Store, err)
	}
	log.Infof("store: %s", masterConfiguration.Workload.Store)

	result, runErr := workload.Run(store, masterConfiguration.Workload, logger.New("workload"))

	report := Report{
		Version:  version,
		Workload: masterConfiguration.Workload,
		Result:   result,
	}
	if nil != runErr {
		report.Error = runErr.Error()
		log.Criticalf("workload failed: %s", runErr)
	}

	if !quiet {
		if err := writeJson(os.Stdout, "report", report); nil != err {
			log.Errorf("print report error: %s", err)
		}
	}

	if "" != masterConfiguration.Report {
		if err := writeJsonFile(masterConfiguration.Report, report); nil != err {
			log.Errorf("report: %q  write error: %s", masterConfiguration.Report, err)
			exitwithstatus.Message("%s: report: %q  write error: %s", program, masterConfiguration.Report, err)
		}
		log.Infof("report written to: %q", masterConfiguration.Report)
	}

	if nil != runErr {
		exitwithstatus.Message("%s: workload failed: %s", program, runErr)
	}
}
