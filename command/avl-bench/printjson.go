// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// write an indented JSON block with an optional title line
func writeJson(w io.Writer, title string, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	if "" != title {
		if _, err := fmt.Fprintf(w, "%s:\n", title); nil != err {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// output a JSON block to a new file
func writeJsonFile(filename string, message interface{}) error {
	file, err := os.Create(filename)
	if nil != err {
		return err
	}
	err = writeJson(file, "", message)
	if e := file.Close(); nil == err {
		err = e
	}
	return err
}
