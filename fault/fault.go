// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrCountMismatch         = ProcessError("count mismatch")
	ErrDeleteMismatch        = ProcessError("delete mismatch")
	ErrGetMismatch           = ProcessError("get mismatch")
	ErrInsertMismatch        = ProcessError("insert mismatch")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidKeySpace       = InvalidError("invalid key space")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStore          = InvalidError("invalid store")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrIteratorExhausted     = NotFoundError("iterator exhausted")
	ErrNoCurrentItem         = InvalidError("no current item")
	ErrNoIterators           = InvalidError("no iterators")
	ErrProbeMismatch         = ProcessError("probe mismatch")
	ErrTreeBalance           = ProcessError("tree balance inconsistent")
	ErrTreeCount             = ProcessError("tree count inconsistent")
	ErrTreeOrder             = ProcessError("tree order inconsistent")
	ErrTreeParent            = ProcessError("tree parent inconsistent")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
