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

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrConfigurationNoTable = InvalidError("configuration must return a table")
	ErrDuplicateValue       = ExistsError("value is already in the tree")
	ErrInvalidCommand       = InvalidError("invalid command")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidValue         = InvalidError("value has no ordering")
	ErrMissingConfigFile    = NotFoundError("configuration file is missing")
	ErrMissingValue         = InvalidError("command requires a value")
	ErrNotADirectory        = InvalidError("not a directory")
	ErrValueNotFound        = NotFoundError("value is not in the tree")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// Class - short name for the class of an error, for reporting
func Class(e error) string {
	switch {
	case nil == e:
		return "ok"
	case IsErrExists(e):
		return "exists"
	case IsErrInvalid(e):
		return "invalid"
	case IsErrNotFound(e):
		return "not found"
	default:
		return "error"
	}
}
