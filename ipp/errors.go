// This file is part of vut-ipp - https://github.com/jkalend/VUT-IPP
//
// Copyright 2023 jkalend
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ipp

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code identifies a class of fatal translation failure. Every failure kind
// has its own stable code, used verbatim as the process exit status.
type Code int

// Failure classes. The 1x codes cover configuration and file handling, the
// 2x codes cover the source program itself.
const (
	BadConfig     Code = 10 // malformed command line or configuration file
	CantOpen      Code = 11 // unreadable source input
	CantWrite     Code = 12 // unwritable document or statistics output
	DuplicateSink Code = 13 // two statistics sinks share one file

	MissingHeader       Code = 21 // end of input before the header line
	UnknownOpcode       Code = 22
	InvalidOperand      Code = 23
	InvalidHeader       Code = 24
	DuplicateHeader     Code = 25
	ArityMismatch       Code = 26
	OperandTypeMismatch Code = 27
	UnmatchedReturn     Code = 28 // RETURN with no outstanding CALL

	Internal Code = 99
)

// Error is the error type behind every failure the translator reports. It
// is deliberately terminal: wrapping with errors.Wrap adds context on top
// while CodeOf still finds the Code at the cause.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Errorf returns a new error with the given code, a formatted message and a
// stack trace.
func Errorf(code Code, format string, args ...interface{}) error {
	return errors.WithStack(&Error{code, fmt.Sprintf(format, args...)})
}

// Wrap attaches a code to an error that originated outside the translator,
// typically an os error on a file. Returns nil if err is nil.
func Wrap(err error, code Code) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(&Error{code, err.Error()})
}

// CodeOf returns the code carried by err, looking through any context added
// with errors.Wrap. Errors that did not originate here report Internal.
func CodeOf(err error) Code {
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Code
	}
	return Internal
}
