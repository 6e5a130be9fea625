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

package parse

import (
	"io"

	"github.com/jkalend/VUT-IPP/ipp"
)

// Emitter consumes validated instructions in program order. Emit errors are
// fatal to the whole pass and are returned from Parse as-is, with the
// source position wrapped around them.
type Emitter interface {
	Emit(ins ipp.Instruction) error
}

// commenter is implemented by emitters that want to know about comments.
type commenter interface {
	Comment()
}

// Parse reads IPPcode23 source from r and drives every validated
// instruction through the given emitters, one instruction at a time.
//
// The name parameter is used only in error messages to name the source of
// the error. If the io.Reader is a file, name should be the file name.
func Parse(name string, r io.Reader, out ...Emitter) error {
	p := &parser{name: name, out: out}
	return p.parse(r)
}
