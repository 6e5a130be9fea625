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
	"regexp"
	"strings"
)

// Kind is the lexical class of an operand. Kinds are bit flags so that a
// signature slot can accept a union of kinds with a single mask.
type Kind uint8

// Operand kinds.
const (
	Var Kind = 1 << iota
	Int
	Bool
	String
	Nil
	Label
	Type

	// Symb is the kind set accepted wherever an instruction reads a value:
	// a variable or any constant literal.
	Symb = Var | Int | Bool | String | Nil
)

var kindNames = map[Kind]string{
	Var:    "var",
	Int:    "int",
	Bool:   "bool",
	String: "string",
	Nil:    "nil",
	Label:  "label",
	Type:   "type",
}

// String returns the canonical lower-case name of k, the same name the type
// attribute of the XML document uses. Unions of kinds have no name.
func (k Kind) String() string { return kindNames[k] }

// Frame is the variable namespace a Var operand lives in.
type Frame uint8

// Variable frames.
const (
	NoFrame Frame = iota
	Global
	Local
	Temporary
)

var frames = map[string]Frame{"GF": Global, "LF": Local, "TF": Temporary}

// Operand is one validated instruction operand. Operands are only ever
// built by ParseOperand, so an Operand whose Text does not match the
// grammar of its Kind cannot exist.
//
// Text keeps the original case of the source token. For constants it is
// the part after the @ separator, for variables the whole frame@name
// token, for labels and type names the bare token.
type Operand struct {
	Kind  Kind
	Frame Frame // set for Var operands only
	Text  string
}

// Operand literal grammars. Integer literals are decimal, hexadecimal or
// octal runs with optional single internal underscores. Escapes in string
// literals are a backslash followed by exactly three decimal digits.
var (
	intRx    = regexp.MustCompile(`^[+-]?(0[xX][0-9a-fA-F](_?[0-9a-fA-F])*|0[oO]?[0-7](_?[0-7])*|[0-9](_?[0-9])*)$`)
	stringRx = regexp.MustCompile(`^([^#\\]|\\[0-9]{3})*$`)
	identRx  = regexp.MustCompile(`^[a-zA-Z_\-$&%*!?][a-zA-Z0-9_\-$&%*!?]*$`)
)

// ParseOperand classifies the raw token s and returns the corresponding
// Operand. A token whose head before the first @ is a recognized type or
// frame name commits to that grammar: a malformed tail is InvalidOperand,
// never a label. Tokens without a separator are type names or labels.
func ParseOperand(s string) (Operand, error) {
	if head, lit, ok := strings.Cut(s, "@"); ok {
		switch head {
		case "int":
			if !intRx.MatchString(lit) {
				return Operand{}, Errorf(InvalidOperand, "bad int literal %q", s)
			}
			return Operand{Kind: Int, Text: lit}, nil
		case "bool":
			if lit != "true" && lit != "false" {
				return Operand{}, Errorf(InvalidOperand, "bad bool literal %q", s)
			}
			return Operand{Kind: Bool, Text: lit}, nil
		case "string":
			if !stringRx.MatchString(lit) {
				return Operand{}, Errorf(InvalidOperand, "bad string literal %q", s)
			}
			return Operand{Kind: String, Text: lit}, nil
		case "nil":
			if lit != "nil" {
				return Operand{}, Errorf(InvalidOperand, "bad nil literal %q", s)
			}
			return Operand{Kind: Nil, Text: lit}, nil
		case "GF", "LF", "TF":
			if !identRx.MatchString(lit) {
				return Operand{}, Errorf(InvalidOperand, "bad variable name %q", s)
			}
			return Operand{Kind: Var, Frame: frames[head], Text: s}, nil
		}
		return Operand{}, Errorf(InvalidOperand, "unknown operand %q", s)
	}
	switch s {
	case "int", "bool", "string":
		return Operand{Kind: Type, Text: s}, nil
	}
	if identRx.MatchString(s) {
		return Operand{Kind: Label, Text: s}, nil
	}
	return Operand{}, Errorf(InvalidOperand, "unknown operand %q", s)
}
