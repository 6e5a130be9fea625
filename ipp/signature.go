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

// Signature is the operand shape an opcode requires: one kind set per slot,
// arity equals the number of slots.
type Signature []Kind

// Signature groups, one per operand shape in the language.
var (
	sigNone          = Signature{}
	sigLabel         = Signature{Label}
	sigVar           = Signature{Var}
	sigSymb          = Signature{Symb}
	sigVarSymb       = Signature{Var, Symb}
	sigVarType       = Signature{Var, Type}
	sigVarSymbSymb   = Signature{Var, Symb, Symb}
	sigLabelSymbSymb = Signature{Label, Symb, Symb}
)

// IPPcode23 opcodes, grouped by signature. Stack extension opcodes sit in
// the same table, they only differ by working on the data stack instead of
// named operands.
var opcodes = [...]struct {
	sig   Signature
	names []string
}{
	{sigNone, []string{
		"CREATEFRAME", "PUSHFRAME", "POPFRAME", "RETURN", "BREAK",
		"CLEARS", "ADDS", "SUBS", "MULS", "IDIVS", "LTS", "GTS", "EQS",
		"ANDS", "ORS", "NOTS", "INT2CHARS", "STRI2INTS",
	}},
	{sigLabel, []string{"CALL", "LABEL", "JUMP", "JUMPIFEQS", "JUMPIFNEQS"}},
	{sigVar, []string{"DEFVAR", "POPS"}},
	{sigSymb, []string{"PUSHS", "EXIT", "DPRINT", "WRITE"}},
	{sigVarSymb, []string{"MOVE", "INT2CHAR", "STRLEN", "TYPE", "NOT"}},
	{sigVarType, []string{"READ"}},
	{sigVarSymbSymb, []string{
		"ADD", "SUB", "MUL", "IDIV", "LT", "GT", "EQ", "AND", "OR",
		"STRI2INT", "CONCAT", "GETCHAR", "SETCHAR",
	}},
	{sigLabelSymbSymb, []string{"JUMPIFEQ", "JUMPIFNEQ"}},
}

var signatureIndex = make(map[string]Signature)

func init() {
	for _, g := range opcodes {
		for _, n := range g.names {
			signatureIndex[n] = g.sig
		}
	}
}

// LookupSignature returns the signature of the given opcode. The opcode
// must already be in its canonical upper-case form.
func LookupSignature(op string) (Signature, bool) {
	sig, ok := signatureIndex[op]
	return sig, ok
}
