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

package xmlout_test

import (
	"strings"
	"testing"

	"github.com/jkalend/VUT-IPP/ipp"
	"github.com/jkalend/VUT-IPP/xmlout"
)

func mustOperand(t *testing.T, tok string) ipp.Operand {
	t.Helper()
	arg, err := ipp.ParseOperand(tok)
	if err != nil {
		t.Fatal(err)
	}
	return arg
}

func render(t *testing.T, ins ...ipp.Instruction) string {
	t.Helper()
	b := xmlout.NewBuilder()
	for _, i := range ins {
		if err := b.Emit(i); err != nil {
			t.Fatal(err)
		}
	}
	var sb strings.Builder
	if _, err := b.WriteTo(&sb); err != nil {
		t.Fatal(err)
	}
	return sb.String()
}

func TestBuilder(t *testing.T) {
	out := render(t,
		ipp.Instruction{Order: 1, Opcode: "DEFVAR", Args: []ipp.Operand{mustOperand(t, "GF@x")}},
		ipp.Instruction{Order: 2, Opcode: "READ", Args: []ipp.Operand{mustOperand(t, "GF@x"), mustOperand(t, "int")}},
	)
	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<program language="IPPcode23">`,
		`<instruction order="1" opcode="DEFVAR">`,
		`<arg1 type="var">GF@x</arg1>`,
		`<instruction order="2" opcode="READ">`,
		`<arg2 type="type">int</arg2>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %s\n%s", want, out)
		}
	}
}

// markup characters in operand text must come out as entities, escape
// sequences must not be decoded.
func TestBuilder_escaping(t *testing.T) {
	out := render(t,
		ipp.Instruction{Order: 1, Opcode: "WRITE", Args: []ipp.Operand{mustOperand(t, `string@a&b<c>d\032e`)}},
	)
	if want := `a&amp;b&lt;c&gt;d\032e`; !strings.Contains(out, want) {
		t.Errorf("output does not contain %s\n%s", want, out)
	}
}

func TestBuilder_nullary(t *testing.T) {
	out := render(t, ipp.Instruction{Order: 1, Opcode: "CREATEFRAME"})
	if want := `<instruction order="1" opcode="CREATEFRAME"/>`; !strings.Contains(out, want) {
		t.Errorf("output does not contain %s\n%s", want, out)
	}
}
