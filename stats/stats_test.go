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

package stats_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/jkalend/VUT-IPP/ipp"
	"github.com/jkalend/VUT-IPP/stats"
)

// ins builds a validated instruction the way the parser would.
func ins(order int, opcode string, args ...string) ipp.Instruction {
	i := ipp.Instruction{Order: order, Opcode: opcode}
	for _, tok := range args {
		arg, err := ipp.ParseOperand(tok)
		if err != nil {
			panic(err)
		}
		i.Args = append(i.Args, arg)
	}
	return i
}

// feed runs a program through a fresh Collector and finalizes it.
func feed(t *testing.T, program ...ipp.Instruction) *stats.Collector {
	t.Helper()
	c := stats.NewCollector()
	for _, i := range program {
		if err := c.Emit(i); err != nil {
			t.Fatal(err)
		}
	}
	c.Finalize()
	return c
}

var jumpTests = [...]struct {
	name    string
	program []ipp.Instruction
	jumps   int
	fw      int
	back    int
	bad     int
	labels  int
}{
	{
		name:    "forward",
		program: []ipp.Instruction{ins(1, "JUMP", "foo"), ins(2, "LABEL", "foo")},
		jumps:   1, fw: 1, labels: 1,
	},
	{
		name:    "bad",
		program: []ipp.Instruction{ins(1, "JUMP", "bar")},
		jumps:   1, bad: 1,
	},
	{
		name:    "backward",
		program: []ipp.Instruction{ins(1, "LABEL", "loop"), ins(2, "JUMP", "loop")},
		jumps:   1, back: 1, labels: 1,
	},
	{
		// the call runs backward, so the return comes back forward
		name: "callReturnBack",
		program: []ipp.Instruction{
			ins(1, "LABEL", "f"),
			ins(2, "CALL", "f"),
			ins(3, "RETURN"),
		},
		jumps: 2, fw: 1, back: 1, labels: 1,
	},
	{
		name: "callReturnForward",
		program: []ipp.Instruction{
			ins(1, "CALL", "g"),
			ins(2, "LABEL", "g"),
			ins(3, "RETURN"),
		},
		jumps: 2, fw: 1, back: 1, labels: 1,
	},
	{
		// redefining a label is not an error and counts once
		name: "redefinedLabel",
		program: []ipp.Instruction{
			ins(1, "LABEL", "x"),
			ins(2, "LABEL", "x"),
			ins(3, "JUMPIFEQ", "x", "int@1", "int@1"),
		},
		jumps: 1, back: 1, labels: 1,
	},
	{
		name: "stackJumps",
		program: []ipp.Instruction{
			ins(1, "LABEL", "top"),
			ins(2, "JUMPIFEQS", "top"),
			ins(3, "JUMPIFNEQS", "gone"),
		},
		jumps: 2, back: 1, bad: 1, labels: 1,
	},
	{
		name: "mixedTargets",
		program: []ipp.Instruction{
			ins(1, "JUMP", "mid"),
			ins(2, "LABEL", "mid"),
			ins(3, "JUMP", "mid"),
			ins(4, "JUMP", "nowhere"),
			ins(5, "JUMP", "nowhere"),
		},
		jumps: 4, fw: 1, back: 1, bad: 2, labels: 1,
	},
}

func TestCollector_jumps(t *testing.T) {
	for _, tc := range jumpTests {
		t.Run(tc.name, func(t *testing.T) {
			c := feed(t, tc.program...)
			got := [...]int{
				c.Count(stats.Jumps), c.Count(stats.FwJumps),
				c.Count(stats.BackJumps), c.Count(stats.BadJumps),
				c.Count(stats.Labels),
			}
			want := [...]int{tc.jumps, tc.fw, tc.back, tc.bad, tc.labels}
			if got != want {
				t.Errorf("jumps/fw/back/bad/labels = %v, want %v", got, want)
			}
		})
	}
}

func TestCollector_unmatchedReturn(t *testing.T) {
	c := stats.NewCollector()
	err := c.Emit(ins(1, "RETURN"))
	if err == nil {
		t.Fatal("expected an error, got none")
	}
	if code := ipp.CodeOf(err); code != ipp.UnmatchedReturn {
		t.Errorf("code = %d, want %d", code, ipp.UnmatchedReturn)
	}
	if !strings.Contains(err.Error(), "instruction 1") {
		t.Errorf("error %q does not name the instruction", err)
	}
}

func TestCollector_histogram(t *testing.T) {
	c := feed(t,
		ins(1, "DEFVAR", "GF@a"),
		ins(2, "MOVE", "GF@a", "int@1"),
		ins(3, "MOVE", "GF@a", "int@2"),
		ins(4, "MOVE", "GF@a", "int@3"),
	)
	// stored entries undercount by one
	if n := c.OpcodeCount("DEFVAR"); n != 0 {
		t.Errorf("DEFVAR count = %d, want 0", n)
	}
	if n := c.OpcodeCount("MOVE"); n != 2 {
		t.Errorf("MOVE count = %d, want 2", n)
	}
	if got, want := c.MostFrequent(), []string{"MOVE", "DEFVAR"}; !reflect.DeepEqual(got, want) {
		t.Errorf("MostFrequent() = %v, want %v", got, want)
	}
}

func TestCollector_frequentTies(t *testing.T) {
	c := feed(t,
		ins(1, "CREATEFRAME"),
		ins(2, "PUSHFRAME"),
		ins(3, "POPFRAME"),
		ins(4, "PUSHFRAME"),
	)
	// PUSHFRAME leads, the tied rest keeps first occurrence order
	want := []string{"PUSHFRAME", "CREATEFRAME", "POPFRAME"}
	if got := c.MostFrequent(); !reflect.DeepEqual(got, want) {
		t.Errorf("MostFrequent() = %v, want %v", got, want)
	}
}

func TestCollector_locAndComments(t *testing.T) {
	c := stats.NewCollector()
	c.Comment()
	if err := c.Emit(ins(1, "CREATEFRAME")); err != nil {
		t.Fatal(err)
	}
	c.Comment()
	c.Finalize()
	if n := c.Count(stats.Loc); n != 1 {
		t.Errorf("loc = %d, want 1", n)
	}
	if n := c.Count(stats.Comments); n != 2 {
		t.Errorf("comments = %d, want 2", n)
	}
}

func TestCollector_finalizeOnce(t *testing.T) {
	c := stats.NewCollector()
	if err := c.Emit(ins(1, "JUMP", "void")); err != nil {
		t.Fatal(err)
	}
	c.Finalize()
	c.Finalize()
	if got := c.Count(stats.BadJumps); got != 1 {
		t.Errorf("badjumps = %d, want 1", got)
	}
	if got := c.Count(stats.FwJumps); got != 0 {
		t.Errorf("fwjumps = %d, want 0", got)
	}
}
