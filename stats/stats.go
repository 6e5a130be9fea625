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

// Package stats collects source code statistics over a single program pass.
//
// A Collector classifies every jump at the moment it is seen: a jump to an
// already defined label is backward, anything else is provisionally
// forward. Finalize must run once after the last instruction; it moves
// forward jumps whose target never got defined to the bad jump counter.
// Collected values are then written out through a SinkSet.
package stats

import (
	"sort"

	"github.com/jkalend/VUT-IPP/ipp"
)

// direction of a taken CALL, kept on the call stack so that RETURN can
// credit the way back.
type direction int8

const (
	forward direction = iota
	backward
)

// jumpOps are the opcodes that transfer control to a label operand.
var jumpOps = map[string]bool{
	"CALL":       true,
	"JUMP":       true,
	"JUMPIFEQ":   true,
	"JUMPIFNEQ":  true,
	"JUMPIFEQS":  true,
	"JUMPIFNEQS": true,
}

// Collector accumulates statistics. It consumes the instruction stream of
// a parse and owns all jump topology state.
type Collector struct {
	loc      int
	comments int

	jumps     int
	fwjumps   int
	backjumps int
	badjumps  int

	defined map[string]struct{} // labels defined so far
	targets map[string]int      // provisional forward jumps per target
	calls   []direction         // CALL pushes, RETURN pops

	hist      map[string]int
	histOrder []string // opcodes in first occurrence order

	final bool
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		defined: make(map[string]struct{}),
		targets: make(map[string]int),
		hist:    make(map[string]int),
	}
}

// Emit folds one instruction into the statistics. The only error condition
// is a RETURN with no outstanding CALL.
func (c *Collector) Emit(ins ipp.Instruction) error {
	c.loc++
	if _, ok := c.hist[ins.Opcode]; !ok {
		// The first occurrence deliberately starts the entry at 0 instead
		// of 1. Stats files written by earlier releases undercount every
		// opcode by one and existing consumers expect that.
		c.hist[ins.Opcode] = 0
		c.histOrder = append(c.histOrder, ins.Opcode)
	} else {
		c.hist[ins.Opcode]++
	}

	switch {
	case ins.Opcode == "LABEL":
		c.defined[ins.Args[0].Text] = struct{}{}
	case ins.Opcode == "RETURN":
		c.jumps++
		n := len(c.calls)
		if n == 0 {
			return ipp.Errorf(ipp.UnmatchedReturn, "RETURN without a CALL (instruction %d)", ins.Order)
		}
		d := c.calls[n-1]
		c.calls = c.calls[:n-1]
		// the way back runs opposite to the call
		if d == forward {
			c.backjumps++
		} else {
			c.fwjumps++
		}
	case jumpOps[ins.Opcode]:
		c.jumps++
		target := ins.Args[0].Text
		d := forward
		if _, ok := c.defined[target]; ok {
			d = backward
			c.backjumps++
		} else {
			c.fwjumps++
			c.targets[target]++
		}
		if ins.Opcode == "CALL" {
			c.calls = append(c.calls, d)
		}
	}
	return nil
}

// Comment records one comment.
func (c *Collector) Comment() { c.comments++ }

// Finalize settles forward jumps whose target never got defined. It must
// run after the last instruction and before any statistic is read. Extra
// calls are no-ops.
func (c *Collector) Finalize() {
	if c.final {
		return
	}
	c.final = true
	for target, n := range c.targets {
		if _, ok := c.defined[target]; !ok {
			c.badjumps += n
			c.fwjumps -= n
		}
	}
}

// Count returns the value of a counter metric. Frequent, Print and EOL are
// not counters and report 0.
func (c *Collector) Count(m Metric) int {
	switch m {
	case Loc:
		return c.loc
	case Comments:
		return c.comments
	case Labels:
		return len(c.defined)
	case Jumps:
		return c.jumps
	case FwJumps:
		return c.fwjumps
	case BackJumps:
		return c.backjumps
	case BadJumps:
		return c.badjumps
	}
	return 0
}

// MostFrequent returns all opcodes seen, the most used first. Opcodes with
// equal counts keep the order of their first occurrence.
func (c *Collector) MostFrequent() []string {
	ops := append([]string(nil), c.histOrder...)
	sort.SliceStable(ops, func(i, j int) bool {
		return c.hist[ops[i]] > c.hist[ops[j]]
	})
	return ops
}

// OpcodeCount returns the stored histogram entry for op. Entries start at
// 0 on an opcode's first occurrence, see Emit.
func (c *Collector) OpcodeCount(op string) int { return c.hist[op] }
