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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/jkalend/VUT-IPP/ipp"
)

// header is the mandatory first significant line of a program.
const header = ".IPPcode23"

type parser struct {
	name   string
	line   int
	order  int
	active bool // header seen
	out    []Emitter
}

// errorf returns a code error prefixed with the current source position.
func (p *parser) errorf(code ipp.Code, format string, args ...interface{}) error {
	return ipp.Errorf(code, "%s:%d: %s", p.name, p.line, fmt.Sprintf(format, args...))
}

// cutComment strips the comment from a raw line.
func cutComment(l string) (string, bool) {
	if i := strings.IndexByte(l, '#'); i >= 0 {
		return l[:i], true
	}
	return l, false
}

func (p *parser) parse(r io.Reader) error {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		p.line++
		line, comment := cutComment(s.Text())
		if comment {
			p.comment()
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.EqualFold(line, header):
			if p.active {
				return p.errorf(ipp.DuplicateHeader, "second %s header", header)
			}
			p.active = true
		case !p.active:
			return p.errorf(ipp.InvalidHeader, "expected %s header, got %q", header, line)
		default:
			if err := p.instruction(strings.Fields(line)); err != nil {
				return err
			}
		}
	}
	if err := s.Err(); err != nil {
		return ipp.Errorf(ipp.CantOpen, "%s:%d: read failed: %v", p.name, p.line, err)
	}
	if !p.active {
		return ipp.Errorf(ipp.MissingHeader, "%s: missing %s header", p.name, header)
	}
	return nil
}

// instruction validates one opcode and its operand tokens against the
// signature table and emits the result.
func (p *parser) instruction(fields []string) error {
	op := strings.ToUpper(fields[0])
	sig, ok := ipp.LookupSignature(op)
	if !ok {
		return p.errorf(ipp.UnknownOpcode, "unknown opcode %q", fields[0])
	}
	args := fields[1:]
	if len(args) != len(sig) {
		return p.errorf(ipp.ArityMismatch, "%s takes %d operands, got %d", op, len(sig), len(args))
	}
	ins := ipp.Instruction{Order: p.order + 1, Opcode: op, Args: make([]ipp.Operand, len(args))}
	for n, tok := range args {
		arg, err := ipp.ParseOperand(tok)
		if err != nil {
			return errors.Wrapf(err, "%s:%d", p.name, p.line)
		}
		if arg.Kind&sig[n] == 0 {
			return p.errorf(ipp.OperandTypeMismatch, "%s: unexpected %s as operand %d", op, arg.Kind, n+1)
		}
		ins.Args[n] = arg
	}
	p.order++
	for _, e := range p.out {
		if err := e.Emit(ins); err != nil {
			return errors.Wrapf(err, "%s:%d", p.name, p.line)
		}
	}
	return nil
}

func (p *parser) comment() {
	for _, e := range p.out {
		if c, ok := e.(commenter); ok {
			c.Comment()
		}
	}
}
