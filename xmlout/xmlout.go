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

// Package xmlout builds the XML form of a parsed program.
//
// The document layout follows the IPPcode23 interchange format. A program
// root element carries a language attribute, instructions map to
// instruction elements with order and opcode attributes, and every operand
// becomes an argN child with the operand kind in a type attribute and the
// operand text as element text. Text goes through the XML writer's usual
// escaping, so &, < and > in string literals end up as entities. Escape
// sequences like \032 are not decoded, they pass through verbatim.
package xmlout

import (
	"io"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jkalend/VUT-IPP/ipp"
)

// Language is the value of the program element's language attribute.
const Language = "IPPcode23"

// Builder accumulates instructions into an XML document.
type Builder struct {
	doc  *etree.Document
	root *etree.Element
}

// NewBuilder returns a Builder holding an empty program document.
func NewBuilder() *Builder {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("program")
	root.CreateAttr("language", Language)
	return &Builder{doc: doc, root: root}
}

// Emit appends ins to the document. The returned error is always nil.
func (b *Builder) Emit(ins ipp.Instruction) error {
	e := b.root.CreateElement("instruction")
	e.CreateAttr("order", strconv.Itoa(ins.Order))
	e.CreateAttr("opcode", ins.Opcode)
	for n, arg := range ins.Args {
		a := e.CreateElement("arg" + strconv.Itoa(n+1))
		a.CreateAttr("type", arg.Kind.String())
		a.SetText(arg.Text)
	}
	return nil
}

// WriteTo indents the document with 2 space steps and serializes it to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	b.doc.Indent(2)
	return b.doc.WriteTo(w)
}
