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

// Package ipp defines the IPPcode23 language model shared by the whole
// translation pipeline: operand classification, opcode signatures and the
// error taxonomy with its process exit codes.
//
// IPPcode23 is a small stack/register-hybrid instruction language. A program
// is a sequence of lines, each holding at most one instruction: an opcode
// followed by whitespace separated operand tokens. Every opcode has a fixed
// signature, one accepted kind set per operand slot, and classification of a
// token into a kind is purely lexical. Package parse drives the model over
// actual source text.
//
// Errors returned by this package and by the packages building on it carry a
// Code that doubles as the process exit status, so calling tooling can tell
// failure classes apart without matching on message text.
//
// TODO:
//   - float extension (DIV, INT2FLOAT, FLOAT2INT and their stack variants);
//     the downstream engine already understands floats, the classifier does
//     not accept them yet.
package ipp
