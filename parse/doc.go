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

// Package parse reads IPPcode23 source text and validates it instruction by
// instruction, feeding every accepted instruction to a set of emitters in
// program order. It performs no execution and no control-flow analysis, the
// whole run is one synchronous pass over the input lines.
//
// Source format:
//
// The first significant line of a program must be the header ".IPPcode23"
// (compared case-insensitively). Everything from '#' to the end of a line
// is a comment. Blank lines are skipped. Any other line is one instruction:
// an opcode followed by whitespace separated operand tokens. The opcode is
// case-insensitive and is canonicalized to upper case, operand literals
// keep their original case.
//
// Operand tokens:
//
//	token		kind	notes
//	-----		----	------------------------------------------------------------------------
//	int@17		int	decimal, hex (0x1F) or octal (0o17, 017) literal with optional sign,
//			 	digit runs may be grouped by single internal underscores
//	bool@true	bool	exactly true or false
//	string@ahoj	string	may be empty; '#' and bare '\' are forbidden, escapes are a backslash
//			 	followed by exactly three decimal digits (string@a\032b)
//	nil@nil		nil	exactly nil
//	GF@x		var	frame GF, LF or TF, then '@', then an identifier
//	int		type	bare int, bool or string (only valid where a type is expected)
//	main		label	bare identifier
//
// Identifiers (variable names, labels) start with a letter or one of
// _ - $ & % * ! ? and continue with the same set plus digits.
//
// Opcode groups and their operand slots:
//
//	slots			opcodes
//	-----			-------
//	(none)			CREATEFRAME PUSHFRAME POPFRAME RETURN BREAK CLEARS ADDS SUBS MULS
//				IDIVS LTS GTS EQS ANDS ORS NOTS INT2CHARS STRI2INTS
//	label			CALL LABEL JUMP JUMPIFEQS JUMPIFNEQS
//	var			DEFVAR POPS
//	symb			PUSHS EXIT DPRINT WRITE
//	var symb		MOVE INT2CHAR STRLEN TYPE NOT
//	var type		READ
//	var symb symb		ADD SUB MUL IDIV LT GT EQ AND OR STRI2INT CONCAT GETCHAR SETCHAR
//	label symb symb		JUMPIFEQ JUMPIFNEQ
//
// A symb slot accepts a variable or any constant literal. A malformed
// operand token, an unknown opcode, a wrong operand count and a wrong
// operand kind are all fatal, as is a missing, malformed or repeated
// header. Errors are prefixed with the source name and line and carry one
// of the ipp error codes.
//
// Emitters:
//
// Validated instructions fan out to every emitter passed to Parse, in
// program order. An emitter that also has a Comment() method is notified
// of every line that contains a comment, which is how the statistics
// collector counts them without the parser knowing about statistics.
package parse
