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

// The ippc command translates IPPcode23 source code into its XML
// interchange form and optionally collects statistics about the program.
//
// The source is read from the file given as the only positional argument,
// or from standard input when the argument is missing. The XML document
// goes to standard output unless redirected with -o. Statistics are
// grouped into sinks: every -stats flag opens a new group and the metric
// flags that follow fill that group, one output line each, in command line
// order.
//
// Usage:
//
//	ippc [options] [file]
//
//	-backjumps
//		  append the backward jump count to the current group
//	-badjumps
//		  append the bad jump count to the current group
//	-comments
//		  append the comment count to the current group
//	-debug
//		  enable debug diagnostics
//	-eol
//		  append a blank line to the current group
//	-frequent
//		  append the opcode usage list to the current group
//	-fwjumps
//		  append the forward jump count to the current group
//	-jumps
//		  append the total jump count to the current group
//	-labels
//		  append the count of unique labels to the current group
//	-loc
//		  append the instruction count to the current group
//	-o filename
//		  write the XML document to filename instead of standard output
//	-print text
//		  append the literal text to the current group
//	-stats filename
//		  open a statistics group writing to filename (can be specified multiple times)
//	-stats-config config
//		  read the statistics sink setup from the YAML file config
//	-summary
//		  print a summary table to standard error when done
//
// -stats: opens a new group. A metric flag before the first -stats is a
// configuration error, and two groups naming the same file are refused.
//
// -stats-config: reads the sink setup from a YAML file instead of -stats
// groups. Mixing both is refused. The file holds a list of sinks:
//
//	- file: stats.txt
//	  lines:
//	    - loc
//	    - print: jump summary
//	    - fwjumps
//
// -frequent: writes the names of all opcodes used by the program, comma
// separated, the most used first.
//
// -debug: will print a full stacktrace should the translation fail.
//
// Exit codes: 10 bad command line or configuration, 11 unreadable input,
// 12 unwritable output, 13 duplicate statistics file, 21 missing header,
// 22 unknown opcode, 23 malformed operand, 24 invalid header, 25 duplicate
// header, 26 wrong operand count, 27 wrong operand type, 28 RETURN without
// a CALL, 99 internal error.
package main
