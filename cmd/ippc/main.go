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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/tebeka/atexit"

	"github.com/jkalend/VUT-IPP/ipp"
	"github.com/jkalend/VUT-IPP/parse"
	"github.com/jkalend/VUT-IPP/stats"
	"github.com/jkalend/VUT-IPP/xmlout"
)

// statsGroups collects -stats groups in command line order. Metric flags
// append to the most recently opened group.
type statsGroups struct {
	reqs []stats.Request
}

func (g *statsGroups) String() string { return "" }
func (g *statsGroups) Set(s string) error {
	g.reqs = append(g.reqs, stats.Request{File: s})
	return nil
}
func (g *statsGroups) Get() interface{} { return g.reqs }

func (g *statsGroups) add(d stats.Directive) error {
	if len(g.reqs) == 0 {
		return errors.New("no -stats group opened yet")
	}
	r := &g.reqs[len(g.reqs)-1]
	r.Directives = append(r.Directives, d)
	return nil
}

// metricFlag makes a boolean flag that appends its metric to the current
// group when present on the command line.
type metricFlag struct {
	g *statsGroups
	m stats.Metric
}

func (f metricFlag) String() string   { return "" }
func (f metricFlag) IsBoolFlag() bool { return true }
func (f metricFlag) Set(string) error { return f.g.add(stats.Directive{Metric: f.m}) }

// textFlag is the metricFlag variant for directives that carry a value.
type textFlag struct {
	g *statsGroups
	m stats.Metric
}

func (f textFlag) String() string     { return "" }
func (f textFlag) Set(s string) error { return f.g.add(stats.Directive{Metric: f.m, Text: s}) }

var (
	debug   bool
	summary bool
)

// fail reports err and exits the process with the matching status code.
// Cleanups registered with atexit run first.
func fail(err error) {
	if debug {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	atexit.Exit(int(ipp.CodeOf(err)))
}

func main() {
	flag.CommandLine.Init("ippc", flag.ContinueOnError)

	var groups statsGroups
	var outName = flag.String("o", "", "write the XML document to `filename` instead of standard output")
	var cfgName = flag.String("stats-config", "", "read the statistics sink setup from the YAML file `config`")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&summary, "summary", false, "print a summary table to standard error when done")
	flag.Var(&groups, "stats", "open a statistics group writing to `filename` (can be specified multiple times)")
	flag.Var(metricFlag{&groups, stats.Loc}, "loc", "append the instruction count to the current group")
	flag.Var(metricFlag{&groups, stats.Comments}, "comments", "append the comment count to the current group")
	flag.Var(metricFlag{&groups, stats.Labels}, "labels", "append the count of unique labels to the current group")
	flag.Var(metricFlag{&groups, stats.Jumps}, "jumps", "append the total jump count to the current group")
	flag.Var(metricFlag{&groups, stats.FwJumps}, "fwjumps", "append the forward jump count to the current group")
	flag.Var(metricFlag{&groups, stats.BackJumps}, "backjumps", "append the backward jump count to the current group")
	flag.Var(metricFlag{&groups, stats.BadJumps}, "badjumps", "append the bad jump count to the current group")
	flag.Var(metricFlag{&groups, stats.Frequent}, "frequent", "append the opcode usage list to the current group")
	flag.Var(textFlag{&groups, stats.Print}, "print", "append the literal `text` to the current group")
	flag.Var(metricFlag{&groups, stats.EOL}, "eol", "append a blank line to the current group")

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			atexit.Exit(0)
		}
		atexit.Exit(int(ipp.BadConfig))
	}
	if flag.NArg() > 1 {
		fail(ipp.Errorf(ipp.BadConfig, "at most one source file, got %q", flag.Args()))
	}

	reqs := groups.reqs
	if *cfgName != "" {
		if len(reqs) > 0 {
			fail(ipp.Errorf(ipp.BadConfig, "-stats-config cannot be combined with -stats groups"))
		}
		var err error
		if reqs, err = loadStatsConfig(*cfgName); err != nil {
			fail(err)
		}
	}

	sinks, err := stats.Open(reqs)
	if err != nil {
		fail(err)
	}
	// sinks must be closed on every exit path, partial output included
	atexit.Register(func() { sinks.Close() })

	var in io.Reader = os.Stdin
	name := "stdin"
	if flag.NArg() == 1 {
		name = flag.Arg(0)
		f, err := os.Open(name)
		if err != nil {
			fail(ipp.Wrap(err, ipp.CantOpen))
		}
		in = f
	}

	col := stats.NewCollector()
	doc := xmlout.NewBuilder()
	if err = parse.Parse(name, in, doc, col); err != nil {
		fail(err)
	}
	col.Finalize()

	target := os.Stdout
	if *outName != "" {
		if target, err = os.Create(*outName); err != nil {
			fail(ipp.Wrap(err, ipp.CantWrite))
		}
	}
	w := bufio.NewWriter(target)
	if _, err = doc.WriteTo(w); err != nil {
		fail(ipp.Wrap(err, ipp.CantWrite))
	}
	if err = w.Flush(); err != nil {
		fail(ipp.Wrap(err, ipp.CantWrite))
	}
	if target != os.Stdout {
		if err = target.Close(); err != nil {
			fail(ipp.Wrap(err, ipp.CantWrite))
		}
	}

	if err = sinks.Write(col); err != nil {
		fail(err)
	}
	if err = sinks.Close(); err != nil {
		fail(err)
	}
	if summary {
		printSummary(os.Stderr, col)
	}
	atexit.Exit(0)
}
