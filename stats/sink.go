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

package stats

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jkalend/VUT-IPP/internal/ippi"
	"github.com/jkalend/VUT-IPP/ipp"
)

// Metric identifies one statistic that can be written to a sink.
type Metric int

const (
	Loc Metric = iota
	Comments
	Labels
	Jumps
	FwJumps
	BackJumps
	BadJumps
	Frequent
	Print
	EOL
)

var metricNames = [...]string{
	Loc:       "loc",
	Comments:  "comments",
	Labels:    "labels",
	Jumps:     "jumps",
	FwJumps:   "fwjumps",
	BackJumps: "backjumps",
	BadJumps:  "badjumps",
	Frequent:  "frequent",
	Print:     "print",
	EOL:       "eol",
}

var metricIndex = make(map[string]Metric)

func init() {
	for m, name := range metricNames {
		metricIndex[name] = Metric(m)
	}
}

func (m Metric) String() string {
	if m >= 0 && int(m) < len(metricNames) {
		return metricNames[m]
	}
	return "metric(" + strconv.Itoa(int(m)) + ")"
}

// ParseMetric maps a directive name like "loc" to its Metric.
func ParseMetric(name string) (Metric, bool) {
	m, ok := metricIndex[name]
	return m, ok
}

// Directive is one output line of a sink. Text is only used by Print.
type Directive struct {
	Metric Metric
	Text   string
}

// Request names a sink file and the directives to write into it.
type Request struct {
	File       string
	Directives []Directive
}

type sink struct {
	name string
	dirs []Directive
	f    *os.File
}

// SinkSet owns the statistics output files of one run.
type SinkSet struct {
	sinks []sink
}

// Open creates all requested sink files. Two requests naming the same file
// are refused. On error, files opened so far are closed. Output already
// written to a sink is never rolled back.
func Open(reqs []Request) (*SinkSet, error) {
	s := &SinkSet{}
	seen := make(map[string]bool)
	for _, r := range reqs {
		name := filepath.Clean(r.File)
		if seen[name] {
			s.Close()
			return nil, ipp.Errorf(ipp.DuplicateSink, "stats file %s requested twice", r.File)
		}
		seen[name] = true
		f, err := os.Create(r.File)
		if err != nil {
			s.Close()
			return nil, ipp.Wrap(err, ipp.CantWrite)
		}
		s.sinks = append(s.sinks, sink{name: r.File, dirs: r.Directives, f: f})
	}
	return s, nil
}

// Write renders every directive of every sink, one line per directive, in
// the order requested.
func (s *SinkSet) Write(c *Collector) error {
	for i := range s.sinks {
		if err := s.sinks[i].write(c); err != nil {
			return err
		}
	}
	return nil
}

func (k *sink) write(c *Collector) error {
	w := ippi.NewErrWriter(k.f)
	for _, d := range k.dirs {
		switch d.Metric {
		case Frequent:
			io.WriteString(w, strings.Join(c.MostFrequent(), ","))
		case Print:
			io.WriteString(w, d.Text)
		case EOL:
			// the newline below is the whole line
		default:
			io.WriteString(w, strconv.Itoa(c.Count(d.Metric)))
		}
		io.WriteString(w, "\n")
	}
	if w.Err != nil {
		return ipp.Errorf(ipp.CantWrite, "%s: %v", k.name, w.Err)
	}
	return nil
}

// Close closes every open sink. It is safe to call more than once.
func (s *SinkSet) Close() error {
	var err error
	for i := range s.sinks {
		k := &s.sinks[i]
		if k.f == nil {
			continue
		}
		if e := k.f.Close(); e != nil && err == nil {
			err = ipp.Wrap(e, ipp.CantWrite)
		}
		k.f = nil
	}
	return err
}
