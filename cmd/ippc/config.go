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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jkalend/VUT-IPP/ipp"
	"github.com/jkalend/VUT-IPP/stats"
)

// sinkConfig mirrors one entry of the YAML statistics configuration.
type sinkConfig struct {
	File  string      `yaml:"file"`
	Lines []yaml.Node `yaml:"lines"`
}

// loadStatsConfig reads sink requests from a YAML file. The file holds a
// list of sinks, each with a file name and the lines to write:
//
//	- file: stats.txt
//	  lines:
//	    - loc
//	    - print: jump summary
//	    - fwjumps
func loadStatsConfig(name string) ([]stats.Request, error) {
	buf, err := os.ReadFile(name)
	if err != nil {
		return nil, ipp.Wrap(err, ipp.BadConfig)
	}
	var cfgs []sinkConfig
	if err := yaml.Unmarshal(buf, &cfgs); err != nil {
		return nil, ipp.Errorf(ipp.BadConfig, "%s: %v", name, err)
	}
	reqs := make([]stats.Request, 0, len(cfgs))
	for _, cfg := range cfgs {
		if cfg.File == "" {
			return nil, ipp.Errorf(ipp.BadConfig, "%s: sink with no file name", name)
		}
		r := stats.Request{File: cfg.File}
		for i := range cfg.Lines {
			d, err := decodeLine(&cfg.Lines[i])
			if err != nil {
				return nil, ipp.Errorf(ipp.BadConfig, "%s: %v", name, err)
			}
			r.Directives = append(r.Directives, d)
		}
		reqs = append(reqs, r)
	}
	return reqs, nil
}

// decodeLine turns one YAML list item into a directive. A plain scalar
// names a metric, a single key mapping like "print: text" carries its text.
func decodeLine(n *yaml.Node) (stats.Directive, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		m, ok := stats.ParseMetric(n.Value)
		if !ok {
			return stats.Directive{}, fmt.Errorf("line %d: unknown metric %q", n.Line, n.Value)
		}
		if m == stats.Print {
			return stats.Directive{}, fmt.Errorf("line %d: print needs a text value", n.Line)
		}
		return stats.Directive{Metric: m}, nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return stats.Directive{}, fmt.Errorf("line %d: want a single key", n.Line)
		}
		key, val := n.Content[0], n.Content[1]
		if key.Value != stats.Print.String() {
			return stats.Directive{}, fmt.Errorf("line %d: unknown directive %q", key.Line, key.Value)
		}
		return stats.Directive{Metric: stats.Print, Text: val.Value}, nil
	default:
		return stats.Directive{}, fmt.Errorf("line %d: want a metric name or a print mapping", n.Line)
	}
}
