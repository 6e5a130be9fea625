package main

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jkalend/VUT-IPP/stats"
)

// printSummary renders a human readable overview of the collected
// statistics, one row per metric.
func printSummary(w io.Writer, c *stats.Collector) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Metric", "Value"})
	for _, m := range []stats.Metric{
		stats.Loc, stats.Comments, stats.Labels,
		stats.Jumps, stats.FwJumps, stats.BackJumps, stats.BadJumps,
	} {
		t.AppendRow(table.Row{m.String(), c.Count(m)})
	}
	t.AppendRow(table.Row{stats.Frequent.String(), strings.Join(c.MostFrequent(), ",")})
	t.Render()
}
