// Copyright (c) 2026, The Orange3 Prototypes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/markotoplak/orange3-prototypes/data"
	"github.com/markotoplak/orange3-prototypes/featstats"
)

// sparks are the bar glyphs used for the distribution sparkline.
var sparks = []rune("▁▂▃▄▅▆▇█")

// roleColors are the row background colors per variable group,
// matching the widget's class/meta/attribute shading.
var roleColors = map[data.VarRole]string{
	data.RoleClassVar: "#a0a0a0",
	data.RoleMeta:     "#dcdcc8",
}

// sparkline renders distribution counts as a compact bar string.
func sparkline(ds *featstats.Distribution) string {
	if ds == nil || len(ds.Counts) == 0 {
		return ""
	}
	peak := 0
	for _, n := range ds.Counts {
		if n > peak {
			peak = n
		}
	}
	if peak == 0 {
		return ""
	}
	var sb strings.Builder
	for _, n := range ds.Counts {
		sb.WriteRune(sparks[n*(len(sparks)-1)/peak])
	}
	return sb.String()
}

// showTable prints the model's rows in display order, one line per
// visible variable, with group-colored rows on capable terminals.
func showTable(w io.Writer, wd *featstats.Widget) {
	md := wd.Model()
	out := termenv.NewOutput(w)

	columns := []featstats.Column{
		featstats.ColumnKind, featstats.ColumnName, featstats.ColumnDistribution,
		featstats.ColumnCenter, featstats.ColumnDispersion,
		featstats.ColumnMin, featstats.ColumnMax, featstats.ColumnMissing,
	}
	rows := make([][]string, md.Rows())
	widths := make([]int, len(columns))
	header := make([]string, len(columns))
	for j, cn := range columns {
		header[j] = cn.Label()
		widths[j] = len([]rune(header[j]))
	}
	for i := 0; i < md.Rows(); i++ {
		rec := make([]string, len(columns))
		for j, cn := range columns {
			cell, err := md.Value(i, cn)
			if err != nil {
				continue
			}
			if cn == featstats.ColumnDistribution {
				if src, err := md.SourceRow(i); err == nil {
					if ds, err := md.Distribution(src); err == nil {
						cell = sparkline(ds)
					}
				}
			}
			rec[j] = cell
			if n := len([]rune(cell)); n > widths[j] {
				widths[j] = n
			}
		}
		rows[i] = rec
	}

	writeRow(out, header, widths, "")
	for i, rec := range rows {
		color := ""
		if src, err := md.SourceRow(i); err == nil {
			if rl, err := md.Role(src); err == nil {
				color = roleColors[rl]
			}
		}
		writeRow(out, rec, widths, color)
	}
}

func writeRow(out *termenv.Output, rec []string, widths []int, color string) {
	var sb strings.Builder
	for j, cell := range rec {
		if j > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", widths[j]-len([]rune(cell))))
	}
	line := sb.String()
	if color != "" {
		line = out.String(line).Background(out.Color(color)).String()
	}
	fmt.Fprintln(out, line)
}
