// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sizestat

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/mipbench/profstat/sizemath"
	"github.com/mipbench/profstat/sizeproc"
	"github.com/mipbench/profstat/sizeunit"
)

// FormatSummary writes a console table of the averages in c, one row
// per metric and level. When the cube has both LLVM and MIP columns,
// a final column gives the change of the MIP average relative to
// LLVM.
func FormatSummary(w io.Writer, c *Cube) {
	compare := hasMethod(c, sizeproc.LLVM) && hasMethod(c, sizeproc.MIP)

	hdr := []string{"metric", "level"}
	for _, method := range c.Methods {
		hdr = append(hdr, string(method))
	}
	if compare {
		hdr = append(hdr, "mip vs llvm")
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader(hdr)
	for _, metric := range c.Metrics {
		for _, level := range c.Levels {
			avgs := make([]float64, len(c.Methods))
			for i, method := range c.Methods {
				avgs[i] = c.Average(metric, level, method)
			}
			scaler := sizeunit.CommonScale(avgs)
			row := []string{string(metric), level}
			for _, v := range avgs {
				row = append(row, scaler.Format(v))
			}
			if compare {
				row = append(row, sizemath.FormatChange(c.Average(metric, level, sizeproc.LLVM), c.Average(metric, level, sizeproc.MIP)))
			}
			table.Append(row)
		}
	}
	table.Render()
}

func hasMethod(c *Cube, m sizeproc.Method) bool {
	for _, m2 := range c.Methods {
		if m2 == m {
			return true
		}
	}
	return false
}
