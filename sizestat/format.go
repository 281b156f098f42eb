// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sizestat

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mipbench/profstat/sizemath"
	"github.com/mipbench/profstat/sizeproc"
	"github.com/mipbench/profstat/sizeunit"
)

// A Format is a textual format for the statistics report.
type Format string

const (
	Text Format = "txt"
	JSON Format = "json"
)

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case Text, JSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (want txt or json)", s)
}

// Ext returns the file extension for reports in format f.
func (f Format) Ext() string {
	return string(f)
}

// Write writes the statistics report of c to w in format f.
func (f Format) Write(w io.Writer, c *Cube) error {
	switch f {
	case Text:
		return FormatText(w, c)
	case JSON:
		return FormatJSON(w, c)
	}
	return fmt.Errorf("unknown format %q", string(f))
}

// statistic names in report order.
var statNames = []string{"avg", "std", "min", "max"}

func statValues(s sizemath.Summary) []float64 {
	return []float64{s.Mean, s.StdDev, s.Min, s.Max}
}

// FormatText writes the statistics of c as nested sections, one
// statistic per line, with tab indentation giving the nesting:
//
//	bin_size:
//		Oz:
//			base:
//				avg: 1000
func FormatText(w io.Writer, c *Cube) error {
	var buf bytes.Buffer
	for _, metric := range c.Metrics {
		fmt.Fprintf(&buf, "%s:\n", metric)
		for _, level := range c.Levels {
			fmt.Fprintf(&buf, "\t%s:\n", level)
			for _, method := range c.Methods {
				fmt.Fprintf(&buf, "\t\t%s:\n", method)
				sum, _ := c.Summary(Key{metric, level, method})
				for i, v := range statValues(sum) {
					fmt.Fprintf(&buf, "\t\t\t%s: %s\n", statNames[i], sizeunit.NoOpScaler.Format(v))
				}
			}
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// FormatJSON writes the statistics of c as a single JSON object nested
// by metric, level, method, and statistic. Object keys appear in report
// order, which encoding/json would not preserve for maps.
func FormatJSON(w io.Writer, c *Cube) error {
	var buf bytes.Buffer
	str := func(s string) {
		b, _ := json.Marshal(s)
		buf.Write(b)
	}
	buf.WriteByte('{')
	for i, metric := range c.Metrics {
		if i > 0 {
			buf.WriteByte(',')
		}
		str(string(metric))
		buf.WriteString(":{")
		for j, level := range c.Levels {
			if j > 0 {
				buf.WriteByte(',')
			}
			str(level)
			buf.WriteString(":{")
			for k, method := range c.Methods {
				if k > 0 {
					buf.WriteByte(',')
				}
				str(string(method))
				buf.WriteString(":{")
				sum, _ := c.Summary(Key{metric, level, method})
				for l, v := range statValues(sum) {
					if l > 0 {
						buf.WriteByte(',')
					}
					str(statNames[l])
					buf.WriteByte(':')
					b, err := json.Marshal(v)
					if err != nil {
						return fmt.Errorf("%s of %s: %w", statNames[l], Key{metric, level, method}, err)
					}
					buf.Write(b)
				}
				buf.WriteByte('}')
			}
			buf.WriteByte('}')
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "\t"); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := w.Write(out.Bytes())
	return err
}

// FormatCSV writes the averages of metric as a CSV table with one row
// per optimization level and one column per profiling method.
func FormatCSV(w io.Writer, c *Cube, metric sizeproc.Metric) error {
	hdr := []string{"Optimization Level"}
	for _, method := range c.Methods {
		hdr = append(hdr, method.Title())
	}
	tab := [][]string{hdr}
	for _, level := range c.Levels {
		row := []string{level}
		for _, method := range c.Methods {
			row = append(row, sizeunit.NoOpScaler.Format(c.Average(metric, level, method)))
		}
		tab = append(tab, row)
	}
	csvw := csv.NewWriter(w)
	return csvw.WriteAll(tab)
}
