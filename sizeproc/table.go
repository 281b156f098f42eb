// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sizeproc

import "github.com/mipbench/profstat/sizefmt"

// A Table holds the derived metric series of a run, one series per
// (optimization level, profiling method, metric).
//
// A Table is not modified after it is built.
type Table struct {
	// Levels and Methods give the axes of the table in configured
	// order.
	Levels  []string
	Methods []Method

	series map[seriesKey][]float64
}

type seriesKey struct {
	level  string
	method Method
	metric Metric
}

// DeriveAll derives the metrics of every test in res for the given
// levels and methods.
func DeriveAll(res *sizefmt.Results, levels []string, methods []Method) *Table {
	t := &Table{
		Levels:  append([]string(nil), levels...),
		Methods: append([]Method(nil), methods...),
		series:  make(map[seriesKey][]float64),
	}
	for _, level := range levels {
		for _, method := range methods {
			tests := res.Tests(level, string(method))
			cols := make([][]float64, len(AllMetrics))
			for i := range cols {
				cols[i] = make([]float64, len(tests))
			}
			for j, test := range tests {
				v := Derive(method, test.Metrics)
				for i := range AllMetrics {
					cols[i][j] = v[i]
				}
			}
			for i, metric := range AllMetrics {
				t.series[seriesKey{level, method, metric}] = cols[i]
			}
		}
	}
	return t
}

// Series returns the per-test values of metric for the given level
// and method, in input file order. The caller must not modify the
// returned slice.
func (t *Table) Series(level string, method Method, metric Metric) []float64 {
	return t.series[seriesKey{level, method, metric}]
}
