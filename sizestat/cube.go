// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sizestat aggregates derived size metrics into summary
// statistics and formats them as reports.
//
// The statistics of a run form a cube indexed by metric, optimization
// level, and profiling method. Every report walks the cube in that
// order, keeping the configured order of each axis.
package sizestat

import (
	"fmt"

	"github.com/mipbench/profstat/sizemath"
	"github.com/mipbench/profstat/sizeproc"
)

// A Key identifies one series: the values of one metric for every
// test built at one optimization level with one profiling method.
type Key struct {
	Metric sizeproc.Metric
	Level  string
	Method sizeproc.Method
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Metric, k.Level, k.Method)
}

// An EmptySeriesError reports a series with no tests, for which no
// statistics can be computed.
type EmptySeriesError struct {
	Key Key
}

func (e *EmptySeriesError) Error() string {
	return fmt.Sprintf("no tests for metric %s at level %s with method %s", e.Key.Metric, e.Key.Level, e.Key.Method)
}

func (e *EmptySeriesError) Unwrap() error {
	return sizemath.ErrEmptySample
}

// A Cube holds the summary statistics of every series of a run.
// A Cube is not modified after Aggregate returns it.
type Cube struct {
	// Metrics, Levels, and Methods give the axes of the cube in
	// report order.
	Metrics []sizeproc.Metric
	Levels  []string
	Methods []sizeproc.Method

	stats map[Key]sizemath.Summary
}

// Aggregate summarizes every series of t. It fails with an
// *EmptySeriesError for the first series, in report order, that has
// no values.
func Aggregate(t *sizeproc.Table) (*Cube, error) {
	c := &Cube{
		Metrics: append([]sizeproc.Metric(nil), sizeproc.AllMetrics...),
		Levels:  append([]string(nil), t.Levels...),
		Methods: append([]sizeproc.Method(nil), t.Methods...),
		stats:   make(map[Key]sizemath.Summary),
	}
	for _, metric := range c.Metrics {
		for _, level := range c.Levels {
			for _, method := range c.Methods {
				key := Key{metric, level, method}
				sum, err := sizemath.Summarize(t.Series(level, method, metric))
				if err != nil {
					return nil, &EmptySeriesError{key}
				}
				c.stats[key] = sum
			}
		}
	}
	return c, nil
}

// Summary returns the statistics of the series identified by k.
func (c *Cube) Summary(k Key) (sizemath.Summary, bool) {
	s, ok := c.stats[k]
	return s, ok
}

// Average returns the mean of the series identified by the arguments,
// or 0 if the cube has no such series.
func (c *Cube) Average(metric sizeproc.Metric, level string, method sizeproc.Method) float64 {
	return c.stats[Key{metric, level, method}].Mean
}

// Averages returns the mean of metric for method at every level, in
// level order.
func (c *Cube) Averages(metric sizeproc.Metric, method sizeproc.Method) []float64 {
	avgs := make([]float64, len(c.Levels))
	for i, level := range c.Levels {
		avgs[i] = c.Average(metric, level, method)
	}
	return avgs
}
