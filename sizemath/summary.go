// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sizemath computes summary statistics over series of size
// measurements.
//
// Means and standard deviations are population statistics: a series
// holds every test of a suite, not a sample drawn from a larger set.
package sizemath

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptySample is returned when summarizing a series with no values.
var ErrEmptySample = errors.New("empty sample")

// A Summary holds the summary statistics of a series.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes the summary statistics of values. It does not
// modify values.
//
// The standard deviation uses the corrected two-pass algorithm, which
// stays accurate for values around 1e8 where the naive sum of squares
// loses most of its significant digits.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmptySample
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	// Summing in sorted order makes the result independent of the
	// input order, bit for bit.
	mean, std := stat.PopMeanStdDev(sorted, nil)
	lo, hi := stats.Sample{Xs: sorted, Sorted: true}.Bounds()
	return Summary{
		N:      len(values),
		Mean:   mean,
		StdDev: std,
		Min:    lo,
		Max:    hi,
	}, nil
}

// PercentChange returns the change from old to new as a percentage of
// old. It reports false if old is zero and new is not.
func PercentChange(old, new float64) (float64, bool) {
	if old == new {
		return 0, true
	}
	if old == 0 {
		return 0, false
	}
	return (new/old - 1) * 100, true
}

// FormatChange formats the change from old to new, such as "-12.50%".
// If the change is undefined, it returns "?".
func FormatChange(old, new float64) string {
	pct, ok := PercentChange(old, new)
	if !ok {
		return "?"
	}
	if pct == 0 || math.Abs(pct) < 0.005 {
		return "0.00%"
	}
	return fmt.Sprintf("%+.2f%%", pct)
}
