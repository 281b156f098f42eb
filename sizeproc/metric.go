// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sizeproc

import "fmt"

// A Metric is one of the size quantities derived for every test.
type Metric string

const (
	BinSize         Metric = "bin_size"
	TextSize        Metric = "text_size"
	DataSize        Metric = "data_size"
	InstrDataSize   Metric = "instr_data_size"
	AdjustedBinSize Metric = "adjusted_bin_size"
)

// AllMetrics lists every Metric in report order.
var AllMetrics = []Metric{BinSize, TextSize, DataSize, InstrDataSize, AdjustedBinSize}

// ParseMetric returns the Metric named s.
func ParseMetric(s string) (Metric, error) {
	for _, m := range AllMetrics {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q", s)
}

// index returns the position of m in AllMetrics, or -1.
func (m Metric) index() int {
	for i, m2 := range AllMetrics {
		if m == m2 {
			return i
		}
	}
	return -1
}

// A Method is a profiling method: the instrumentation applied to the
// binaries before they were measured.
type Method string

const (
	// Base binaries carry no instrumentation.
	Base Method = "base"
	// LLVM binaries carry the standard -fprofile-instr-generate
	// instrumentation.
	LLVM Method = "llvm"
	// MIP binaries carry machine IR profile instrumentation.
	MIP Method = "mip"
)

// AllMethods lists every Method in report order.
var AllMethods = []Method{Base, LLVM, MIP}

// ParseMethod returns the Method named s.
func ParseMethod(s string) (Method, error) {
	for _, m := range AllMethods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown profiling method %q", s)
}

// Title returns the display name of m, as used in CSV headers.
func (m Method) Title() string {
	switch m {
	case Base:
		return "Base"
	case LLVM:
		return "LLVM"
	case MIP:
		return "MIP"
	}
	return string(m)
}
