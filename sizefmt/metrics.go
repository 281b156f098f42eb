// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sizefmt reads per-test binary size measurements produced by
// the LLVM test-suite benchmarking harness.
//
// Each input document is a JSON object with a top-level "tests" array.
// Every test carries a "metrics" object mapping measurement names to
// values. Size measurements are named after the object-file section
// they describe, such as "size.__text" or "size.__llvm_prf_cnts", plus
// the total binary size under "size".
package sizefmt

import "sort"

// Metrics maps a section name to its size in bytes for a single test.
type Metrics map[string]int64

// Get returns the integer value for a section key, or 0 if absent.
//
// Missing sections are never an error: the harness adds and drops
// sections between versions, and a section that is not present in a
// binary has size zero.
func (m Metrics) Get(section string) int64 {
	return m[section]
}

// Sections returns the section names in m in sorted order.
func (m Metrics) Sections() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// A Test is the raw measurement record for one test case.
type Test struct {
	// Name is the test name reported by the harness. It may be
	// empty.
	Name string

	// Metrics holds the integral metrics of the test.
	Metrics Metrics
}
