// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sizeproc derives normalized size metrics from raw section
// sizes.
//
// Which sections count as program content and which count as
// instrumentation differs between profiling methods. The mapping is
// kept in a single table (see RuleFor) so it can be audited in one
// place: a wrong entry silently skews every cross-method comparison.
package sizeproc

import "github.com/mipbench/profstat/sizefmt"

// Section names reported by the benchmarking harness.
const (
	SectionSize = "size"
	SectionText = "size.__text"
	SectionData = "size.__data"

	// Standard LLVM profile sections.
	SectionPrfCnts  = "size.__llvm_prf_cnts"
	SectionPrfData  = "size.__llvm_prf_data"
	SectionPrfNames = "size.__llvm_prf_names"
	SectionPrfVals  = "size.__llvm_prf_vals"
	SectionPrfVnds  = "size.__llvm_prf_vnds"

	// MIP coverage sections. The map is bookkeeping metadata that
	// is stripped before shipping; the raw section is the payload.
	SectionCovMap = "size.__llvm_odrcovmap"
	SectionCovRaw = "size.__llvm_odrcovraw"
)

// A Rule says how a profiling method lays out its instrumentation.
type Rule struct {
	// Bookkeeping sections are not part of the shipped program and
	// are subtracted from the binary size to get the adjusted
	// binary size.
	Bookkeeping []string

	// Payload sections hold the instrumentation data itself. Their
	// sum is the instrumentation data size.
	Payload []string
}

var rules = map[Method]Rule{
	Base: {},
	LLVM: {
		Payload: []string{SectionPrfCnts, SectionPrfData, SectionPrfNames, SectionPrfVals, SectionPrfVnds},
	},
	MIP: {
		Bookkeeping: []string{SectionCovMap},
		Payload:     []string{SectionCovRaw},
	},
}

// RuleFor returns the derivation rule for m. Unknown methods get the
// empty rule, which treats the binary as uninstrumented.
func RuleFor(m Method) Rule {
	return rules[m]
}

// Values holds the derived metrics of one test, indexed like
// AllMetrics.
type Values [5]float64

// Get returns the value of metric m.
func (v Values) Get(m Metric) float64 {
	i := m.index()
	if i < 0 {
		return 0
	}
	return v[i]
}

func sum(raw sizefmt.Metrics, sections []string) int64 {
	var total int64
	for _, s := range sections {
		total += raw.Get(s)
	}
	return total
}

// Derive computes the derived metrics for one test measured under
// profiling method m. Sections missing from raw count as zero, so
// Derive never fails.
func Derive(m Method, raw sizefmt.Metrics) Values {
	rule := RuleFor(m)
	size := raw.Get(SectionSize)

	var v Values
	v[BinSize.index()] = float64(size)
	v[TextSize.index()] = float64(raw.Get(SectionText))
	v[DataSize.index()] = float64(raw.Get(SectionData))
	v[InstrDataSize.index()] = float64(sum(raw, rule.Payload))
	v[AdjustedBinSize.index()] = float64(size - sum(raw, rule.Bookkeeping))
	return v
}
