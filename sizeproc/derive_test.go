// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sizeproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mipbench/profstat/sizefmt"
)

func full() sizefmt.Metrics {
	return sizefmt.Metrics{
		SectionSize:     100000,
		SectionText:     60000,
		SectionData:     4000,
		SectionPrfCnts:  100,
		SectionPrfData:  200,
		SectionPrfNames: 300,
		SectionPrfVals:  400,
		SectionPrfVnds:  500,
		SectionCovMap:   700,
		SectionCovRaw:   900,
	}
}

func TestDerive(t *testing.T) {
	for _, tc := range []struct {
		method         Method
		adjusted, inst float64
	}{
		{Base, 100000, 0},
		{LLVM, 100000, 1500},
		{MIP, 99300, 900},
	} {
		t.Run(string(tc.method), func(t *testing.T) {
			v := Derive(tc.method, full())
			assert.Equal(t, 100000.0, v.Get(BinSize))
			assert.Equal(t, 60000.0, v.Get(TextSize))
			assert.Equal(t, 4000.0, v.Get(DataSize))
			assert.Equal(t, tc.adjusted, v.Get(AdjustedBinSize))
			assert.Equal(t, tc.inst, v.Get(InstrDataSize))
			assert.LessOrEqual(t, v.Get(AdjustedBinSize), v.Get(BinSize))
		})
	}
}

func TestDeriveMissingSections(t *testing.T) {
	for _, m := range AllMethods {
		assert.Equal(t, Values{}, Derive(m, nil), "method %s", m)
		assert.Equal(t, Values{}, Derive(m, sizefmt.Metrics{}), "method %s", m)
	}

	// Only some of the LLVM sections are present.
	v := Derive(LLVM, sizefmt.Metrics{SectionSize: 50, SectionPrfCnts: 7, SectionPrfNames: 3})
	assert.Equal(t, 10.0, v.Get(InstrDataSize))
	assert.Equal(t, 50.0, v.Get(AdjustedBinSize))

	// MIP without a coverage map.
	v = Derive(MIP, sizefmt.Metrics{SectionSize: 50, SectionCovRaw: 5})
	assert.Equal(t, 50.0, v.Get(AdjustedBinSize))
	assert.Equal(t, 5.0, v.Get(InstrDataSize))
}

func TestDeriveIgnoresForeignSections(t *testing.T) {
	// Base binaries never report instrumentation, even when
	// instrumentation-looking sections are present.
	v := Derive(Base, full())
	assert.Equal(t, 0.0, v.Get(InstrDataSize))
	assert.Equal(t, v.Get(BinSize), v.Get(AdjustedBinSize))

	// LLVM ignores the MIP sections and vice versa.
	v = Derive(LLVM, sizefmt.Metrics{SectionSize: 10, SectionCovMap: 3, SectionCovRaw: 4})
	assert.Equal(t, 10.0, v.Get(AdjustedBinSize))
	assert.Equal(t, 0.0, v.Get(InstrDataSize))
	v = Derive(MIP, sizefmt.Metrics{SectionSize: 10, SectionPrfCnts: 3})
	assert.Equal(t, 0.0, v.Get(InstrDataSize))
}

func TestRuleTable(t *testing.T) {
	for _, m := range AllMethods {
		_, ok := rules[m]
		assert.True(t, ok, "no rule for %s", m)
	}
	assert.Empty(t, RuleFor(Base).Bookkeeping)
	assert.Empty(t, RuleFor(Base).Payload)
	assert.Len(t, RuleFor(LLVM).Payload, 5)
	assert.Empty(t, RuleFor(LLVM).Bookkeeping)
	assert.Equal(t, []string{SectionCovMap}, RuleFor(MIP).Bookkeeping)
	assert.Equal(t, []string{SectionCovRaw}, RuleFor(MIP).Payload)
}

func TestParse(t *testing.T) {
	for _, m := range AllMetrics {
		got, err := ParseMetric(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMetric("exec_time")
	assert.Error(t, err)

	for _, m := range AllMethods {
		got, err := ParseMethod(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err = ParseMethod("gcov")
	assert.Error(t, err)

	assert.Equal(t, []string{"Base", "LLVM", "MIP"}, []string{Base.Title(), LLVM.Title(), MIP.Title()})
}

func TestDeriveAll(t *testing.T) {
	res := sizefmt.NewResults(map[sizefmt.Config][]sizefmt.Test{
		{Level: "Oz", Method: "base"}: {
			{Name: "a", Metrics: sizefmt.Metrics{SectionSize: 10}},
			{Name: "b", Metrics: sizefmt.Metrics{SectionSize: 20}},
		},
		{Level: "Oz", Method: "mip"}: {
			{Name: "a", Metrics: sizefmt.Metrics{SectionSize: 15, SectionCovMap: 2, SectionCovRaw: 3}},
		},
	})
	tab := DeriveAll(res, []string{"Oz"}, []Method{Base, MIP})

	assert.Equal(t, []string{"Oz"}, tab.Levels)
	assert.Equal(t, []Method{Base, MIP}, tab.Methods)
	assert.Equal(t, []float64{10, 20}, tab.Series("Oz", Base, BinSize))
	assert.Equal(t, []float64{0, 0}, tab.Series("Oz", Base, InstrDataSize))
	assert.Equal(t, []float64{13}, tab.Series("Oz", MIP, AdjustedBinSize))
	assert.Equal(t, []float64{3}, tab.Series("Oz", MIP, InstrDataSize))
	assert.Nil(t, tab.Series("Os", Base, BinSize))
}
