// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sizestat

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mipbench/profstat/sizeproc"
)

func scenarioCube(t *testing.T, levels ...string) *Cube {
	t.Helper()
	c, err := Aggregate(scenario(levels...))
	require.NoError(t, err)
	return c
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("txt")
	require.NoError(t, err)
	assert.Equal(t, Text, f)
	f, err = ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)
	assert.Equal(t, "json", f.Ext())

	_, err = ParseFormat("csv")
	assert.Error(t, err)
}

func TestFormatText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatText(&buf, scenarioCube(t, "Os", "Oz")))
	got := buf.String()

	const wantPrefix = `bin_size:
	Os:
		base:
			avg: 1000
			std: 0
			min: 1000
			max: 1000
		llvm:
			avg: 1000
			std: 0
			min: 1000
			max: 1000
		mip:
			avg: 1000
			std: 0
			min: 1000
			max: 1000
	Oz:
		base:
`
	assert.True(t, strings.HasPrefix(got, wantPrefix), "got:\n%s", got)

	const wantSuffix = `adjusted_bin_size:
	Os:
		base:
			avg: 1000
			std: 0
			min: 1000
			max: 1000
		llvm:
			avg: 1000
			std: 0
			min: 1000
			max: 1000
		mip:
			avg: 980
			std: 0
			min: 980
			max: 980
	Oz:
`
	assert.Contains(t, got, wantSuffix)

	// 5 metrics, each with 2 levels of 3 methods of 4 statistics.
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	assert.Len(t, lines, 5*(1+2*(1+3*(1+4))))
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(&buf, scenarioCube(t, "Oz", "Os")))
	got := buf.String()

	var doc map[string]map[string]map[string]map[string]float64
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Len(t, doc, 5)
	assert.Equal(t, map[string]float64{"avg": 30, "std": 0, "min": 30, "max": 30}, doc["instr_data_size"]["Os"]["mip"])
	assert.Equal(t, 50.0, doc["instr_data_size"]["Oz"]["llvm"]["avg"])
	assert.Equal(t, 0.0, doc["instr_data_size"]["Oz"]["base"]["max"])

	// Keys follow report order, not lexical order.
	order := func(keys ...string) {
		t.Helper()
		last := -1
		for _, k := range keys {
			i := strings.Index(got, `"`+k+`"`)
			require.GreaterOrEqual(t, i, 0, "missing %s", k)
			assert.Greater(t, i, last, "%s out of order", k)
			last = i
		}
	}
	order("bin_size", "text_size", "data_size", "instr_data_size", "adjusted_bin_size")
	order("Oz", "Os")
	order("base", "llvm", "mip")
	order("avg", "std", "min", "max")

	// Numbers are numbers.
	assert.Contains(t, got, `"avg": 1000`)
	assert.NotContains(t, got, `"1000"`)
}

func TestFormatCSV(t *testing.T) {
	c := scenarioCube(t, "O3", "Os", "Oz")
	for _, tc := range []struct {
		metric sizeproc.Metric
		want   string
	}{
		{sizeproc.AdjustedBinSize, "Optimization Level,Base,LLVM,MIP\nO3,1000,1000,980\nOs,1000,1000,980\nOz,1000,1000,980\n"},
		{sizeproc.InstrDataSize, "Optimization Level,Base,LLVM,MIP\nO3,0,50,30\nOs,0,50,30\nOz,0,50,30\n"},
		{sizeproc.TextSize, "Optimization Level,Base,LLVM,MIP\nO3,600,600,600\nOs,600,600,600\nOz,600,600,600\n"},
	} {
		var buf bytes.Buffer
		require.NoError(t, FormatCSV(&buf, c, tc.metric))
		assert.Equal(t, tc.want, buf.String(), "metric %s", tc.metric)
	}
}

func TestFormatSummary(t *testing.T) {
	var buf bytes.Buffer
	FormatSummary(&buf, scenarioCube(t, "Os", "Oz"))
	got := buf.String()

	for _, want := range []string{"metric", "level", "mip vs llvm", "adjusted_bin_size", "1000.0B", "980.0B", "50.00B", "-2.00%", "-40.00%"} {
		assert.Contains(t, got, want)
	}
}

func TestWriteReports(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")
	c := scenarioCube(t, "Os", "Oz")

	// Stale files are overwritten.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0777))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "bin_size.csv"), []byte("stale"), 0666))

	written, err := WriteReports(dir, c, JSON)
	require.NoError(t, err)
	assert.Len(t, written, 1+len(sizeproc.AllMetrics))
	assert.Equal(t, filepath.Join(dir, "stats.json"), written[0])

	data, err := os.ReadFile(filepath.Join(dir, "stats.json"))
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	for _, metric := range sizeproc.AllMetrics {
		data, err := os.ReadFile(filepath.Join(dir, "data", string(metric)+".csv"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "Optimization Level,Base,LLVM,MIP\n"), "metric %s", metric)
		assert.Equal(t, 3, strings.Count(string(data), "\n"), "metric %s", metric)
	}

	_, err = WriteReports(dir, c, Text)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "stats.txt"))
	assert.NoError(t, err)
}
