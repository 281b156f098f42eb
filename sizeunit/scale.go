// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sizeunit formats byte counts for human consumption.
package sizeunit

import (
	"fmt"
	"math"
	"strconv"
)

// A Scaler represents a scaling factor for a byte count and the unit
// it is displayed in.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Bytes in one Unit (e.g., 1 KiB => 1024)
	Unit   string  // "B", "KiB", "MiB", etc, or "" for no unit
}

// Format formats val in the unit of s. For example, with a MiB
// Scaler, Format(1572864) returns "1.50MiB".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Unit...)
	return string(buf)
}

// NoOpScaler is a Scaler that formats numbers with the smallest
// number of digits necessary to capture the exact value, and no unit.
// This is intended for output consumed by another program, such as
// CSV.
var NoOpScaler = Scaler{-1, 1, ""}

type factor struct {
	factor float64
	unit   string
	// Thresholds for 100.0, 10.00, 1.000.
	t100, t10, t1 float64
}

var iecFactors = mkIECFactors()
var sigfigs, sigfigsBase = mkSigfigs()

func mkIECFactors() []factor {
	// Build the thresholds from the printed representation so they
	// match how printing rounds. Because t1 of one factor is 1024
	// of the next smaller factor, values in [1000, 1024) use the
	// smaller factor, e.g. 1020 KiB rather than 0.996 MiB.
	var factors []factor
	exp := 40
	for _, u := range []string{"TiB", "GiB", "MiB", "KiB", "B"} {
		t100, _ := strconv.ParseFloat(fmt.Sprintf("0x1.8ffae147ae148p%d", 6+exp), 64) // 99.995
		t10, _ := strconv.ParseFloat(fmt.Sprintf("0x1.3ffbe76c8b439p%d", 3+exp), 64)  // 9.9995
		t1, _ := strconv.ParseFloat(fmt.Sprintf("0x1.fff972474538fp%d", -1+exp), 64)  // .99995
		factors = append(factors, factor{math.Pow(2, float64(exp)), u, t100, t10, t1})
		exp -= 10
	}
	return factors
}

func mkSigfigs() ([]float64, int) {
	var sigfigs []float64
	// Averages of byte counts can be fractional. Print up to 5
	// digits after the decimal place.
	for exp := -1; exp > -4; exp-- {
		thresh, _ := strconv.ParseFloat(fmt.Sprintf("9.9995e%d", exp), 64)
		sigfigs = append(sigfigs, thresh)
	}
	// sigfigs[0] is the threshold for 3 digits after the decimal.
	return sigfigs, 3
}

// Scale formats a byte count using at least three significant digits
// and a binary unit. See CommonScale.
func Scale(val float64) string {
	return CommonScale([]float64{val}).Format(val)
}

// CommonScale returns a common Scaler to apply to all values in vals.
// This scale shows at least three significant digits for every
// non-zero value.
func CommonScale(vals []float64) Scaler {
	// The common scale is determined by the non-zero value
	// closest to zero.
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{0, 1, "B"}
	}

	for _, factor := range iecFactors {
		switch {
		case min >= factor.t100:
			return Scaler{1, factor.factor, factor.unit}
		case min >= factor.t10:
			return Scaler{2, factor.factor, factor.unit}
		case min >= factor.t1:
			return Scaler{3, factor.factor, factor.unit}
		}
	}

	// Less than one byte. Use more precision to keep the
	// significant digits.
	factor := iecFactors[len(iecFactors)-1]
	for i, thresh := range sigfigs {
		if min >= thresh || i == len(sigfigs)-1 {
			return Scaler{i + sigfigsBase, factor.factor, factor.unit}
		}
	}
	panic("not reachable")
}
