// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sizechart renders charts comparing profiling methods.
//
// Every chart is drawn on its own plot and canvas, so a failure in one
// chart never affects another. Rendering functions return the charts
// that failed as *ChartRenderError values and carry on with the rest.
package sizechart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/mipbench/profstat/sizeunit"
)

// A ChartRenderError reports a chart that could not be rendered.
type ChartRenderError struct {
	Chart string // output path of the chart
	Err   error
}

func (e *ChartRenderError) Error() string {
	return fmt.Sprintf("rendering %s: %v", e.Chart, e.Err)
}

func (e *ChartRenderError) Unwrap() error {
	return e.Err
}

const (
	width  = 20 * vg.Centimeter
	height = 12 * vg.Centimeter
	dpi    = 150
)

// render builds a chart with build and saves it as a PNG at path.
// Panics from the plotting library are reported as errors.
func render(path string, build func() (*plot.Plot, error)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if err != nil {
			err = &ChartRenderError{path, err}
		}
	}()

	pl, err := build()
	if err != nil {
		return err
	}

	can := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))
	pl.Draw(draw.New(can))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: can}).WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func mkdir(dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return &ChartRenderError{dir, err}
	}
	return nil
}

func chartPath(dir, name string) string {
	return filepath.Join(dir, name+".png")
}

// colors returns n distinct colors, one per profiling method.
func colors(n int) ([]color.Color, error) {
	k := n
	if k < 3 {
		// Brewer palettes start at three colors.
		k = 3
	}
	p, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", k)
	if err != nil {
		return nil, err
	}
	return p.Colors()[:n], nil
}

// withAlpha returns c with its alpha channel set to a.
func withAlpha(c color.Color, a uint8) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}

// byteTicks labels the default tick positions with byte counts in a
// common binary unit.
var byteTicks = plot.TickerFunc(func(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	var vals []float64
	for _, t := range ticks {
		if t.Label != "" {
			vals = append(vals, t.Value)
		}
	}
	scaler := sizeunit.CommonScale(vals)
	for i, t := range ticks {
		if t.Label != "" {
			ticks[i].Label = scaler.Format(t.Value)
		}
	}
	return ticks
})
