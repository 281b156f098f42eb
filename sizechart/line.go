// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sizechart

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mipbench/profstat/sizeproc"
	"github.com/mipbench/profstat/sizestat"
)

// LineCharts renders one line chart per metric of c into dir, named
// <metric>.png. The x axis steps through the optimization levels in
// configured order and each profiling method is one line of averages.
func LineCharts(dir string, c *sizestat.Cube) []error {
	if err := mkdir(dir); err != nil {
		return []error{err}
	}
	var errs []error
	for _, metric := range c.Metrics {
		metric := metric
		err := render(chartPath(dir, string(metric)), func() (*plot.Plot, error) {
			return lineChart(c, metric)
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func lineChart(c *sizestat.Cube, metric sizeproc.Metric) (*plot.Plot, error) {
	if len(c.Levels) == 0 {
		return nil, fmt.Errorf("no optimization levels")
	}
	clrs, err := colors(len(c.Methods))
	if err != nil {
		return nil, err
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s by Profile Type Across Optimization Levels (%s)", metric, strings.Join(c.Levels, " -> "))
	pl.X.Label.Text = "optimization level"
	pl.Y.Label.Text = "average " + string(metric)
	pl.Y.Tick.Marker = byteTicks
	pl.Legend.Top = true
	pl.Add(plotter.NewGrid())

	for i, method := range c.Methods {
		avgs := c.Averages(metric, method)
		xys := make(plotter.XYs, len(avgs))
		for j, v := range avgs {
			xys[j].X, xys[j].Y = float64(j), v
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		line.Color = clrs[i]
		line.Width = vg.Points(2)
		points.Color = clrs[i]
		points.Shape = draw.CircleGlyph{}
		points.Radius = vg.Points(3)
		pl.Add(line, points)
		pl.Legend.Add(string(method), line, points)
	}

	ticks := make([]plot.Tick, len(c.Levels))
	for i, level := range c.Levels {
		ticks[i] = plot.Tick{Value: float64(i), Label: level}
	}
	pl.X.Tick.Marker = plot.ConstantTicks(ticks)
	pl.X.Min, pl.X.Max = -0.5, float64(len(c.Levels))-0.5
	return pl, nil
}
