// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sizechart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mipbench/profstat/sizeproc"
)

// BoxPlots renders one box plot per optimization level of t into dir,
// named box-<level>.png. Each plot shows the distribution of metric
// across tests, one box per profiling method, to expose the spread and
// outliers that averages hide.
func BoxPlots(dir string, t *sizeproc.Table, metric sizeproc.Metric) []error {
	if err := mkdir(dir); err != nil {
		return []error{err}
	}
	var errs []error
	for _, level := range t.Levels {
		level := level
		err := render(chartPath(dir, "box-"+level), func() (*plot.Plot, error) {
			return boxPlot(t, level, metric)
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func boxPlot(t *sizeproc.Table, level string, metric sizeproc.Metric) (*plot.Plot, error) {
	clrs, err := colors(len(t.Methods))
	if err != nil {
		return nil, err
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s at %s", metric, level)
	pl.X.Label.Text = "profiling method"
	pl.Y.Label.Text = string(metric)
	pl.Y.Tick.Marker = byteTicks

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	w := vg.Points(40)
	names := make([]string, len(t.Methods))
	for i, method := range t.Methods {
		values := t.Series(level, method, metric)
		if len(values) == 0 {
			return nil, fmt.Errorf("no %s values for method %s", metric, method)
		}
		b, err := plotter.NewBoxPlot(w, float64(i), plotter.Values(values))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		b.FillColor = withAlpha(clrs[i], 0x50)
		b.BoxStyle.Color = clrs[i]
		pl.Add(b)
		names[i] = string(method)
	}
	pl.NominalX(names...)
	return pl, nil
}
