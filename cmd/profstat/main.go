// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Profstat compares the binary size cost of profiling instrumentation
// across optimization levels.
//
// Usage:
//
//	profstat [-f txt|json]
//
// Profstat reads one results file per optimization level and profiling
// method, laid out as
//
//	<level>/results-base.json
//	<level>/results-llvm.json
//	<level>/results-mip.json
//
// as written by the LLVM test-suite harness. From the section sizes of
// each test it derives five metrics:
//
//	bin_size           total binary size
//	text_size          size of __text
//	data_size          size of __data
//	instr_data_size    size of the instrumentation payload sections
//	adjusted_bin_size  binary size less instrumentation bookkeeping
//
// and writes, under results/:
//
//	stats.txt or stats.json   mean, standard deviation, min, and max per
//	                          metric, level, and method
//	data/<metric>.csv         averages per level and method
//	graphs/<metric>.png       averages per method across levels
//	boxplots/box-<level>.png  distribution per method at one level
//
// A table of averages, with the change of mip relative to llvm, is
// printed to standard output.
//
// The optimization levels default to Os and Oz. To change them, or the
// input and output directories, create a profstat.yaml file in the
// working directory:
//
//	optimization_levels: [O3, Os, Oz]
//	input_dir: .
//	output_dir: results
//	box_plot_metric: adjusted_bin_size
//
// The -f (or --format) flag selects the format of the stats report:
// txt (the default) or json. It does not affect the other outputs.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/mipbench/profstat/internal/config"
	"github.com/mipbench/profstat/sizechart"
	"github.com/mipbench/profstat/sizefmt"
	"github.com/mipbench/profstat/sizeproc"
	"github.com/mipbench/profstat/sizestat"
)

var exit = os.Exit // replaced during testing

// A usageError reports bad command-line arguments.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func main() {
	if err := profstat(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			exit(0)
			return
		}
		fmt.Fprintf(os.Stderr, "profstat: %v\n", err)
		var uerr *usageError
		if errors.As(err, &uerr) {
			exit(2)
			return
		}
		exit(1)
	}
}

func newLogger(w io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	return logger
}

func profstat(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("profstat", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: profstat [-f txt|json]\n")
		flags.PrintDefaults()
	}
	formatName := flags.StringP("format", "f", string(sizestat.Text), "stats report `format`: txt or json")
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		flags.Usage()
		return &usageError{err}
	}
	if flags.NArg() > 0 {
		flags.Usage()
		return &usageError{fmt.Errorf("unexpected arguments: %v", flags.Args())}
	}
	format, err := sizestat.ParseFormat(*formatName)
	if err != nil {
		flags.Usage()
		return &usageError{err}
	}

	logger := newLogger(wErr)

	cfg, err := config.LoadOrDefault(config.FileName)
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}

	// Load, derive, and aggregate everything before writing
	// anything, so a bad input leaves no partial report behind.
	res, err := sizefmt.LoadAll(context.Background(), cfg.InputDir, cfg.OptimizationLevels, cfg.ProfilingMethods)
	if err != nil {
		return err
	}
	logger.WithField("files", res.Len()).Info("loaded results")

	tab := sizeproc.DeriveAll(res, cfg.OptimizationLevels, cfg.Methods())
	cube, err := sizestat.Aggregate(tab)
	if err != nil {
		return err
	}

	written, err := sizestat.WriteReports(cfg.OutputDir, cube, format)
	for _, path := range written {
		logger.WithField("path", path).Info("wrote report")
	}
	if err != nil {
		return err
	}

	sizestat.FormatSummary(w, cube)

	errs := sizechart.LineCharts(filepath.Join(cfg.OutputDir, "graphs"), cube)
	errs = append(errs, sizechart.BoxPlots(filepath.Join(cfg.OutputDir, "boxplots"), tab, cfg.BoxMetric())...)
	for _, err := range errs {
		entry := logger.WithError(err)
		var cre *sizechart.ChartRenderError
		if errors.As(err, &cre) {
			entry = logger.WithField("chart", cre.Chart).WithError(cre.Err)
		}
		entry.Warn("skipping chart")
	}
	return nil
}
