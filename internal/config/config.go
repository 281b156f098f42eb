// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings of a profstat run.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mipbench/profstat/sizeproc"
)

// FileName is the configuration file profstat reads from the working
// directory, if present.
const FileName = "profstat.yaml"

// Config describes which inputs a run analyzes and where it writes.
type Config struct {
	// OptimizationLevels lists the levels to analyze. Their order
	// is the x axis of the line charts and the row order of every
	// report.
	OptimizationLevels []string `yaml:"optimization_levels"`

	// ProfilingMethods must list base, llvm, and mip in that order.
	ProfilingMethods []string `yaml:"profiling_methods"`

	// InputDir is the directory holding one subdirectory per level.
	InputDir string `yaml:"input_dir"`

	// OutputDir receives the reports and charts.
	OutputDir string `yaml:"output_dir"`

	// BoxPlotMetric is the metric whose distribution the box plots
	// show.
	BoxPlotMetric string `yaml:"box_plot_metric"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		OptimizationLevels: []string{"Os", "Oz"},
		ProfilingMethods:   methodNames(),
		InputDir:           ".",
		OutputDir:          "results",
		BoxPlotMetric:      string(sizeproc.AdjustedBinSize),
	}
}

func methodNames() []string {
	var names []string
	for _, m := range sizeproc.AllMethods {
		names = append(names, string(m))
	}
	return names
}

// Load reads the configuration at path. Fields missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty file decodes to io.EOF and keeps every default.
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return cfg, nil
}

// LoadOrDefault is like Load, but returns the default configuration if
// no file exists at path.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if os.IsNotExist(errors.Cause(err)) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks that c describes a run profstat can perform.
func (c *Config) Validate() error {
	if len(c.OptimizationLevels) == 0 {
		return fmt.Errorf("no optimization levels")
	}
	seen := make(map[string]bool)
	for _, level := range c.OptimizationLevels {
		if level == "" {
			return fmt.Errorf("empty optimization level")
		}
		if seen[level] {
			return fmt.Errorf("duplicate optimization level %q", level)
		}
		seen[level] = true
	}

	want := methodNames()
	if len(c.ProfilingMethods) != len(want) {
		return fmt.Errorf("profiling methods must be %v, got %v", want, c.ProfilingMethods)
	}
	for i := range want {
		if c.ProfilingMethods[i] != want[i] {
			return fmt.Errorf("profiling methods must be %v, got %v", want, c.ProfilingMethods)
		}
	}

	if _, err := sizeproc.ParseMetric(c.BoxPlotMetric); err != nil {
		return errors.Wrap(err, "box_plot_metric")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("empty output directory")
	}
	return nil
}

// Methods returns the configured profiling methods.
func (c *Config) Methods() []sizeproc.Method {
	methods := make([]sizeproc.Method, len(c.ProfilingMethods))
	for i, name := range c.ProfilingMethods {
		methods[i] = sizeproc.Method(name)
	}
	return methods
}

// BoxMetric returns the metric shown by the box plots.
func (c *Config) BoxMetric() sizeproc.Metric {
	return sizeproc.Metric(c.BoxPlotMetric)
}
