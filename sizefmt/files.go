// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sizefmt

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// A Config identifies one input file: the optimization level the
// binaries were built at and the profiling method they were
// instrumented with.
type Config struct {
	Level, Method string
}

// Results holds the tests read from every input file of a run.
// It is not modified after LoadAll returns.
type Results struct {
	tests map[Config][]Test
}

// Tests returns the tests read for the given level and method, in
// file order.
func (r *Results) Tests(level, method string) []Test {
	return r.tests[Config{level, method}]
}

// Len returns the number of input files in r.
func (r *Results) Len() int {
	return len(r.tests)
}

// NewResults returns Results holding the given tests.
func NewResults(tests map[Config][]Test) *Results {
	cp := make(map[Config][]Test, len(tests))
	for k, v := range tests {
		cp[k] = v
	}
	return &Results{cp}
}

// LoadAll reads the results file of every (level, method) pair found
// under dir, following the layout described by Path.
//
// Files are read concurrently. The first failure cancels the
// remaining reads and is returned; no partial Results are returned.
func LoadAll(ctx context.Context, dir string, levels, methods []string) (*Results, error) {
	type loaded struct {
		cfg   Config
		tests []Test
	}
	out := make([]loaded, len(levels)*len(methods))

	g, ctx := errgroup.WithContext(ctx)
	for i, level := range levels {
		for j, method := range methods {
			slot := &out[i*len(methods)+j]
			cfg := Config{level, method}
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				tests, err := ReadFile(Path(dir, cfg.Level, cfg.Method))
				if err != nil {
					return err
				}
				*slot = loaded{cfg, tests}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tests := make(map[Config][]Test, len(out))
	for _, l := range out {
		tests[l.cfg] = l.tests
	}
	return &Results{tests}, nil
}
