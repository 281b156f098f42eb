// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sizefmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

// A MissingInputError reports an input file that does not exist or
// could not be parsed as JSON.
type MissingInputError struct {
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s: missing input: %v", e.Path, e.Err)
}

func (e *MissingInputError) Unwrap() error {
	return e.Err
}

// A MalformedInputError reports an input file that is valid JSON but
// lacks the expected "tests" array.
type MalformedInputError struct {
	Path string
	Msg  string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s: malformed input: %s", e.Path, e.Msg)
}

// Path returns the conventional location of the results file for the
// given optimization level and profiling method under dir.
func Path(dir, level, method string) string {
	return filepath.Join(dir, level, "results-"+method+".json")
}

type document struct {
	Tests json.RawMessage `json:"tests"`
}

type rawTest struct {
	Name    string                     `json:"name"`
	Metrics map[string]json.RawMessage `json:"metrics"`
}

// ReadFile reads the results file at path.
func ReadFile(path string) ([]Test, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &MissingInputError{path, err}
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses one results document from r. path is used in error
// messages; it is purely diagnostic.
func Read(r io.Reader, path string) ([]Test, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &MissingInputError{path, err}
	}
	if len(doc.Tests) == 0 || bytes.Equal(doc.Tests, []byte("null")) {
		return nil, &MalformedInputError{path, `no "tests" field`}
	}
	var raw []rawTest
	if err := json.Unmarshal(doc.Tests, &raw); err != nil {
		return nil, &MalformedInputError{path, fmt.Sprintf(`"tests" is not an array of test records: %v`, err)}
	}

	tests := make([]Test, len(raw))
	for i, rt := range raw {
		m := make(Metrics, len(rt.Metrics))
		for name, val := range rt.Metrics {
			if v, ok := integral(val); ok {
				m[name] = v
			}
		}
		tests[i] = Test{Name: rt.Name, Metrics: m}
	}
	return tests, nil
}

// integral decodes a metric value if it is a JSON number with an
// integral value. The harness also reports timings and hashes in the
// same object; those are not section sizes and are dropped.
func integral(raw json.RawMessage) (int64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !(raw[0] == '-' || '0' <= raw[0] && raw[0] <= '9') {
		return 0, false
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	if v, err := n.Int64(); err == nil {
		return v, true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
