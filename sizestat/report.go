// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sizestat

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteReports writes the statistics report of c to dir/stats.<ext>
// in format f and one CSV table of averages per metric to
// dir/data/<metric>.csv. It creates the directories as needed and
// overwrites existing files. It returns the paths written.
func WriteReports(dir string, c *Cube, f Format) ([]string, error) {
	dataDir := filepath.Join(dir, "data")
	if err := os.MkdirAll(dataDir, 0777); err != nil {
		return nil, errors.Wrap(err, "creating output directory")
	}

	var written []string
	write := func(path string, fill func(*bytes.Buffer) error) error {
		var buf bytes.Buffer
		if err := fill(&buf); err != nil {
			return errors.Wrapf(err, "formatting %s", path)
		}
		if err := os.WriteFile(path, buf.Bytes(), 0666); err != nil {
			return errors.Wrapf(err, "writing %s", path)
		}
		written = append(written, path)
		return nil
	}

	statsPath := filepath.Join(dir, "stats."+f.Ext())
	if err := write(statsPath, func(buf *bytes.Buffer) error { return f.Write(buf, c) }); err != nil {
		return written, err
	}
	for _, metric := range c.Metrics {
		metric := metric
		path := filepath.Join(dataDir, string(metric)+".csv")
		if err := write(path, func(buf *bytes.Buffer) error { return FormatCSV(buf, c, metric) }); err != nil {
			return written, err
		}
	}
	return written, nil
}
