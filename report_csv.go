// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import (
	"fmt"
	"io"
	"os"
)

// CSVReporter streams rows to a file as they arrive: UTF-8, LF-terminated,
// with the header "name,avg,std,min,max,n". Names are written raw, with no
// escaping: callers are responsible for not using commas in benchmark
// names. Note that median is deliberately not one of the columns; this
// preserves the source's omission as-is rather than resolving whether
// it was intentional.
type CSVReporter struct {
	f io.WriteCloser
}

// NewCSVReporter opens path for writing and writes the CSV header. A
// failure to open the file is a "Reporter I/O fatal" condition: the
// caller is expected to treat a non-nil error as fatal.
func NewCSVReporter(path string) (*CSVReporter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, wrapReporterIO(err, "open csv report "+path)
	}
	if _, err := fmt.Fprint(f, "name,avg,std,min,max,n\n"); err != nil {
		f.Close()
		return nil, wrapReporterIO(err, "write csv header "+path)
	}
	return &CSVReporter{f: f}, nil
}

func (c *CSVReporter) WriteReport(name string, row Row) {
	fmt.Fprintf(c.f, "%s,%f,%f,%d,%d,%d\n",
		name, row.Mean, row.StdDev, int64(row.Min), int64(row.Max), row.Count)
}

// Close closes the underlying file.
func (c *CSVReporter) Close() error {
	return c.f.Close()
}
