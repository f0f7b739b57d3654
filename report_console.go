// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import (
	"fmt"
	"io"
	"os"
)

// ConsoleReporter prints one fixed-width table to an io.Writer (stdout by
// default): a header row and dashed separator on construction, then one
// right-aligned line per reported Row. Column widths (name 28, numeric
// 10/10/6/9) are a wire-level contract, not a style choice.
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter constructs a ConsoleReporter writing to w and
// immediately emits the header and separator, matching
// original_source/hermes.cpp's ConsoleReporter constructor.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	c := &ConsoleReporter{w: w}
	fmt.Fprintf(c.w, "%28s %10s %10s %6s %9s\n", "name", "med", "avg", "std", "n")
	fmt.Fprintln(c.w, "-------------------------------------------------------------------")
	return c
}

// NewStdoutConsoleReporter is a convenience for the common case of
// reporting to os.Stdout.
func NewStdoutConsoleReporter() *ConsoleReporter {
	return NewConsoleReporter(os.Stdout)
}

func (c *ConsoleReporter) WriteReport(name string, row Row) {
	fmt.Fprintf(c.w, "%28s %10.0f %10.0f %6.0f %9d\n",
		name, row.Median, row.Mean, row.StdDev, row.Count)
}
