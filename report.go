// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

// Reporter is a single-operation capability: something that can accept
// a named Row. Console, CSV, SVG, Null and
// Composite are the concrete variants; a Prometheus-backed variant is
// added in report_prometheus.go as an ambient-observability extension.
type Reporter interface {
	WriteReport(name string, row Row)
}

// NullReporter discards every row. It is useful for timing the harness
// itself, or as an inert leaf inside a CompositeReporter.
type NullReporter struct{}

func (NullReporter) WriteReport(name string, row Row) {}

// CompositeReporter forwards each row to every child, in registration
// order, exactly once. It owns its children:
// Close closes every child that implements io.Closer.
type CompositeReporter struct {
	children []Reporter
}

// NewCompositeReporter returns a CompositeReporter fanning out to
// children, in the order given.
func NewCompositeReporter(children ...Reporter) *CompositeReporter {
	return &CompositeReporter{children: children}
}

func (c *CompositeReporter) WriteReport(name string, row Row) {
	for _, child := range c.children {
		child.WriteReport(name, row)
	}
}

// Close closes every child reporter that implements io.Closer, in
// registration order, collecting the first error encountered but still
// attempting to close the rest.
func (c *CompositeReporter) Close() error {
	var first error
	for _, child := range c.children {
		if closer, ok := child.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
