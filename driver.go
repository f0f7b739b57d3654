// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import (
	"fmt"
	"log"
	"runtime"

	"github.com/google/uuid"
)

// Driver expands an Entry's argument axes, runs the registered function
// once per tuple on a fresh State, reduces the resulting records into a
// Row, and forwards each Row to a Reporter.
type Driver struct {
	// Reporter receives one write_report call per entry-point tuple.
	Reporter Reporter
	// Log receives one progress line per completed tuple, in the style of
	// rsc.io/cmd/benchlab's replaceable *log.Logger. A nil Log uses
	// log.Default().
	Log *log.Logger

	// RunID is included in every progress line this Driver logs, so the
	// lines of one Driver can be correlated. It is set once per Driver and
	// is not attached to any Reporter's output or metrics.
	RunID uuid.UUID

	envOnce bool
}

// NewDriver returns a Driver reporting to r with a fresh RunID.
func NewDriver(r Reporter) *Driver {
	return &Driver{Reporter: r, RunID: uuid.New()}
}

func (d *Driver) logger() *log.Logger {
	if d.Log != nil {
		return d.Log
	}
	return log.Default()
}

// RunAll runs environment setup once, then every registered Entry in
// registration order.
func (d *Driver) RunAll(opts Options) {
	d.setupOnce()
	for _, e := range Entries() {
		d.RunEntry(e, opts)
	}
}

// setupOnce pins the current OS thread and applies the environment tweaks
// exactly once per Driver, the way the source's
// Reporter::run_all calls setup_affinity a single time before looping over
// every entry.
func (d *Driver) setupOnce() {
	if d.envOnce {
		return
	}
	d.envOnce = true
	runtime.LockOSThread()
	setupEnvironment(d.logger())
}

// RunEntry expands e's cartesian product of argument axes in little-endian
// order (axis 0 varies fastest), running the registered
// function once per tuple and reporting one Row per tuple.
func (d *Driver) RunEntry(e *Entry, opts Options) {
	if len(e.Args) == 0 {
		d.runTuple(e, nil, e.Name, opts)
		return
	}

	indices := make([]int, len(e.Args))
	for {
		tuple := make([]int64, len(e.Args))
		name := e.Name
		for i, axis := range e.Args {
			v := axis[indices[i]]
			tuple[i] = v
			name += fmt.Sprintf("/%d", v)
		}
		d.runTuple(e, tuple, name, opts)

		done := true
		for i := range indices {
			indices[i]++
			if indices[i] >= len(e.Args[i]) {
				indices[i] = 0
				continue
			}
			done = false
			break
		}
		if done {
			return
		}
	}
}

// runTuple runs one entry-point tuple to completion and reports its Row.
// A body that never calls Start/Stop yields an empty record set; reduce
// reports that as count=0 rather than dividing by zero.
func (d *Driver) runTuple(e *Entry, args []int64, name string, opts Options) {
	s := newState(opts, args)
	e.Func(s)
	row := reduce(s, opts)
	d.Reporter.WriteReport(name, row)
	d.logger().Printf("hermes[%s]: %s: n=%d median=%.0f", d.RunID, name, row.Count, row.Median)
}
