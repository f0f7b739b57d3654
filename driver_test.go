// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingReporter captures every WriteReport call, in order, without
// touching a real file or terminal.
type recordingReporter struct {
	names []string
	rows  []Row
}

func (r *recordingReporter) WriteReport(name string, row Row) {
	r.names = append(r.names, name)
	r.rows = append(r.rows, row)
}

func onceFunc(s *State) {
	s.t0 = 0
	s.stop(1)
}

func TestRunEntryNoAxesRunsOnce(t *testing.T) {
	rep := &recordingReporter{}
	d := &Driver{Reporter: rep, envOnce: true}
	e := &Entry{Name: "BM_solo", Func: onceFunc}

	d.RunEntry(e, DefaultOptions())

	require.Len(t, rep.names, 1)
	assert.Equal(t, "BM_solo", rep.names[0])
}

func TestRunEntryCartesianOrderIsLittleEndian(t *testing.T) {
	rep := &recordingReporter{}
	d := &Driver{Reporter: rep, envOnce: true}
	e := &Entry{
		Name: "BM_axes",
		Func: onceFunc,
		Args: [][]int64{{1, 2}, {10, 20}},
	}

	d.RunEntry(e, DefaultOptions())

	require.Equal(t, []string{
		"BM_axes/1/10",
		"BM_axes/2/10",
		"BM_axes/1/20",
		"BM_axes/2/20",
	}, rep.names)
}

func TestRunEntryZeroRecordsReportsZeroCount(t *testing.T) {
	rep := &recordingReporter{}
	d := &Driver{Reporter: rep, envOnce: true}
	e := &Entry{Name: "BM_empty", Func: func(*State) {}}

	d.RunEntry(e, DefaultOptions())

	require.Len(t, rep.rows, 1)
	assert.Equal(t, int64(0), rep.rows[0].Count)
}

func TestRunAllVisitsRegisteredEntries(t *testing.T) {
	rep := &recordingReporter{}
	d := &Driver{Reporter: rep, envOnce: true}

	Register("zzz_test_driver_a", onceFunc)
	Register("zzz_test_driver_b", onceFunc)

	before := len(rep.names)
	d.RunAll(DefaultOptions())
	assert.Greater(t, len(rep.names), before)
	assert.Contains(t, rep.names, "zzz_test_driver_a")
	assert.Contains(t, rep.names, "zzz_test_driver_b")
}
