// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleReporterHeaderAndRow(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleReporter(&buf)
	c.WriteReport("BM_thing", Row{Median: 100, Mean: 105, StdDev: 3, Count: 20})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "name")
	assert.Contains(t, lines[1], "---")
	assert.Contains(t, lines[2], "BM_thing")
	assert.Contains(t, lines[2], "100")
	assert.Contains(t, lines[2], "20")
}

func TestConsoleReporterOneLinePerRow(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleReporter(&buf)
	c.WriteReport("a", Row{Count: 1})
	c.WriteReport("b", Row{Count: 2})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 4) // header + separator + two rows
}
