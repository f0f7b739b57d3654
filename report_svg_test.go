// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVGReporterWritesValidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.svg")
	r, err := NewSVGReporter(path)
	require.NoError(t, err)

	r.WriteReport("BM_a", Row{Median: 100, Mean: 105, StdDev: 5, Min: 90, Max: 130})
	r.WriteReport("BM_b", Row{Median: 200, Mean: 210, StdDev: 8, Min: 180, Max: 260})
	require.NoError(t, r.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, "<svg")
	assert.Contains(t, doc, "</svg>")
	assert.Contains(t, doc, "BM_a")
	assert.Contains(t, doc, "BM_b")
}

func TestSVGReporterEmptyStillClosesCleanly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.svg")
	r, err := NewSVGReporter(path)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestAxisScaleNonPositiveIsIdentity(t *testing.T) {
	assert.Equal(t, 0.0, axisScale(0))
	assert.Equal(t, -5.0, axisScale(-5))
	assert.Greater(t, axisScale(10), 0.0)
}
