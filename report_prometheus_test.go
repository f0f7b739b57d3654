// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusReporterWriteReportUpdatesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheusReporter(reg)

	p.WriteReport("BM_thing", Row{Median: 50, Mean: 51.5, StdDev: 2.25, Min: 40, Max: 60, Count: 10})
	assert.Equal(t, float64(1), testutil.ToFloat64(p.rowsWritten))
	assert.Equal(t, float64(50), testutil.ToFloat64(p.median.WithLabelValues("BM_thing")))
	assert.Equal(t, float64(51.5), testutil.ToFloat64(p.mean.WithLabelValues("BM_thing")))

	p.WriteReport("BM_other", Row{Median: 5, Mean: 6, Count: 3})
	assert.Equal(t, float64(2), testutil.ToFloat64(p.rowsWritten))
	assert.Equal(t, float64(5), testutil.ToFloat64(p.median.WithLabelValues("BM_other")))

	p.WriteReport("BM_thing", Row{Median: 70, Mean: 72, Count: 20})
	assert.Equal(t, float64(3), testutil.ToFloat64(p.rowsWritten))
	assert.Equal(t, float64(70), testutil.ToFloat64(p.median.WithLabelValues("BM_thing")))
}

func TestPrometheusReporterServeShutsDownOnContextCancel(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheusReporter(reg)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- p.Serve(ctx, "127.0.0.1:0", reg) }()

	// give the listener goroutine a moment to call ListenAndServe before
	// canceling; Serve returns nil on a clean shutdown either way.
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after context cancel")
	}
}
