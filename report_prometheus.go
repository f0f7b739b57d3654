// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusReporter instruments the harness's own operation: how many
// rows have been written, and the last-seen median/mean per row name. This
// is ambient observability of the harness itself, not another
// results-output format alongside Console/CSV/SVG.
type PrometheusReporter struct {
	rowsWritten prometheus.Counter
	median      *prometheus.GaugeVec
	mean        *prometheus.GaugeVec

	server *http.Server
}

// NewPrometheusReporter registers its metrics with reg (typically
// prometheus.NewRegistry(), not the global DefaultRegisterer, so a program
// can run more than one Driver without collector name collisions).
func NewPrometheusReporter(reg prometheus.Registerer) *PrometheusReporter {
	p := &PrometheusReporter{
		rowsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hermes_rows_written_total",
			Help: "Number of benchmark result rows reported so far.",
		}),
		median: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hermes_median_ticks",
			Help: "Last reported median duration, in ticks, per benchmark name.",
		}, []string{"name"}),
		mean: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hermes_mean_ticks",
			Help: "Last reported mean duration, in ticks, per benchmark name.",
		}, []string{"name"}),
	}
	reg.MustRegister(p.rowsWritten, p.median, p.mean)
	return p
}

func (p *PrometheusReporter) WriteReport(name string, row Row) {
	p.rowsWritten.Inc()
	p.median.WithLabelValues(name).Set(row.Median)
	p.mean.WithLabelValues(name).Set(row.Mean)
}

// Serve starts an HTTP server exposing reg's metrics at /metrics on addr.
// It runs until ctx is canceled, at which point it shuts down gracefully.
// Serve is optional: a PrometheusReporter can also be scraped by wiring
// its registry into a server the caller already runs.
func (p *PrometheusReporter) Serve(ctx context.Context, addr string, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	p.server = &http.Server{Addr: addr, Handler: mux}

	errc := make(chan error, 1)
	go func() { errc <- p.server.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return errors.Wrap(p.server.Shutdown(shutdownCtx), "shut down prometheus reporter")
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "serve prometheus reporter")
	}
}
