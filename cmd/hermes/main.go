// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/archibate/hermes"
)

func main() {
	log.SetPrefix("hermes: ")
	log.SetFlags(0)

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var (
		console         bool
		csvPath         string
		svgPath         string
		prometheusAddr  string
		maxTime         float64
		deviationFilter string
		fixedOverhead   int64
		configPath      string
	)

	cmd := &cobra.Command{
		Use:   "hermes",
		Short: "Run the benchmarks registered in this process",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := hermes.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("console") {
				console = v.GetBool("console")
			}
			if !cmd.Flags().Changed("max-time") {
				maxTime = v.GetFloat64("maxtime")
			}
			if !cmd.Flags().Changed("deviation-filter") {
				deviationFilter = v.GetString("deviationfilter")
			}
			if !cmd.Flags().Changed("fixed-overhead") {
				fixedOverhead = v.GetInt64("fixedoverhead")
			}
			if !cmd.Flags().Changed("csv") {
				csvPath = v.GetString("csv")
			}
			if !cmd.Flags().Changed("svg") {
				svgPath = v.GetString("svg")
			}
			if !cmd.Flags().Changed("prometheus") {
				prometheusAddr = v.GetString("prometheus")
			}

			opts := hermes.DefaultOptions()
			opts.MaxTime = maxTime
			opts.DeviationFilter = hermes.ParseDeviationFilter(deviationFilter)
			opts.FixedOverhead = fixedOverhead

			var reporters []hermes.Reporter
			if console {
				reporters = append(reporters, hermes.NewStdoutConsoleReporter())
			}
			if csvPath != "" {
				r, err := hermes.NewCSVReporter(csvPath)
				if err != nil {
					return err
				}
				reporters = append(reporters, r)
			}
			if svgPath != "" {
				r, err := hermes.NewSVGReporter(svgPath)
				if err != nil {
					return err
				}
				reporters = append(reporters, r)
			}

			var promReg *prometheus.Registry
			var promReporter *hermes.PrometheusReporter
			if prometheusAddr != "" {
				promReg = prometheus.NewRegistry()
				promReporter = hermes.NewPrometheusReporter(promReg)
				reporters = append(reporters, promReporter)

				ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
				defer cancel()
				go func() {
					if err := promReporter.Serve(ctx, prometheusAddr, promReg); err != nil {
						log.Printf("prometheus reporter: %v", err)
					}
				}()
			}

			composite := hermes.NewCompositeReporter(reporters...)
			driver := hermes.NewDriver(composite)
			driver.RunAll(opts)

			return composite.Close()
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&console, "console", true, "write a console table to stdout")
	flags.StringVar(&csvPath, "csv", "", "write a CSV report to `file`")
	flags.StringVar(&svgPath, "svg", "", "write an SVG bar chart report to `file`")
	flags.StringVar(&prometheusAddr, "prometheus", "", "serve Prometheus metrics at `addr`")
	flags.Float64Var(&maxTime, "max-time", hermes.DefaultOptions().MaxTime, "per-benchmark time budget in seconds")
	flags.StringVar(&deviationFilter, "deviation-filter", "mad", "outlier rejection: none, sigma, or mad")
	flags.Int64Var(&fixedOverhead, "fixed-overhead", hermes.DefaultOptions().FixedOverhead, "ticks subtracted from every reported median, mean, min and max")
	flags.StringVar(&configPath, "config", "", "YAML `file` providing defaults for the flags above")

	return cmd
}
