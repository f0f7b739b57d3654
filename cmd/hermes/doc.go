// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Hermes runs the benchmark entries registered by hermes.Register in the
current process and reports the results.

Usage:

	hermes [flags]

By default hermes prints a console table to stdout. Passing --csv or
--svg additionally writes a machine-readable or chart report; more than
one reporter may be active at once, in which case every reporter sees
every row.

	--console
		Write a console table to stdout (default true).
	--csv file
		Write a CSV report to file.
	--svg file
		Write an SVG bar chart report to file.
	--prometheus addr
		Serve Prometheus metrics about the run itself at addr until the
		run finishes.
	--max-time seconds
		Per-benchmark time budget (default 0.5).
	--deviation-filter none|sigma|mad
		Outlier rejection method applied before computing statistics
		(default mad).
	--fixed-overhead ticks
		Subtracted from every reported median, mean, min and max; the
		recorded intervals, stddev and count are left unchanged.
	--config file
		YAML file providing any of the above as defaults; flags passed
		on the command line take precedence over the file.

# Examples

Run with the defaults, printing a console table:

	hermes

Run with a longer time budget and also emit a CSV report:

	hermes --max-time=2 --csv=results.csv
*/
package main
