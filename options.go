// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import "gopkg.in/yaml.v3"

// DeviationFilter selects the outlier-rejection pass Statistics applies to
// a State's records before computing the reported Row.
type DeviationFilter int

const (
	// FilterNone skips outlier rejection entirely.
	FilterNone DeviationFilter = iota
	// FilterSigma retains records within 3 standard deviations of the mean.
	FilterSigma
	// FilterMAD retains records within 12 median-absolute-deviations of the
	// median. This is the default: MAD is far more robust than sigma
	// filtering against the heavy-tailed noise typical of wall-clock
	// benchmark measurements.
	FilterMAD
)

// UnmarshalYAML accepts either the numeric enum value or one of the names
// "none", "sigma", "mad", so a hand-written YAML config file can say
// "deviationfilter: mad" the same way the --deviation-filter flag does.
func (f *DeviationFilter) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err == nil {
		*f = DeviationFilter(n)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*f = ParseDeviationFilter(s)
	return nil
}

// Options configures one Driver run. The zero value is not directly usable;
// call DefaultOptions to get sane defaults.
type Options struct {
	// MaxTime is the target measurement budget per entry-point tuple, in
	// seconds.
	MaxTime float64 `mapstructure:"maxtime" yaml:"maxtime"`
	// DeviationFilter selects the outlier-rejection pass.
	DeviationFilter DeviationFilter `mapstructure:"deviationfilter" yaml:"deviationfilter"`
	// FixedOverhead is subtracted from every reported median, mean, min and
	// max, in ticks, to cancel the measurement harness's own per-iteration
	// cost (never subtracted from stddev or count).
	FixedOverhead int64 `mapstructure:"fixedoverhead" yaml:"fixedoverhead"`
}

// DefaultOptions returns the harness defaults: a half second budget per
// entry, MAD filtering, and a fixed overhead calibrated for the current
// GOARCH.
func DefaultOptions() Options {
	return Options{
		MaxTime:         0.5,
		DeviationFilter: FilterMAD,
		FixedOverhead:   defaultFixedOverhead(),
	}
}
