// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ReporterConfig selects which reporters to compose into a
// CompositeReporter. Its keys (console, csv, svg, prometheus) are the ones
// cmd/hermes reads from LoadConfig's viper layer into its own flag
// variables; this struct itself is filled only by LoadRunConfigYAML.
type ReporterConfig struct {
	Console    bool   `mapstructure:"console" yaml:"console"`
	CSVPath    string `mapstructure:"csv" yaml:"csv"`
	SVGPath    string `mapstructure:"svg" yaml:"svg"`
	Prometheus string `mapstructure:"prometheus" yaml:"prometheus"` // listen address, empty disables
}

// RunConfig is everything needed to build a Driver and its
// Options: the measurement Options plus reporter selection. Both halves
// are embedded and inlined so a YAML file lists every field flat, the
// same shape LoadConfig's viper keys use.
type RunConfig struct {
	Options  `mapstructure:",squash" yaml:",inline"`
	Reporter ReporterConfig `mapstructure:",squash" yaml:",inline"`
}

// LoadConfig builds a *viper.Viper pre-seeded with the harness defaults,
// reads configPath if non-empty, and lets HERMES_-prefixed environment
// variables override it, before flags (bound by the caller) take final
// precedence. This mirrors the layering order viper users in the pack rely
// on: defaults, then file, then env, then explicit flag binding.
func LoadConfig(configPath string) (*viper.Viper, error) {
	v := viper.New()
	def := DefaultOptions()
	v.SetDefault("maxtime", def.MaxTime)
	v.SetDefault("deviationfilter", "mad")
	v.SetDefault("fixedoverhead", def.FixedOverhead)
	v.SetDefault("console", true)

	v.SetEnvPrefix("hermes")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %q", configPath)
		}
	}
	return v, nil
}

// LoadRunConfigYAML reads path and unmarshals it directly into a
// RunConfig, for callers embedding hermes as a library rather than
// driving it through cmd/hermes's cobra/viper flag layer.
func LoadRunConfigYAML(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, errors.Wrapf(err, "read config %q", path)
	}
	cfg := RunConfig{Options: DefaultOptions()}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, errors.Wrapf(err, "parse config %q", path)
	}
	return cfg, nil
}

// ParseDeviationFilter maps a config/flag string ("none", "sigma", "mad")
// to a DeviationFilter, defaulting to FilterMAD for an empty or unknown
// value rather than erroring, since a typo here should not be fatal to
// starting a benchmark run.
func ParseDeviationFilter(s string) DeviationFilter {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return FilterNone
	case "sigma":
		return FilterSigma
	default:
		return FilterMAD
	}
}
