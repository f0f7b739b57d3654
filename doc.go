// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hermes is a microbenchmark harness: it measures the execution
// time of registered functions with cycle-level resolution, filters noisy
// samples, and hands the result to one or more pluggable reporters.
package hermes
