// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

// LinearRange returns begin, begin+step, ..., up to and including the
// largest value that does not exceed end. It is the argument-axis helper
// for sweeping a benchmark parameter linearly, ported from
// original_source/hermes.cpp's linear_range.
func LinearRange(begin, end, step int64) []int64 {
	var out []int64
	for i := begin; i <= end; i += step {
		out = append(out, i)
	}
	return out
}

// LogRange returns floor(begin*factor^0), floor(begin*factor^1), ... for as
// long as the value does not exceed end, skipping consecutive duplicates
// caused by rounding. If factor is not greater than 1, LogRange returns
// nil: a factor of exactly 1 would never advance past begin, and a factor
// below 1 shrinks away from end, so neither can terminate a growing
// sweep the way original_source/hermes.cpp's log_range intends.
func LogRange(begin, end int64, factor float64) []int64 {
	if factor <= 1 {
		return nil
	}
	var out []int64
	last := begin - 1
	for d := float64(begin); d <= float64(end); d *= factor {
		v := int64(d)
		if v != last {
			out = append(out, v)
			last = v
		}
	}
	return out
}
