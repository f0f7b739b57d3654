// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package hermes

import (
	"bytes"
	"os"
)

// readCPUFreqHz parses "cpu MHz" out of /proc/cpuinfo and returns the rate
// in Hz, or 0 if it could not be determined. This ports
// original_source/hermes.cpp's get_cpu_freq, fixing the source's
// uninitialized accumulator: result now starts at zero instead of
// whatever garbage was on the C stack.
func readCPUFreqHz() int64 {
	buf, err := os.ReadFile("/proc/cpuinfo")
	if err != nil {
		return 0
	}

	idx := bytes.Index(buf, []byte("cpu MHz"))
	if idx < 0 {
		return 0
	}
	rest := buf[idx+len("cpu MHz"):]

	i := 0
	for i < len(rest) && (rest[i] < '0' || rest[i] > '9') && rest[i] != '\n' {
		i++
	}

	var result int64
	seenPoint := false
	digits := 0
	for i < len(rest) && rest[i] != '\n' {
		c := rest[i]
		switch {
		case c >= '0' && c <= '9':
			result = result*10 + int64(c-'0')
			if seenPoint {
				digits++
			}
		case c == '.':
			seenPoint = true
		}
		i++
	}
	for digits < 6 {
		result *= 10
		digits++
	}
	// result is now cpu MHz scaled by 1e6, i.e. Hz.
	return result
}
