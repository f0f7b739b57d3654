// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import (
	"runtime"
	"sync"
	"time"
)

// ticksPerSecondOnce caches the result of probeTicksPerSecond: the probe is
// not free (it may parse /proc/cpuinfo or spin for a few milliseconds) and
// every State construction needs the answer to turn Options.MaxTime into a
// tick budget.
var ticksPerSecondOnce = sync.OnceValue(probeTicksPerSecond)

// ticksPerSecond returns the approximate number of Clock ticks in one
// second on this machine. The value is opaque and platform-specific: on
// amd64 it is a cycle rate, on arm64 the virtual counter's rate, elsewhere
// it is however many units the OS monotonic clock advances per second
// (i.e. about 1e9, since clock_other.go reports nanoseconds).
func ticksPerSecond() int64 {
	return ticksPerSecondOnce()
}

// probeTicksPerSecond tries the platform-specific probe first (cheap, exact
// on Linux) and falls back to a short self-calibration loop, the same
// technique used by other_examples/CWBudde-algo-fft__cycles.go's
// calibrateCycleCounter: read the tick counter, spin for a known wall-clock
// duration, read it again, and divide.
func probeTicksPerSecond() int64 {
	// The cpuinfo MHz figure is a cycle rate, which only matches now()'s
	// unit on amd64, where now() reads the time-stamp counter.
	if runtime.GOARCH == "amd64" {
		if hz := readCPUFreqHz(); hz > 0 {
			return hz
		}
	}
	return calibrateTicksPerSecond(10 * time.Millisecond)
}

func calibrateTicksPerSecond(d time.Duration) int64 {
	start := time.Now()
	t0 := now()
	for time.Since(start) < d {
		// spin
	}
	t1 := now()
	elapsed := time.Since(start)
	ticks := t1 - t0
	if elapsed <= 0 || ticks <= 0 {
		// Nothing reliable to report; assume a plain nanosecond clock so
		// callers still get a sane, if approximate, budget.
		return int64(time.Second)
	}
	return int64(float64(ticks) / elapsed.Seconds())
}
