// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux

package hermes

// readCPUFreqHz has no non-Linux implementation; probeTicksPerSecond falls
// back to self-calibration.
func readCPUFreqHz() int64 {
	return 0
}
