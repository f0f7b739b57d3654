// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64

package hermes

// defaultFixedOverhead cancels RDTSC's own read cost, empirically around
// 44-52 cycles on modern x86_64.
func defaultFixedOverhead() int64 { return 48 }
