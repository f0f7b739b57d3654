// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !amd64

package hermes

// defaultFixedOverhead is 0 outside amd64: the nonzero constant is
// x86_64-specific, since the cost of reading the counter itself varies
// too much by instruction and platform to be worth guessing elsewhere.
func defaultFixedOverhead() int64 { return 0 }
