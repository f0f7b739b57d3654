// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64 || arm64

package hermes

// now returns a 64-bit tick counter that is monotonic within the calling
// CPU. On amd64 it reads the time-stamp counter; on arm64 it reads the
// virtual count register; elsewhere it falls back to the OS monotonic
// clock (see clock_other.go). The unit is opaque outside this package: a
// seconds budget is converted to ticks via ticksPerSecond.
func now() int64

// sfence issues a store fence: no store after the fence is visible before
// any store issued before the fence. Used before the start timestamp so
// nothing from a prior iteration leaks across it.
func sfence()

// lfence issues a load fence: no load after the fence executes before any
// load issued before the fence, and it also serializes instruction
// execution on amd64. Used after the start timestamp so the timed region's
// first load cannot execute early.
func lfence()

// mfence issues a full fence, ordering all loads and stores across it.
// Used before the stop timestamp so nothing from the timed region can be
// reordered past it.
func mfence()
