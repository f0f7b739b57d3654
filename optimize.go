// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

// sink is written by DoNotOptimize and never read back by any code the
// compiler can see reaching a meaningful use, but the write itself is
// enough to convince the compiler the value escapes and must actually be
// produced.
var sink any

// DoNotOptimize forces the compiler to treat v as observed, preventing it
// from proving a measured computation is dead and eliding it entirely. It
// is the Go equivalent of original_source/hermes.hpp's do_not_optimize,
// which round-trips its argument through an inline-asm memory clobber;
// escaping v to a package-level variable through an exported func call
// serves the same purpose without assembly, at the cost of one interface
// allocation per call when v does not already escape for other reasons.
//
//go:noinline
func DoNotOptimize[T any](v T) {
	sink = v
}
