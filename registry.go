// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import "sync"

// Entry is an immutable benchmark registration: a function, its display
// name, and the argument axes the Driver should sweep across it. Entries
// are created once, at Register time, and never mutated afterward.
type Entry struct {
	Func Func
	Name string
	Args [][]int64
}

// Func is a benchmark body. The Driver calls it exactly once per argument
// tuple, handing it exclusive use of a fresh State.
type Func func(*State)

var (
	registryMu sync.Mutex
	registry   []*Entry
)

// Register installs a new Entry in the process-wide registry and returns
// it. Idiomatic use is a package-level side-effecting declaration:
//
//	var _ = hermes.Register("BM_memcpy", benchMemcpy)
//	var _ = hermes.Register("BM_scale", benchScale, hermes.LinearRange(32, 512, 32))
//
// This is the Go analogue of original_source/hermes.hpp's BENCHMARK macro,
// which registers a function pointer as a static-initializer side effect;
// Go's own package-level var initialization runs at the same point in the
// program's lifecycle (before main), so registration is guaranteed
// complete before any RunAll call.
//
// Registering concurrently with a Driver run is not supported.
func Register(name string, fn Func, axes ...[]int64) *Entry {
	e := &Entry{Func: fn, Name: name, Args: axes}
	registryMu.Lock()
	registry = append(registry, e)
	registryMu.Unlock()
	return e
}

// Entries returns the entries registered so far, in registration order.
func Entries() []*Entry {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]*Entry, len(registry))
	copy(out, registry)
	return out
}
