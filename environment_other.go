// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux

package hermes

// currentCPU, the governor check, thread pinning and scheduling priority
// are all Linux-specific in original_source/hermes.cpp (guarded by
// __linux__); everywhere else setup_affinity is a no-op, so setupEnvironment silently
// does nothing here too.
func currentCPU() (int, bool)                             { return 0, false }
func readGovernor(cpu int) (governor, path string, ok bool) { return "", "", false }
func writeGovernor(path, governor string) error           { return nil }
func pinToCPU(cpu int) error                               { return nil }
func raisePriority() error                                 { return nil }
