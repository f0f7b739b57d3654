// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package hermes

import (
	"os"
	"strconv"
	"strings"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// schedParam mirrors the kernel's struct sched_param, which golang.org/x/sys/unix
// does not expose a binding for.
type schedParam struct {
	Priority int32
}

// schedGetcpu wraps the getcpu(2) syscall, since golang.org/x/sys/unix does not
// expose a SchedGetcpu binding.
func schedGetcpu() (int, error) {
	var cpu, node uint32
	_, _, errno := unix.Syscall(unix.SYS_GETCPU, uintptr(unsafe.Pointer(&cpu)), uintptr(unsafe.Pointer(&node)), 0)
	if errno != 0 {
		return 0, errno
	}
	return int(cpu), nil
}

// schedGetPriorityMax wraps the sched_get_priority_max(2) syscall, since
// golang.org/x/sys/unix does not expose a binding for it.
func schedGetPriorityMax(policy int) (int, error) {
	r1, _, errno := unix.Syscall(unix.SYS_SCHED_GET_PRIORITY_MAX, uintptr(policy), 0, 0)
	if errno != 0 {
		return 0, errno
	}
	return int(r1), nil
}

// schedSetscheduler wraps the sched_setscheduler(2) syscall, since
// golang.org/x/sys/unix does not expose a binding for it.
func schedSetscheduler(pid, policy int, param *schedParam) error {
	_, _, errno := unix.Syscall(unix.SYS_SCHED_SETSCHEDULER, uintptr(pid), uintptr(policy), uintptr(unsafe.Pointer(param)))
	if errno != 0 {
		return errno
	}
	return nil
}

// currentCPU returns the CPU the calling thread is presently scheduled on,
// per sched_getcpu(2). This mirrors setup_affinity's use of getcpu(2) in
// original_source/hermes.cpp.
func currentCPU() (int, bool) {
	cpu, err := schedGetcpu()
	if err != nil {
		return 0, false
	}
	return cpu, true
}

func governorPath(cpu int) string {
	return "/sys/devices/system/cpu/cpu" + strconv.Itoa(cpu) + "/cpufreq/scaling_governor"
}

// readGovernor reads the scaling governor for cpu, tolerating a missing
// cpufreq sysfs entry (e.g. inside containers or on VMs without cpufreq).
func readGovernor(cpu int) (governor, path string, ok bool) {
	path = governorPath(cpu)
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", path, false
	}
	return strings.TrimSpace(string(buf)), path, true
}

// writeGovernor best-effort writes "performance" to the governor sysfs
// file. This routinely fails without root, which is not treated as fatal.
func writeGovernor(path, governor string) error {
	if err := os.WriteFile(path, []byte(governor), 0644); err != nil {
		return errors.Wrapf(err, "write governor %q", path)
	}
	return nil
}

// pinToCPU pins the calling OS thread to cpu via sched_setaffinity, the way
// original_source/hermes.cpp's setup_affinity calls sched_setaffinity(2)
// directly on the current thread id.
//
// The caller must have already called runtime.LockOSThread, since Go
// reuses OS threads across goroutines and an affinity mask set here would
// otherwise apply to whichever goroutine the scheduler runs next on this
// thread.
func pinToCPU(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return errors.Wrap(err, "sched_setaffinity")
	}
	return nil
}

// raisePriority raises the calling thread to the maximum SCHED_BATCH
// priority, mirroring setup_affinity's sched_setscheduler(SCHED_BATCH) call.
// SCHED_BATCH is for CPU-intensive, non-interactive work, which is exactly
// a benchmark loop; it avoids being deprioritized as an interactive task
// without requiring the real-time privileges SCHED_FIFO would need.
func raisePriority() error {
	prio, err := schedGetPriorityMax(unix.SCHED_BATCH)
	if err != nil {
		return errors.Wrap(err, "sched_get_priority_max")
	}
	param := schedParam{Priority: int32(prio)}
	if err := schedSetscheduler(0, unix.SCHED_BATCH, &param); err != nil {
		return errors.Wrap(err, "sched_setscheduler")
	}
	return nil
}
