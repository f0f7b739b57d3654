// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import (
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// governorWarningStyle renders the "CPU scaling detected" message in
// ANSI-yellow, matching the color the source's setup_affinity prints with
// the literal escape sequence "\033[33;1m".
var governorWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)

// setupEnvironment pins the calling goroutine's underlying OS thread to its
// current CPU, raises its scheduling priority, and checks (and, best
// effort, fixes) the CPU frequency governor. Every step is best-effort and
// silent on platforms or configurations where it does not apply; nothing
// here is fatal.
func setupEnvironment(logger *log.Logger) {
	cpu, ok := currentCPU()
	if !ok {
		return
	}

	if governor, path, ok := readGovernor(cpu); ok && governor != "performance" {
		fmt.Fprint(os.Stderr, governorWarningStyle.Render(
			"WARNING: CPU scaling detected! Run this to disable:\n"+
				"sudo cpupower frequency-set --governor performance")+"\n")
		if err := writeGovernor(path, "performance"); err != nil {
			logger.Printf("hermes: could not set governor to performance (continuing): %v", err)
		}
	}

	if err := pinToCPU(cpu); err != nil {
		logger.Printf("hermes: could not pin to cpu %d (continuing): %v", cpu, err)
	}
	if err := raisePriority(); err != nil {
		logger.Printf("hermes: could not raise scheduling priority (continuing): %v", err)
	}
}
