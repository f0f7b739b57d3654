// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupEnvironmentNeverPanics(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	assert.NotPanics(t, func() {
		setupEnvironment(logger)
	})
}

func TestGovernorWarningStyleRendersText(t *testing.T) {
	out := governorWarningStyle.Render("scaling detected")
	assert.Contains(t, out, "scaling detected")
}
