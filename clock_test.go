// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNowIsMonotonicNonDecreasing(t *testing.T) {
	prev := now()
	for i := 0; i < 1000; i++ {
		cur := now()
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestFencesDoNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		sfence()
		lfence()
		mfence()
	})
}

func TestTicksPerSecondIsPositive(t *testing.T) {
	assert.Greater(t, ticksPerSecond(), int64(0))
}
