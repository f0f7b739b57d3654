// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearRange(t *testing.T) {
	cases := []struct {
		name             string
		begin, end, step int64
		want             []int64
	}{
		{"basic", 0, 10, 2, []int64{0, 2, 4, 6, 8, 10}},
		{"single", 5, 5, 1, []int64{5}},
		{"exclusive of overshoot", 0, 9, 2, []int64{0, 2, 4, 6, 8}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, LinearRange(c.begin, c.end, c.step))
		})
	}
}

func TestLogRangeDedups(t *testing.T) {
	// A factor close to 1 would produce repeated integer values without
	// deduplication; LogRange must collapse consecutive repeats.
	got := LogRange(1, 8, 1.1)
	for i := 1; i < len(got); i++ {
		assert.NotEqual(t, got[i-1], got[i], "consecutive duplicate at index %d", i)
	}
	assert.Equal(t, int64(1), got[0])
	assert.Equal(t, int64(7), got[len(got)-1]) // 1.1^21 ~ 7.40; 1.1^22 ~ 8.14 exceeds end
}

func TestLogRangeMonotonic(t *testing.T) {
	got := LogRange(1, 1024, 2)
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i], got[i-1])
	}
}

func TestLogRangeInvalidFactor(t *testing.T) {
	assert.Nil(t, LogRange(1, 100, 1))
	assert.Nil(t, LogRange(1, 100, 0.5))
	assert.Nil(t, LogRange(1, 100, 0))
}
