// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedianOfOddEven(t *testing.T) {
	assert.Equal(t, int64(3), medianOf([]int64{5, 1, 3, 2, 4}))
	assert.Equal(t, int64(2), medianOf([]int64{1, 2, 3, 4})) // (2+3)/2 = 2 (integer)
	assert.Equal(t, int64(0), medianOf(nil))
}

func TestMedianOfDoesNotMutateInput(t *testing.T) {
	records := []int64{9, 1, 5, 3}
	orig := append([]int64(nil), records...)
	medianOf(records)
	assert.Equal(t, orig, records)
}

func TestMeanStdDevAllEqual(t *testing.T) {
	// Every record equal must not produce a negative-variance NaN from
	// floating point cancellation.
	mean, stddev := meanStdDev(4, 40, 400)
	assert.Equal(t, 10.0, mean)
	assert.Equal(t, 0.0, stddev)
}

func TestFilterOutliersMADIsIdempotent(t *testing.T) {
	records := []int64{100, 101, 99, 100, 102, 98, 100, 5000}
	_, sum, sumSq, _, _ := accumulate(records)
	mean, stddev := meanStdDev(int64(len(records)), sum, sumSq)

	once := filterOutliers(records, FilterMAD, mean, stddev)
	require.NotEmpty(t, once)

	_, sum2, sumSq2, _, _ := accumulate(once)
	mean2, stddev2 := meanStdDev(int64(len(once)), sum2, sumSq2)
	twice := filterOutliers(once, FilterMAD, mean2, stddev2)

	assert.Equal(t, once, twice)
}

func TestFilterOutliersMADRejectsFarOutlier(t *testing.T) {
	records := []int64{100, 101, 99, 100, 102, 98, 100, 1_000_000}
	_, sum, sumSq, _, _ := accumulate(records)
	mean, stddev := meanStdDev(int64(len(records)), sum, sumSq)

	kept := filterOutliers(records, FilterMAD, mean, stddev)
	assert.NotContains(t, kept, int64(1_000_000))
}

func TestFilterOutliersNoneKeepsAll(t *testing.T) {
	records := []int64{1, 2, 3, 1_000_000}
	kept := filterOutliers(records, FilterNone, 0, 0)
	assert.Equal(t, records, kept)
}

func TestReduceEmptyStateIsZeroRow(t *testing.T) {
	s := newState(DefaultOptions(), nil)
	row := reduce(s, DefaultOptions())
	assert.Equal(t, Row{}, row)
}

func TestReduceAppliesFixedOverhead(t *testing.T) {
	s := newState(DefaultOptions(), nil)
	for _, dt := range []int64{100, 100, 100, 100} {
		s.stop(s.t0 + dt)
	}
	opts := DefaultOptions()
	opts.DeviationFilter = FilterNone
	opts.FixedOverhead = 10
	row := reduce(s, opts)
	assert.Equal(t, 90.0, row.Median)
	assert.Equal(t, 90.0, row.Mean)
	assert.Equal(t, 90.0, row.Min)
	assert.Equal(t, 90.0, row.Max)
	assert.Equal(t, int64(4), row.Count)
}
