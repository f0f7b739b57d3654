// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import (
	"math"
	"slices"
)

// Row is the per-reported-result record: Median, Min and Max are ticks;
// Mean and StdDev are fractional ticks.
type Row struct {
	Median  float64
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
	Count   int64
}

// reduce turns a State's completed records into a Row in four phases:
// full-sample reduction, outlier filtering, median of the retained set,
// then fixed-overhead correction.
func reduce(s *State, opts Options) Row {
	records := s.recordsCopy()
	if len(records) == 0 {
		return Row{}
	}

	count, sum, sumSq, min, max := accumulate(records)
	mean, stddev := meanStdDev(count, sum, sumSq)

	if opts.DeviationFilter != FilterNone {
		kept := filterOutliers(records, opts.DeviationFilter, mean, stddev)
		if len(kept) > 0 {
			records = kept
			count, sum, sumSq, min, max = accumulate(records)
			mean, stddev = meanStdDev(count, sum, sumSq)
		}
	}

	median := float64(medianOf(records))

	overhead := float64(opts.FixedOverhead)
	return Row{
		Median: median - overhead,
		Mean:   mean - overhead,
		StdDev: stddev,
		Min:    float64(min) - overhead,
		Max:    float64(max) - overhead,
		Count:  count,
	}
}

// accumulate computes count, sum, sum-of-squares, min and max over records
// in one pass.
func accumulate(records []int64) (count int64, sum, sumSq float64, min, max int64) {
	min = records[0]
	max = records[0]
	for _, x := range records {
		sum += float64(x)
		sumSq += float64(x) * float64(x)
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return int64(len(records)), sum, sumSq, min, max
}

// meanStdDev derives the population mean and standard deviation from the
// sums accumulate produced.
func meanStdDev(count int64, sum, sumSq float64) (mean, stddev float64) {
	if count == 0 {
		return 0, 0
	}
	n := float64(count)
	mean = sum / n
	variance := sumSq/n - mean*mean
	if variance < 0 {
		// Guards against a tiny negative value from floating-point
		// cancellation when every record is equal.
		variance = 0
	}
	return mean, math.Sqrt(variance)
}

// filterOutliers rejects records too far from the sample center and
// returns the retained subset. Sigma mode retains |x-mean| <= 3*stddev;
// MAD mode retains |x-median| <= 12*MAD, where MAD is the median of
// |x-median(x)|. 12 is used rather than the more common 3, chosen for
// the heavy-tailed noise typical of wall-clock timing.
func filterOutliers(records []int64, filter DeviationFilter, mean, stddev float64) []int64 {
	switch filter {
	case FilterSigma:
		var kept []int64
		bound := 3 * stddev
		for _, x := range records {
			if math.Abs(float64(x)-mean) <= bound {
				kept = append(kept, x)
			}
		}
		return kept

	case FilterMAD:
		median := medianOf(records)
		deviations := make([]int64, len(records))
		for i, x := range records {
			deviations[i] = absInt64(x - median)
		}
		mad := medianOf(deviations)
		bound := 12 * mad
		var kept []int64
		for _, x := range records {
			if absInt64(x-median) <= bound {
				kept = append(kept, x)
			}
		}
		return kept

	default:
		return records
	}
}

// medianOf returns the median of records by fully sorting a private
// scratch copy (not by a partial, order-statistic selection); the caller's
// slice (and, in turn, State's stored chunks) is never reordered. For an even-length input the
// two middle elements are averaged with integer division.
func medianOf(records []int64) int64 {
	n := len(records)
	if n == 0 {
		return 0
	}
	scratch := slices.Clone(records)
	// A full sort of the scratch copy is a simpler, still-correct stand-in
	// for the source's std::nth_element-based order-statistic selection;
	// the important part is that neither the caller's slice nor State's
	// stored chunks are ever reordered.
	slices.Sort(scratch)
	if n%2 == 1 {
		return scratch[n/2]
	}
	return (scratch[n/2-1] + scratch[n/2]) / 2
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
