// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchstat computes summary statistics over allocator
// benchmark records and compares allocators against each other.
//
// Records are grouped by their condition key (platform, allocator,
// pattern, payload size); each group is an independent sample of that
// condition's distribution. Every statistic is reported in
// milliseconds. Statistics that are undefined for a group (the sample
// standard deviation of a single measurement) are NaN, never an
// error: they flow visibly into the exported tables.
package benchstat

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// nsToMs converts nanosecond measurements to milliseconds.
const nsToMs = 1e-6

// A Dist summarizes the distribution of one measurement column within
// one condition group. All values are in milliseconds.
type Dist struct {
	Mean   float64
	Std    float64 // sample standard deviation; NaN if n < 2
	Median float64
	P25    float64
	P75    float64
	Min    float64
	Max    float64
}

// summarize computes the Dist of a group's raw nanosecond values.
// It sorts values in place.
func summarize(values []float64) Dist {
	s := stats.Sample{Xs: values}
	s.Sort()

	std := math.NaN()
	if len(values) >= 2 {
		std = s.StdDev()
	}
	min, max := s.Bounds()

	return Dist{
		Mean:   s.Mean() * nsToMs,
		Std:    std * nsToMs,
		Median: quantile(s.Xs, 0.5) * nsToMs,
		P25:    quantile(s.Xs, 0.25) * nsToMs,
		P75:    quantile(s.Xs, 0.75) * nsToMs,
		Min:    min * nsToMs,
		Max:    max * nsToMs,
	}
}

// quantile returns the q'th quantile of sorted, interpolating
// linearly between order statistics at the fractional index
// q*(len-1) (the R-7 definition). stats.Sample.Quantile implements
// R-8, which interpolates at a different index and would shift the
// quartiles, so this is computed here rather than delegated.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[n-1]
	}
	idx := q * float64(n-1)
	lo := int(idx)
	frac := idx - float64(lo)
	if frac == 0 {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
