// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A RatioKey identifies one comparison point: a condition key with
// the allocator dimension dropped.
type RatioKey struct {
	Platform  string
	Pattern   string
	SizeBytes int
}

// A RatioRow compares the median timing of two allocators at one
// comparison point. Ratio > 1 means the denominator allocator is
// faster; < 1 means the numerator is.
type RatioRow struct {
	RatioKey

	// NumMs and DenMs are the median milliseconds of the numerator
	// and denominator allocator at this point.
	NumMs float64
	DenMs float64

	// Ratio is NumMs / DenMs. A zero denominator yields +Inf (or
	// NaN for 0/0); callers must expect non-finite values.
	Ratio float64
}

// A RatioTable holds the per-point ratios of one allocator pair for
// one metric.
type RatioTable struct {
	// Numerator and Denominator are the compared allocator names.
	Numerator, Denominator string

	// Metric is the measurement column the medians came from.
	Metric Metric

	// Rows holds one entry per comparison point covered by both
	// allocators, sorted by (platform, pattern, size).
	Rows []RatioRow

	// Unmatched counts the comparison points covered by only one
	// of the two allocators. Those points produce no row; the count
	// is kept so partial coverage stays visible to callers.
	Unmatched int
}

// CompareRatio joins the rows of two allocators on (platform,
// pattern, size) and computes the ratio of their median timings for
// the given metric. Points present in only one subset are dropped
// from the result and counted in Unmatched.
func CompareRatio(rows []Row, numerator, denominator string, metric Metric) *RatioTable {
	num := medianByPoint(rows, numerator, metric)
	den := medianByPoint(rows, denominator, metric)

	t := &RatioTable{Numerator: numerator, Denominator: denominator, Metric: metric}
	for k, n := range num {
		d, ok := den[k]
		if !ok {
			t.Unmatched++
			continue
		}
		t.Rows = append(t.Rows, RatioRow{
			RatioKey: k,
			NumMs:    n,
			DenMs:    d,
			Ratio:    n / d,
		})
	}
	t.Unmatched += len(den) - len(t.Rows)

	sort.Slice(t.Rows, func(i, j int) bool {
		a, b := t.Rows[i].RatioKey, t.Rows[j].RatioKey
		if a.Platform != b.Platform {
			return a.Platform < b.Platform
		}
		if a.Pattern != b.Pattern {
			return a.Pattern < b.Pattern
		}
		return a.SizeBytes < b.SizeBytes
	})
	return t
}

// medianByPoint indexes the median of the given metric by comparison
// point for one allocator's rows. Aggregation produces at most one
// row per condition key, so the index is collision-free.
func medianByPoint(rows []Row, allocator string, metric Metric) map[RatioKey]float64 {
	m := make(map[RatioKey]float64)
	for i := range rows {
		r := &rows[i]
		if r.Key.Allocator != allocator {
			continue
		}
		k := RatioKey{r.Key.Platform, r.Key.Pattern, r.Key.SizeBytes}
		m[k] = r.Dist(metric).Median
	}
	return m
}

// GeoMean returns the geometric mean of the table's ratios, the
// single-number summary of how the two allocators compare across all
// covered points. It is NaN if the table is empty or any ratio is
// zero or negative; non-finite ratios propagate.
func (t *RatioTable) GeoMean() float64 {
	ratios := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		ratios[i] = r.Ratio
	}
	return stats.GeoMean(ratios)
}
