// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"math"
	"testing"
)

func TestQuantile(t *testing.T) {
	check := func(sorted []float64, q, want float64) {
		t.Helper()
		if got := quantile(sorted, q); got != want {
			t.Errorf("quantile(%v, %v) = %v, want %v", sorted, q, got, want)
		}
	}

	four := []float64{100, 200, 300, 400}
	check(four, 0.5, 250)
	check(four, 0.25, 175)
	check(four, 0.75, 325)
	check(four, 0, 100)
	check(four, 1, 400)

	// Odd-length sample: the median is an order statistic, the
	// quartiles interpolate.
	three := []float64{10, 20, 40}
	check(three, 0.5, 20)
	check(three, 0.25, 15)
	check(three, 0.75, 30)

	one := []float64{7}
	check(one, 0.25, 7)
	check(one, 0.5, 7)
	check(one, 0.75, 7)

	if got := quantile(nil, 0.5); !math.IsNaN(got) {
		t.Errorf("quantile of empty sample = %v, want NaN", got)
	}
}

func TestSummarizeStd(t *testing.T) {
	// Sample standard deviation uses the n-1 denominator:
	// [1, 3] ns has std sqrt(2) ns.
	d := summarize([]float64{1, 3})
	if want := math.Sqrt(2) * nsToMs; math.Abs(d.Std-want) > 1e-18 {
		t.Errorf("std = %v, want %v", d.Std, want)
	}
	if d.Mean != 2*nsToMs {
		t.Errorf("mean = %v, want %v", d.Mean, 2*nsToMs)
	}
}
