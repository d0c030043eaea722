// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"math"
	"testing"

	"github.com/allocbench/allocstat/benchrec"
)

// statRow builds a Row with the given total median, which is all
// CompareRatio reads for the Total metric.
func statRow(platform, allocator, pattern string, size int, medianMs float64) Row {
	return Row{
		Key: benchrec.Key{Platform: platform, Allocator: allocator, Pattern: pattern, SizeBytes: size},
		N:   1,
		Total: Dist{
			Mean: medianMs, Median: medianMs, P25: medianMs, P75: medianMs,
			Min: medianMs, Max: medianMs, Std: math.NaN(),
		},
		Latency: Dist{
			Mean: medianMs * 10, Median: medianMs * 10, P25: medianMs * 10,
			P75: medianMs * 10, Min: medianMs * 10, Max: medianMs * 10, Std: math.NaN(),
		},
	}
}

func TestCompareRatio(t *testing.T) {
	rows := []Row{
		statRow("p1", "box", "immediate", 64, 10),
		statRow("p1", "slab_warm", "immediate", 64, 5),
		// Present only in the numerator subset: no output row.
		statRow("p1", "box", "immediate", 128, 7),
		// A third allocator never participates.
		statRow("p1", "bufpool_warm", "immediate", 64, 3),
	}

	tab := CompareRatio(rows, "box", "slab_warm", Total)
	if len(tab.Rows) != 1 {
		t.Fatalf("got %d ratio rows, want 1", len(tab.Rows))
	}
	r := tab.Rows[0]
	if r.RatioKey != (RatioKey{"p1", "immediate", 64}) {
		t.Errorf("got key %+v", r.RatioKey)
	}
	if r.NumMs != 10 || r.DenMs != 5 || r.Ratio != 2.0 {
		t.Errorf("got %v/%v = %v, want 10/5 = 2", r.NumMs, r.DenMs, r.Ratio)
	}
	if tab.Unmatched != 1 {
		t.Errorf("Unmatched = %d, want 1", tab.Unmatched)
	}
}

func TestCompareRatioMetricSelection(t *testing.T) {
	rows := []Row{
		statRow("p1", "box", "lifo", 64, 10),
		statRow("p1", "slab_warm", "lifo", 64, 4),
	}
	tab := CompareRatio(rows, "box", "slab_warm", Latency)
	if len(tab.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(tab.Rows))
	}
	// Latency medians are 100 and 40.
	if r := tab.Rows[0]; r.NumMs != 100 || r.DenMs != 40 || r.Ratio != 2.5 {
		t.Errorf("got %v/%v = %v, want 100/40 = 2.5", r.NumMs, r.DenMs, r.Ratio)
	}
}

func TestCompareRatioUnmatchedBothSides(t *testing.T) {
	rows := []Row{
		statRow("p1", "box", "lifo", 64, 10),
		statRow("p1", "slab_warm", "lifo", 64, 5),
		// One point covered only by the numerator, two only by
		// the denominator.
		statRow("p1", "box", "lifo", 128, 7),
		statRow("p2", "slab_warm", "lifo", 64, 5),
		statRow("p2", "slab_warm", "fifo", 64, 5),
	}
	tab := CompareRatio(rows, "box", "slab_warm", Total)
	if len(tab.Rows) != 1 {
		t.Errorf("got %d rows, want 1", len(tab.Rows))
	}
	if tab.Unmatched != 3 {
		t.Errorf("Unmatched = %d, want 3", tab.Unmatched)
	}
}

func TestCompareRatioZeroDenominator(t *testing.T) {
	rows := []Row{
		statRow("p1", "box", "lifo", 64, 10),
		statRow("p1", "slab_warm", "lifo", 64, 0),
	}
	tab := CompareRatio(rows, "box", "slab_warm", Total)
	if len(tab.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(tab.Rows))
	}
	if r := tab.Rows[0].Ratio; !math.IsInf(r, 1) {
		t.Errorf("10/0 = %v, want +Inf", r)
	}
}

func TestCompareRatioSorted(t *testing.T) {
	rows := []Row{
		statRow("p2", "box", "lifo", 64, 2),
		statRow("p2", "slab_warm", "lifo", 64, 1),
		statRow("p1", "box", "random", 64, 2),
		statRow("p1", "slab_warm", "random", 64, 1),
		statRow("p1", "box", "lifo", 256, 2),
		statRow("p1", "slab_warm", "lifo", 256, 1),
		statRow("p1", "box", "lifo", 64, 2),
		statRow("p1", "slab_warm", "lifo", 64, 1),
	}
	tab := CompareRatio(rows, "box", "slab_warm", Total)
	want := []RatioKey{
		{"p1", "lifo", 64},
		{"p1", "lifo", 256},
		{"p1", "random", 64},
		{"p2", "lifo", 64},
	}
	if len(tab.Rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(tab.Rows), len(want))
	}
	for i, r := range tab.Rows {
		if r.RatioKey != want[i] {
			t.Errorf("row %d: got %+v, want %+v", i, r.RatioKey, want[i])
		}
	}
}

func TestRatioGeoMean(t *testing.T) {
	tab := &RatioTable{Rows: []RatioRow{{Ratio: 2}, {Ratio: 8}}}
	if got := tab.GeoMean(); math.Abs(got-4) > 1e-12 {
		t.Errorf("geomean(2, 8) = %v, want 4", got)
	}
	empty := &RatioTable{}
	if got := empty.GeoMean(); !math.IsNaN(got) {
		t.Errorf("geomean of empty table = %v, want NaN", got)
	}
}
