// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"sort"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"

	"github.com/allocbench/allocstat/benchlabel"
	"github.com/allocbench/allocstat/benchstat"
)

// A BoxPlotSpec names one (pattern, size) condition that gets a box
// plot in the standard catalog. Pattern is the short pattern key.
type BoxPlotSpec struct {
	Pattern string
	Size    int
}

// DefaultBoxPlots are the representative conditions box-plotted by
// the standard catalog.
var DefaultBoxPlots = []BoxPlotSpec{
	{"immediate", 64},
	{"lifo", 256},
	{"random", 1024},
}

// Catalog returns the artifact names of the standard chart set for
// the given statistics table, in rendering order: per metric, the
// all-patterns facet, one chart per pattern, one heatmap per
// allocator, the comparison-ratio chart, the platform comparison,
// and the default box plots. The names are deterministic in the
// input, so repeated runs on the same data name the same artifacts.
func Catalog(rows []benchstat.Row) []string {
	patterns := make([]string, len(rows))
	allocators := make([]string, len(rows))
	for i := range rows {
		patterns[i] = rows[i].Key.Pattern
		allocators[i] = rows[i].Key.Allocator
	}
	patterns = slice.Nub(patterns).([]string)
	allocators = slice.Nub(allocators).([]string)
	sort.Strings(patterns)
	sort.Strings(allocators)

	var names []string
	for _, m := range benchstat.Metrics {
		names = append(names, Name("", KindAllPatterns, m))
		for _, p := range patterns {
			names = append(names, Name("", KindPattern, m, benchlabel.PatternKey(p)))
		}
		for _, a := range allocators {
			names = append(names, Name("", KindHeatmap, m, a))
		}
		names = append(names, Name("", KindComparisonRatio, m))
		names = append(names, Name("", KindPlatformComparison, m))
		for _, b := range DefaultBoxPlots {
			names = append(names, Name("", KindBoxPlot, m, b.Pattern, strconv.Itoa(b.Size)))
		}
	}
	return names
}
