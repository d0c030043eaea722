// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart selects the tabular data each comparison chart
// consumes and derives the deterministic names of the chart
// artifacts.
//
// Rendering is out of scope here: a renderer takes one of these
// projections plus the matching artifact name and encodes the image
// however it likes. Every function is a read-only view over the
// statistics table or the raw record table.
package benchchart

import (
	"strings"

	"github.com/allocbench/allocstat/benchrec"
	"github.com/allocbench/allocstat/benchstat"
)

// A Kind names one chart type of the fixed catalog.
type Kind string

const (
	// KindAllPatterns is the faceted size-vs-median line chart over
	// all patterns.
	KindAllPatterns Kind = "all_patterns"
	// KindPattern is the size-vs-median line chart of one pattern.
	KindPattern Kind = "pattern"
	// KindHeatmap is the pattern-by-size median grid of one
	// allocator.
	KindHeatmap Kind = "heatmap"
	// KindComparisonRatio is the allocator-pair speed-ratio chart.
	KindComparisonRatio Kind = "comparison_ratio"
	// KindPlatformComparison is the platform-keyed variant of the
	// faceted line chart.
	KindPlatformComparison Kind = "platform_comparison"
	// KindBoxPlot is the raw-sample box plot of one condition.
	KindBoxPlot Kind = "boxplot"
)

// Name returns the deterministic base name of one chart artifact:
// the platform short key (empty for charts spanning all platforms),
// the chart kind, any qualifiers (pattern key, allocator, size), and
// the metric, joined by underscores. Identical inputs always yield
// the identical name, so repeated runs overwrite rather than
// accumulate artifacts.
func Name(platformKey string, kind Kind, metric benchstat.Metric, qualifiers ...string) string {
	parts := make([]string, 0, len(qualifiers)+3)
	if platformKey != "" {
		parts = append(parts, platformKey)
	}
	parts = append(parts, string(kind))
	parts = append(parts, qualifiers...)
	parts = append(parts, metric.String())
	return strings.Join(parts, "_")
}

// A SeriesPoint is one point of a median-time line chart.
type SeriesPoint struct {
	Platform  string
	Allocator string
	Pattern   string
	SizeBytes int
	MedianMs  float64
}

func seriesPoint(r *benchstat.Row, metric benchstat.Metric) SeriesPoint {
	return SeriesPoint{
		Platform:  r.Key.Platform,
		Allocator: r.Key.Allocator,
		Pattern:   r.Key.Pattern,
		SizeBytes: r.Key.SizeBytes,
		MedianMs:  r.Dist(metric).Median,
	}
}

// PatternSeries projects the line-chart data of one pattern: size vs
// median time, one series per allocator and platform.
func PatternSeries(rows []benchstat.Row, pattern string, metric benchstat.Metric) []SeriesPoint {
	var pts []SeriesPoint
	for i := range rows {
		if rows[i].Key.Pattern == pattern {
			pts = append(pts, seriesPoint(&rows[i], metric))
		}
	}
	return pts
}

// AllPatternsSeries projects the faceted line-chart data: every
// pattern, size vs median time.
func AllPatternsSeries(rows []benchstat.Row, metric benchstat.Metric) []SeriesPoint {
	pts := make([]SeriesPoint, len(rows))
	for i := range rows {
		pts[i] = seriesPoint(&rows[i], metric)
	}
	return pts
}

// PlatformComparison projects the platform-comparison chart data. It
// carries the same points as AllPatternsSeries; the renderer keys
// color by platform instead of allocator.
func PlatformComparison(rows []benchstat.Row, metric benchstat.Metric) []SeriesPoint {
	return AllPatternsSeries(rows, metric)
}

// A HeatmapCell is one cell of an allocator's pattern-by-size median
// grid.
type HeatmapCell struct {
	Platform  string
	Pattern   string
	SizeBytes int
	MedianMs  float64
}

// Heatmap projects the heatmap cells of one allocator, one grid per
// platform.
func Heatmap(rows []benchstat.Row, allocator string, metric benchstat.Metric) []HeatmapCell {
	var cells []HeatmapCell
	for i := range rows {
		r := &rows[i]
		if r.Key.Allocator != allocator {
			continue
		}
		cells = append(cells, HeatmapCell{
			Platform:  r.Key.Platform,
			Pattern:   r.Key.Pattern,
			SizeBytes: r.Key.SizeBytes,
			MedianMs:  r.Dist(metric).Median,
		})
	}
	return cells
}

// A BoxSample is one raw sample of a box plot, in milliseconds.
type BoxSample struct {
	Platform  string
	Allocator string
	TimeMs    float64
}

// BoxPlotSamples projects the raw samples of one (pattern, size)
// condition for a box plot, converted to milliseconds.
func BoxPlotSamples(records []benchrec.Record, pattern string, size int, metric benchstat.Metric) []BoxSample {
	var samples []BoxSample
	for i := range records {
		r := &records[i]
		if r.Pattern != pattern || r.SizeBytes != size {
			continue
		}
		v := r.TotalNs
		if metric == benchstat.Latency {
			v = r.LatencyNs
		}
		samples = append(samples, BoxSample{
			Platform:  r.Platform,
			Allocator: r.Allocator,
			TimeMs:    v * 1e-6,
		})
	}
	return samples
}

// A RatioPoint is one point of the allocator-pair comparison chart.
type RatioPoint struct {
	Platform  string
	Pattern   string
	SizeBytes int
	Ratio     float64
}

// RatioSeries projects a ratio table into comparison-chart points.
// The chart's reference line sits at ratio 1.
func RatioSeries(t *benchstat.RatioTable) []RatioPoint {
	pts := make([]RatioPoint, len(t.Rows))
	for i, r := range t.Rows {
		pts[i] = RatioPoint{
			Platform:  r.Platform,
			Pattern:   r.Pattern,
			SizeBytes: r.SizeBytes,
			Ratio:     r.Ratio,
		}
	}
	return pts
}
