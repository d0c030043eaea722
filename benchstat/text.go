// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// FormatText writes an aligned text table of one metric's statistics
// to w, sorted into table order.
func FormatText(w io.Writer, rows []Row, metric Metric) error {
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "platform\tpattern\tallocator\tsize\tn\t%[1]s mean\t%[1]s std\t%[1]s median\t%[1]s p25\t%[1]s p75\t%[1]s min\t%[1]s max\n", metric)
	for _, r := range sortedRows(rows) {
		d := r.Dist(metric)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Key.Platform, r.Key.Pattern, r.Key.Allocator, r.Key.SizeBytes, r.N,
			textValue(d.Mean), textValue(d.Std), textValue(d.Median),
			textValue(d.P25), textValue(d.P75), textValue(d.Min), textValue(d.Max))
	}
	return tw.Flush()
}

// FormatText writes the ratio table to w as aligned text, one row per
// comparison point, followed by the geometric-mean summary line.
func (t *RatioTable) FormatText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "platform\tpattern\tsize\t%s ms\t%s ms\tratio\n", t.Numerator, t.Denominator)
	for _, r := range t.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			r.Platform, r.Pattern, r.SizeBytes,
			textValue(r.NumMs), textValue(r.DenMs), textValue(r.Ratio))
	}
	fmt.Fprintf(tw, "geomean\t\t\t\t\t%s\n", textValue(t.GeoMean()))
	return tw.Flush()
}

// Header returns a one-line description of the comparison, e.g.
// "box vs slab_warm (total, >1 means slab_warm is faster)".
func (t *RatioTable) Header() string {
	return t.Numerator + " vs " + t.Denominator +
		" (" + t.Metric.String() + ", >1 means " + t.Denominator + " is faster)" +
		unmatchedNote(t.Unmatched)
}

func unmatchedNote(n int) string {
	if n == 0 {
		return ""
	}
	return " [" + strconv.Itoa(n) + " unmatched]"
}
