// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"encoding/csv"
	"io"
	"strconv"
)

// csvHeader is the column layout of the statistics export: the four
// key columns, the group size, then the seven statistics of each
// measurement column.
var csvHeader = []string{
	"platform", "allocator", "pattern", "size_bytes", "n",
	"total_mean_ms", "total_std_ms", "total_median_ms",
	"total_p25_ms", "total_p75_ms", "total_min_ms", "total_max_ms",
	"latency_mean_ms", "latency_std_ms", "latency_median_ms",
	"latency_p25_ms", "latency_p75_ms", "latency_min_ms", "latency_max_ms",
}

// WriteCSV writes the statistics table to w as CSV, one row per
// condition key, sorted by (platform, pattern, allocator, size).
// Undefined statistics appear as empty cells.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	record := make([]string, 0, len(csvHeader))
	for _, r := range sortedRows(rows) {
		record = append(record[:0],
			r.Key.Platform,
			r.Key.Allocator,
			r.Key.Pattern,
			strconv.Itoa(r.Key.SizeBytes),
			strconv.Itoa(r.N),
		)
		for _, d := range [2]Dist{r.Total, r.Latency} {
			record = append(record,
				csvValue(d.Mean), csvValue(d.Std), csvValue(d.Median),
				csvValue(d.P25), csvValue(d.P75), csvValue(d.Min), csvValue(d.Max),
			)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
