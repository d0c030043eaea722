// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import "fmt"

// A Metric selects one of the two measurement columns of a record.
type Metric int

const (
	// Total is the wall time of the full benchmark run.
	Total Metric = iota
	// Latency is the wall time of one representative operation.
	Latency
)

// Metrics lists all metrics, in display order.
var Metrics = [...]Metric{Total, Latency}

// String returns the metric's column prefix ("total" or "latency").
func (m Metric) String() string {
	switch m {
	case Total:
		return "total"
	case Latency:
		return "latency"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric is the inverse of String.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "total":
		return Total, nil
	case "latency":
		return Latency, nil
	}
	return 0, fmt.Errorf("unknown metric %q", s)
}
