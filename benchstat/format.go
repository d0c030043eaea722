// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"math"
	"strconv"
)

// csvValue renders a statistic for machine consumption: full
// precision, and an empty cell for an undefined value so the gap is
// visible without poisoning numeric parsers.
func csvValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// textValue renders a millisecond statistic for display. Undefined
// values print as NaN.
func textValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
