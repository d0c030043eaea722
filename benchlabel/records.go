// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchlabel

import "github.com/allocbench/allocstat/benchrec"

// NormalizeRecords returns a copy of records with the platform and
// pattern columns replaced by their display labels. The input slice
// is not modified.
func NormalizeRecords(records []benchrec.Record) []benchrec.Record {
	out := make([]benchrec.Record, len(records))
	for i, r := range records {
		r.Platform = Platform(r.Platform)
		r.Pattern = Pattern(r.Pattern)
		out[i] = r
	}
	return out
}
