// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"sort"

	"github.com/allocbench/allocstat/benchrec"
)

// keyLess orders condition keys by (platform, pattern, allocator,
// size). This is the row order of every exported table.
func keyLess(a, b benchrec.Key) bool {
	if a.Platform != b.Platform {
		return a.Platform < b.Platform
	}
	if a.Pattern != b.Pattern {
		return a.Pattern < b.Pattern
	}
	if a.Allocator != b.Allocator {
		return a.Allocator < b.Allocator
	}
	return a.SizeBytes < b.SizeBytes
}

// sortKeys sorts condition keys into table order.
func sortKeys(keys []benchrec.Key) {
	sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })
}

// SortRows sorts rows into table order, in place.
func SortRows(rows []Row) {
	sort.Slice(rows, func(i, j int) bool { return keyLess(rows[i].Key, rows[j].Key) })
}

// sortedRows returns rows in table order without disturbing the
// caller's slice.
func sortedRows(rows []Row) []Row {
	if sort.SliceIsSorted(rows, func(i, j int) bool { return keyLess(rows[i].Key, rows[j].Key) }) {
		return rows
	}
	out := make([]Row, len(rows))
	copy(out, rows)
	SortRows(out)
	return out
}
