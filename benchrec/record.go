// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchrec reads raw allocator benchmark measurements.
//
// Each benchmark run produces one CSV batch file holding one row per
// measured sample. A batch carries a header row naming the columns;
// the required columns are platform, allocator, pattern, size_bytes,
// total_ns, and latency_ns, in any order. Repeated samples of the
// same experimental condition appear as separate rows.
package benchrec

import "fmt"

// A Record is one benchmark sample: a single timed run of one
// allocator under one experimental condition.
type Record struct {
	// Platform identifies the machine the sample was taken on.
	Platform string

	// Allocator identifies the allocation strategy, e.g. "box",
	// "slab_cold", "slab_warm". The set is open-ended.
	Allocator string

	// Pattern identifies the release order of the allocations:
	// "immediate", "lifo", "fifo", or "random".
	Pattern string

	// SizeBytes is the payload size under test. Always positive.
	SizeBytes int

	// TotalNs is the wall time of the full benchmark run at this
	// condition, in nanoseconds.
	TotalNs float64

	// LatencyNs is the wall time of one representative operation,
	// in nanoseconds.
	LatencyNs float64
}

// A Key identifies one experimental condition. Multiple Records share
// a Key; each is an independent sample of that condition's
// distribution.
type Key struct {
	Platform  string
	Allocator string
	Pattern   string
	SizeBytes int
}

// Key returns the condition key of r.
func (r *Record) Key() Key {
	return Key{r.Platform, r.Allocator, r.Pattern, r.SizeBytes}
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s/%d", k.Platform, k.Allocator, k.Pattern, k.SizeBytes)
}

// Column names of the batch CSV schema.
const (
	ColPlatform  = "platform"
	ColAllocator = "allocator"
	ColPattern   = "pattern"
	ColSizeBytes = "size_bytes"
	ColTotalNs   = "total_ns"
	ColLatencyNs = "latency_ns"
)

// columns is the canonical column order used when writing batches.
var columns = []string{
	ColPlatform, ColAllocator, ColPattern, ColSizeBytes, ColTotalNs, ColLatencyNs,
}
