// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"runtime"
	"sync"

	"github.com/allocbench/allocstat/benchrec"
)

// A Row holds the summary statistics of one condition group: the
// condition key, the group size, and a Dist per measurement column.
type Row struct {
	Key benchrec.Key

	// N is the number of samples in the group. Groups need not be
	// the same size.
	N int

	Total   Dist
	Latency Dist
}

// Dist returns the statistics of the given measurement column.
// It panics if m is not a known Metric.
func (r *Row) Dist(m Metric) Dist {
	switch m {
	case Total:
		return r.Total
	case Latency:
		return r.Latency
	}
	panic("unknown metric " + m.String())
}

// group accumulates the raw values of one condition key.
type group struct {
	total   []float64
	latency []float64
}

// Aggregate groups records by condition key and summarizes each
// group, returning one Row per distinct key sorted by
// (platform, pattern, allocator, size). The result depends only on
// the multiset of input records, not their order.
func Aggregate(records []benchrec.Record) []Row {
	groups := make(map[benchrec.Key]*group)
	for i := range records {
		r := &records[i]
		g := groups[r.Key()]
		if g == nil {
			g = new(group)
			groups[r.Key()] = g
		}
		g.total = append(g.total, r.TotalNs)
		g.latency = append(g.latency, r.LatencyNs)
	}

	keys := make([]benchrec.Key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sortKeys(keys)

	// Summarizing groups is independent and CPU-bound, so spread it
	// over a bounded set of goroutines. Each goroutine writes only
	// its own slot, so the output order is fixed by the sorted keys.
	rows := make([]Row, len(keys))
	limit := make(chan struct{}, 2*runtime.GOMAXPROCS(-1))
	var wg sync.WaitGroup
	wg.Add(len(keys))
	for i, k := range keys {
		limit <- struct{}{}
		i, k := i, k
		go func() {
			g := groups[k]
			rows[i] = Row{
				Key:     k,
				N:       len(g.total),
				Total:   summarize(g.total),
				Latency: summarize(g.latency),
			}
			<-limit
			wg.Done()
		}()
	}
	wg.Wait()

	return rows
}
