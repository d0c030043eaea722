// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeBatch(t *testing.T, dir, name string, recs []Record) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	w := NewWriter(f)
	for _, r := range recs {
		if err := w.Write(r); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMergesAllBatches(t *testing.T) {
	dir := t.TempDir()
	batch1 := []Record{
		{"local", "box", "lifo", 64, 100, 1},
		{"local", "box", "lifo", 64, 200, 2},
	}
	batch2 := []Record{
		{"aws-c5", "slab_warm", "fifo", 256, 300, 3},
	}
	writeBatch(t, dir, "benchmark_local.csv", batch1)
	writeBatch(t, dir, "benchmark_aws-c5.csv", batch2)
	// A non-matching file must be ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.csv"), []byte("x\n"), 0666); err != nil {
		t.Fatal(err)
	}

	recs, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if want := len(batch1) + len(batch2); len(recs) != want {
		t.Fatalf("got %d records, want %d", len(recs), want)
	}
	// Every raw row is preserved unchanged, including duplicates.
	counts := make(map[Record]int)
	for _, r := range recs {
		counts[r]++
	}
	for _, r := range append(append([]Record{}, batch1...), batch2...) {
		counts[r]--
	}
	for r, n := range counts {
		if n != 0 {
			t.Errorf("record %+v: count off by %d", r, n)
		}
	}
}

func TestLoadNoData(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir)
	var nerr *NoDataError
	if !errors.As(err, &nerr) {
		t.Fatalf("got %v, want *NoDataError", err)
	}
	if nerr.Dir != dir {
		t.Errorf("error reports dir %q, want %q", nerr.Dir, dir)
	}
	if nerr.Pattern != BatchGlob {
		t.Errorf("error reports pattern %q, want %q", nerr.Pattern, BatchGlob)
	}
}

func TestLoadSchemaErrorNamesFile(t *testing.T) {
	dir := t.TempDir()
	writeBatch(t, dir, "benchmark_ok.csv", []Record{{"local", "box", "lifo", 64, 100, 1}})
	bad := filepath.Join(dir, "benchmark_zz.csv")
	if err := os.WriteFile(bad, []byte("platform,allocator,pattern,size_bytes,total_ns\n"), 0666); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	var serr *SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, want *SchemaError", err)
	}
	if serr.FileName != bad {
		t.Errorf("error names file %q, want %q", serr.FileName, bad)
	}
	if serr.Col != ColLatencyNs {
		t.Errorf("error names column %q, want %q", serr.Col, ColLatencyNs)
	}
}

func TestWriterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := []Record{
		{"hpc-cluster", "bufpool_cold", "random", 1024, 123456.5, 12.25},
		{"local", "box", "immediate", 16, 0, 0},
	}
	writeBatch(t, dir, "benchmark_rt.csv", want)
	got, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
