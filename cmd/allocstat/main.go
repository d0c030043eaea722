// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Allocstat summarizes allocator benchmark results.
//
// Usage:
//
//	allocstat [-dir directory] [-n rows] [-html]
//
// allocstat reads every benchmark_*.csv batch in the results
// directory (./results by default), groups the samples by platform,
// allocator, release pattern, and payload size, and computes summary
// statistics in milliseconds for the total-run and per-operation
// timings. It prints a summary table per metric, compares the box
// allocator against the warm slab allocator as a median-time ratio,
// writes the full statistics table to stats.csv in the results
// directory, and lists the chart artifacts a renderer would produce.
//
// With no batch files the run aborts; a malformed batch aborts with
// the file and column. Statistics that are undefined for a group,
// such as the standard deviation of a single sample, are reported as
// empty/NaN cells rather than failing the run.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-gg/generic/slice"

	"github.com/allocbench/allocstat/benchchart"
	"github.com/allocbench/allocstat/benchlabel"
	"github.com/allocbench/allocstat/benchrec"
	"github.com/allocbench/allocstat/benchstat"
)

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(os.Stderr, "usage: allocstat [options]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	exit(2)
}

var (
	flagDir  = flag.String("dir", "results", "read benchmark batches from `directory`")
	flagRows = flag.Int("n", 30, "print at most `rows` summary rows per metric (0 for all)")
	flagHTML = flag.Bool("html", false, "also write the statistics table as stats.html")
)

// comparison is the standard allocator pair: heap-boxed allocation
// against the pre-warmed slab.
const (
	numeratorAllocator   = "box"
	denominatorAllocator = "slab_warm"
)

func main() {
	log.SetPrefix("allocstat: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
	}

	paths, err := benchrec.List(*flagDir)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Found %d batch files:\n", len(paths))
	for _, p := range paths {
		fmt.Printf("  - %s\n", p)
	}

	records, err := benchrec.ReadFiles(paths)
	if err != nil {
		log.Fatal(err)
	}
	platforms := make([]string, len(records))
	for i := range records {
		platforms[i] = records[i].Platform
	}
	platforms = slice.Nub(platforms).([]string)
	fmt.Printf("Loaded %d records from %d platform(s): %s\n",
		len(records), len(platforms), strings.Join(platforms, ", "))

	records = benchlabel.NormalizeRecords(records)
	rows := benchstat.Aggregate(records)

	for _, m := range benchstat.Metrics {
		fmt.Printf("\n=== Summary (%s) ===\n", m)
		if err := benchstat.FormatText(os.Stdout, headRows(rows, *flagRows), m); err != nil {
			log.Fatal(err)
		}
	}

	csvPath := filepath.Join(*flagDir, "stats.csv")
	if err := writeCSVFile(csvPath, rows); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nWrote %s\n", csvPath)

	if *flagHTML {
		htmlPath := filepath.Join(*flagDir, "stats.html")
		var buf bytes.Buffer
		benchstat.FormatHTML(&buf, rows)
		if err := os.WriteFile(htmlPath, buf.Bytes(), 0666); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %s\n", htmlPath)
	}

	for _, m := range benchstat.Metrics {
		t := benchstat.CompareRatio(rows, numeratorAllocator, denominatorAllocator, m)
		if t.Unmatched > 0 {
			log.Printf("%s/%s %s: %d condition(s) covered by only one allocator, dropped from the comparison",
				t.Numerator, t.Denominator, m, t.Unmatched)
		}
		fmt.Printf("\n=== %s ===\n", t.Header())
		if err := t.FormatText(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("\nChart artifacts:\n")
	for _, name := range benchchart.Catalog(rows) {
		fmt.Printf("  - %s\n", name)
	}
}

// headRows limits rows for display. n <= 0 means no limit.
func headRows(rows []benchstat.Row, n int) []benchstat.Row {
	if n <= 0 || len(rows) <= n {
		return rows
	}
	return rows[:n]
}

func writeCSVFile(path string, rows []benchstat.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := benchstat.WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
