// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrec

import (
	"encoding/csv"
	"io"
	"strconv"
)

// A Writer writes benchmark records in the batch CSV schema. The
// header row is emitted before the first record.
type Writer struct {
	cw     *csv.Writer
	header bool
	row    []string
}

// NewWriter constructs a Writer that emits a batch to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{cw: csv.NewWriter(w)}
}

// Write appends one record to the batch.
func (w *Writer) Write(r Record) error {
	if !w.header {
		if err := w.cw.Write(columns); err != nil {
			return err
		}
		w.header = true
	}
	w.row = append(w.row[:0],
		r.Platform,
		r.Allocator,
		r.Pattern,
		strconv.Itoa(r.SizeBytes),
		strconv.FormatFloat(r.TotalNs, 'g', -1, 64),
		strconv.FormatFloat(r.LatencyNs, 'g', -1, 64),
	)
	return w.cw.Write(w.row)
}

// Flush writes any buffered rows to the underlying writer and returns
// the first error encountered, if any.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}
