// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrec

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Reader reads benchmark records from one CSV batch.
//
// Its API is modeled on bufio.Scanner: call Scan until it returns
// false, read each record with Result, then check Err. The first Scan
// consumes the header row and resolves the column layout; a missing
// required column or an unparsable cell stops the scan with a
// *SchemaError.
//
// To construct a new Reader, either call NewReader, or call Reset on
// a zeroed Reader.
type Reader struct {
	cr       *csv.Reader
	fileName string
	line     int // file line on which the most recently read row begins

	header bool
	cols   colIndex

	rec Record
	err error
}

// colIndex maps each required column to its field index in a row.
type colIndex struct {
	platform, allocator, pattern, size, total, latency int
}

// NewReader constructs a reader for one batch read from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading a new batch from ior.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.cr = csv.NewReader(ior)
	// Field strings are freshly allocated on each Read, so rows may
	// be retained while the row slice itself is reused.
	r.cr.ReuseRecord = true
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.line = 0
	r.header = false
	r.err = nil
}

// newSchemaError returns a *SchemaError for column col at the
// Reader's current position.
func (r *Reader) newSchemaError(col, msg string) *SchemaError {
	return &SchemaError{r.fileName, r.line, col, msg}
}

// Scan advances the reader to the next record and reports whether one
// was read. It returns false at the end of the batch or on error; the
// caller should then check Err.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if !r.header {
		if !r.readHeader() {
			return false
		}
	}

	row, err := r.cr.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		r.err = r.csvError(err)
		return false
	}
	// Quoted fields may span lines, so take the row's position from
	// the csv reader rather than counting rows.
	r.line, _ = r.cr.FieldPos(0)
	return r.parseRow(row)
}

// Result returns the record that was just read by Scan.
func (r *Reader) Result() Record {
	return r.rec
}

// Err returns the error that stopped Scan, if any. A *SchemaError
// indicates the batch does not match the record schema.
func (r *Reader) Err() error {
	return r.err
}

// readHeader consumes the header row and resolves which field holds
// each required column. Columns may appear in any order; columns
// beyond the required set are ignored.
func (r *Reader) readHeader() bool {
	row, err := r.cr.Read()
	if err == io.EOF {
		r.line = 1
		r.err = r.newSchemaError("", "missing header row")
		return false
	}
	if err != nil {
		r.err = r.csvError(err)
		return false
	}
	r.line, _ = r.cr.FieldPos(0)

	found := make(map[string]int, len(row))
	for i, name := range row {
		found[strings.ToLower(strings.TrimSpace(name))] = i
	}
	get := func(name string) (int, bool) {
		i, ok := found[name]
		if !ok && r.err == nil {
			r.err = r.newSchemaError(name, "missing column")
		}
		return i, ok
	}
	var ok [6]bool
	r.cols.platform, ok[0] = get(ColPlatform)
	r.cols.allocator, ok[1] = get(ColAllocator)
	r.cols.pattern, ok[2] = get(ColPattern)
	r.cols.size, ok[3] = get(ColSizeBytes)
	r.cols.total, ok[4] = get(ColTotalNs)
	r.cols.latency, ok[5] = get(ColLatencyNs)
	for _, o := range ok {
		if !o {
			return false
		}
	}
	r.header = true
	return true
}

// parseRow fills r.rec from one data row.
func (r *Reader) parseRow(row []string) bool {
	c := &r.cols
	r.rec.Platform = row[c.platform]
	r.rec.Allocator = row[c.allocator]
	r.rec.Pattern = row[c.pattern]

	size, err := strconv.Atoi(strings.TrimSpace(row[c.size]))
	if err != nil {
		r.err = r.newSchemaError(ColSizeBytes, "parsing "+strconv.Quote(row[c.size])+": not an integer")
		return false
	}
	if size <= 0 {
		r.err = r.newSchemaError(ColSizeBytes, "must be positive")
		return false
	}
	r.rec.SizeBytes = size

	if r.rec.TotalNs, err = parseNs(row[c.total]); err != nil {
		r.err = r.newSchemaError(ColTotalNs, err.Error())
		return false
	}
	if r.rec.LatencyNs, err = parseNs(row[c.latency]); err != nil {
		r.err = r.newSchemaError(ColLatencyNs, err.Error())
		return false
	}
	return true
}

// parseNs parses a nanosecond measurement cell. Measurements must be
// finite and non-negative.
func parseNs(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.New("parsing " + strconv.Quote(s) + ": not a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, errors.New("must be a non-negative finite number")
	}
	return v, nil
}

// csvError converts a csv package error into a *SchemaError carrying
// the file position.
func (r *Reader) csvError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &SchemaError{r.fileName, perr.Line, "", perr.Err.Error()}
	}
	return err
}
