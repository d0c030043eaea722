// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrec

import "fmt"

// A NoDataError reports that a results directory contains no batch
// files. It aborts the run before any computation.
type NoDataError struct {
	Dir     string // the directory searched
	Pattern string // the glob pattern applied, e.g. "benchmark_*.csv"
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no %s files found in %s", e.Pattern, e.Dir)
}

// A SchemaError reports that a batch file does not match the expected
// record schema: a required column is missing, a cell fails to parse,
// or the CSV structure itself is malformed. It aborts the merge.
type SchemaError struct {
	FileName string
	Line     int    // 1-based file line on which the row begins, 0 if unknown
	Col      string // offending column name, "" if not column-specific
	Msg      string
}

func (e *SchemaError) Error() string {
	if e.Col != "" {
		return fmt.Sprintf("%s:%d: column %s: %s", e.FileName, e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// Pos returns the file name and line of the error.
func (e *SchemaError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}
