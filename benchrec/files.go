// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrec

import (
	"os"
	"path/filepath"
	"sort"
)

// BatchGlob is the filename pattern batch files must match to be
// picked up by List and Load.
const BatchGlob = "benchmark_*.csv"

// A Files reads benchmark records from a sequence of batch files,
// presenting them as a single stream. Row order across files is not
// meaningful; nothing downstream depends on it.
type Files struct {
	// Paths is the list of batch files to read.
	Paths []string

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet. Note that this distinguishes nil
	// from length 0.
	inputs []string

	reader Reader
	file   *os.File
	err    error
}

// Scan advances to the next record in the file sequence and reports
// whether one was read. The caller should use Result to get the
// record. When Scan returns false, the caller should use Err to
// distinguish end of data from an error.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.inputs == nil {
		f.inputs = f.Paths
		if f.inputs == nil {
			f.inputs = []string{}
		}
	}

	for {
		if f.file == nil {
			// Open the next file.
			if len(f.inputs) == 0 {
				return false
			}
			path := f.inputs[0]
			f.inputs = f.inputs[1:]

			file, err := os.Open(path)
			if err != nil {
				f.err = err
				return false
			}
			f.file = file
			f.reader.Reset(file, path)
		}

		if f.reader.Scan() {
			return true
		}
		err := f.reader.Err()
		f.file.Close()
		f.file = nil
		if err != nil {
			f.err = err
			break
		}
		// Just an EOF; open the next file.
	}
	return false
}

// Result returns the record that was just read by Scan.
func (f *Files) Result() Record {
	return f.reader.Result()
}

// Err returns the error that stopped Scan, if any.
func (f *Files) Err() error {
	return f.err
}

// List returns the batch files in dir, sorted by name. It returns a
// *NoDataError if no file in dir matches BatchGlob.
func List(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, BatchGlob))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, &NoDataError{Dir: dir, Pattern: BatchGlob}
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadFiles reads and concatenates the records of each named batch
// file. Every row of every batch appears in the result exactly once,
// unchanged.
func ReadFiles(paths []string) ([]Record, error) {
	f := &Files{Paths: paths}
	var records []Record
	for f.Scan() {
		records = append(records, f.Result())
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Load discovers the batch files in dir and returns the row-wise
// union of their records. It returns a *NoDataError if dir holds no
// batches and a *SchemaError if any batch does not match the record
// schema.
func Load(dir string) ([]Record, error) {
	paths, err := List(dir)
	if err != nil {
		return nil, err
	}
	return ReadFiles(paths)
}
