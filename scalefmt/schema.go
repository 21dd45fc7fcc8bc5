// Copyright 2024 The Scaleplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalefmt reads tabular scaling results from spreadsheet
// files into typed columns.
//
// Input tables are described by a Schema naming the columns of
// interest. ReadTable validates the schema against the file's header
// row and produces a go-gg table with one typed column per schema
// field:
//
//	Key      []string   group or category labels
//	Elements []int      compute-element counts (scaling studies only)
//	Walltime []float64  elapsed times; unparseable cells become NaN
//	Filter   []bool     optional filter column, coerced to boolean
//
// Rows are passed through unfiltered. Dropping incomplete or filtered
// rows is the scaleproc package's job, so a row with an empty key, a
// NaN walltime, or a non-positive element count survives loading and
// is removed there.
package scalefmt

// A Schema names the input columns a scaling study uses. Key and
// Walltime are required. Elements is empty for categorical studies.
// Filter is empty when no filter column is configured.
type Schema struct {
	Key      string // group or category labels
	Elements string // compute-element counts; "" for categorical input
	Walltime string // elapsed time
	Filter   string // optional boolean filter; "" if unused
}

// Columns returns the column names the schema requires from the
// input, in schema order.
func (s Schema) Columns() []string {
	cols := []string{s.Key}
	if s.Elements != "" {
		cols = append(cols, s.Elements)
	}
	cols = append(cols, s.Walltime)
	if s.Filter != "" {
		cols = append(cols, s.Filter)
	}
	return cols
}

func (s Schema) check() error {
	if s.Key == "" {
		return Configf("schema has no key column")
	}
	if s.Walltime == "" {
		return Configf("schema has no walltime column")
	}
	return nil
}
