// Copyright 2024 The Scaleplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalefmt

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads the named worksheet of an input file into a table
// with one typed column per schema field. The input format is chosen
// by file extension: .xlsx (and friends) are read as Excel workbooks,
// .csv as comma-separated text with a header row. The worksheet name
// is ignored for CSV input.
//
// It returns a *ConfigError if a schema column is missing from the
// header or the worksheet does not exist, and a *DataError if the
// file has no data rows.
func ReadTable(filename, worksheet string, s Schema) (*table.Table, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	var rows [][]string
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		rows, err = readSheet(filename, worksheet)
	case ".csv":
		rows, err = readCSV(filename)
	default:
		return nil, Configf("%s: unsupported input format %q (want .xlsx or .csv)", filename, ext)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, Dataf("%s: input is empty", filename)
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	col := func(name string) (int, error) {
		i, ok := index[name]
		if !ok {
			return 0, Configf("%s: input has no column %q", filename, name)
		}
		return i, nil
	}

	data := rows[1:]
	if len(data) == 0 {
		return nil, Dataf("%s: input has no data rows", filename)
	}
	cell := func(row []string, i int) string {
		// Trailing empty cells are trimmed by both readers.
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var b table.Builder

	ki, err := col(s.Key)
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(data))
	for j, row := range data {
		keys[j] = cell(row, ki)
	}
	b.Add(s.Key, keys)

	if s.Elements != "" {
		ei, err := col(s.Elements)
		if err != nil {
			return nil, err
		}
		elems := make([]int, len(data))
		for j, row := range data {
			// Bad counts become 0 and are dropped by scaleproc.
			elems[j] = parseCount(cell(row, ei))
		}
		b.Add(s.Elements, elems)
	}

	wi, err := col(s.Walltime)
	if err != nil {
		return nil, err
	}
	times := make([]float64, len(data))
	for j, row := range data {
		times[j] = parseTime(cell(row, wi))
	}
	b.Add(s.Walltime, times)

	if s.Filter != "" {
		fi, err := col(s.Filter)
		if err != nil {
			return nil, err
		}
		keep := make([]bool, len(data))
		for j, row := range data {
			keep[j] = truthy(cell(row, fi))
		}
		b.Add(s.Filter, keep)
	}

	return b.Done(), nil
}

// readSheet reads one worksheet of an Excel workbook as a string
// matrix, header row included.
func readSheet(filename, worksheet string) ([][]string, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filename, err)
	}
	defer f.Close()

	found := false
	for _, name := range f.GetSheetList() {
		if name == worksheet {
			found = true
			break
		}
	}
	if !found {
		return nil, Configf("%s: no worksheet %q", filename, worksheet)
	}

	rows, err := f.GetRows(worksheet)
	if err != nil {
		return nil, fmt.Errorf("read %s!%s: %w", filename, worksheet, err)
	}
	return rows, nil
}

func readCSV(filename string) ([][]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may be ragged
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return rows, nil
}

// parseCount parses a compute-element count. Counts must be positive
// integers; anything else parses as 0.
func parseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		// Excel sometimes renders integer cells as floats.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != math.Trunc(f) {
			return 0
		}
		n = int(f)
	}
	if n < 0 {
		return 0
	}
	return n
}

// parseTime parses a walltime cell. Blank or unparseable cells become
// NaN so that incomplete rows survive loading and can be dropped
// during cleaning.
func parseTime(s string) float64 {
	t, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return t
}

// truthy coerces a filter cell to a boolean: booleans as themselves,
// numbers as > 0, and anything else as false.
func truthy(s string) bool {
	if s == "" {
		return false
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f > 0
	}
	return false
}
