// Copyright 2024 The Scaleplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaleproc cleans and aggregates raw scaling results.
//
// Cleaning drops rows that cannot contribute to a chart: rows with an
// empty key, a missing or non-positive walltime, a non-positive
// compute-element count, or a false value in the optional filter
// column. Aggregation then collapses repeated observations of the
// same (key) or (key, compute-element) pair into their arithmetic
// mean, so that downstream metric computation sees exactly one
// walltime per pair. Both steps are pure table transformations; the
// input grouping is never modified.
package scaleproc

import (
	"math"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/hpctools/scaleplot/scalefmt"
)

// Clean removes rows that cannot be charted. The three row filters
// (empty key, bad walltime, bad element count) and the optional
// boolean filter column each retain a row independently of the
// others, so their order does not affect the result.
//
// The filter column, when present, is consumed here: rows where it is
// false are dropped and the column is removed from the output.
//
// Clean returns a *scalefmt.DataError if no rows survive.
func Clean(g table.Grouping, s scalefmt.Schema) (table.Grouping, error) {
	g = table.Filter(g, func(key string) bool { return key != "" }, s.Key)
	g = table.Filter(g, func(t float64) bool { return t > 0 && !math.IsNaN(t) }, s.Walltime)
	if s.Elements != "" {
		g = table.Filter(g, func(n int) bool { return n > 0 }, s.Elements)
	}
	if s.Filter != "" {
		g = table.Filter(g, func(keep bool) bool { return keep }, s.Filter)
		g = table.Remove(g, s.Filter)
	}
	if table.Flatten(g).Len() == 0 {
		return nil, scalefmt.Dataf("no usable rows after filtering")
	}
	return g, nil
}

// Aggregate collapses duplicate observations by averaging walltime.
// For scaling input, rows are grouped by (key, compute elements); for
// categorical input (an empty Elements schema field), by key alone.
// The output has exactly one row per pair, in order of each pair's
// first appearance in the input.
func Aggregate(g table.Grouping, s scalefmt.Schema) table.Grouping {
	keys := []string{s.Key}
	if s.Elements != "" {
		keys = append(keys, s.Elements)
	}
	g = ggstat.Agg(keys...)(ggstat.AggMean(s.Walltime)).F(g)
	return table.Rename(g, "mean "+s.Walltime, s.Walltime)
}
