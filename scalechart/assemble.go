// Copyright 2024 The Scaleplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalechart assembles computed scaling metrics into chart
// series and renders them with gonum/plot.
//
// Assembly reshapes a scalemath result set into the parallel
// sequences the renderers consume: one value series per group, a
// group name per series, and a palette colour per series, all indexed
// consistently, plus the shared x axis and headroom-scaled axis
// maxima. Renderers draw grouped walltime bars, speedup lines against
// the ideal y = x, efficiency lines against the ideal y = 1, and
// single-bar-per-category charts for the categorical variant.
package scalechart

import (
	"image/color"
	"math"

	"github.com/hpctools/scaleplot/scalefmt"
	"github.com/hpctools/scaleplot/scalemath"
)

// An Assembly holds one metric's chart series for the scaling
// variant. Names, Colors, and Series always have equal length and
// consistent pairwise indexing; renderers depend on that.
//
// Series[i][j] is group i's value at X[j]. Groups that have no
// observation at X[j] hold NaN there, and renderers skip those
// points.
type Assembly struct {
	Names  []string
	Colors []color.Color
	Series [][]float64
	X      []int

	// XMax and YMax are the data maxima scaled by the headroom
	// factors handed to Assemble. Callers may overwrite them to
	// force an axis range.
	XMax float64
	YMax float64
}

// Assemble reshapes a result set into chart series for one metric.
// yHeadroom and xHeadroom scale the data maxima to leave room above
// and beside the plotted values; 1.1 to 1.2 reads well.
func Assemble(rs *scalemath.ResultSet, m scalemath.Metric, pal Palette, yHeadroom, xHeadroom float64) *Assembly {
	a := &Assembly{
		Names: rs.Names(),
		X:     append([]int(nil), rs.Elements...),
		XMax:  float64(rs.MaxElements()) * xHeadroom,
	}

	at := make(map[int]int, len(a.X))
	for j, n := range a.X {
		at[n] = j
	}

	ymax := math.Inf(-1)
	for i, g := range rs.Groups {
		vals := make([]float64, len(a.X))
		for j := range vals {
			vals[j] = math.NaN()
		}
		for k, n := range g.Elements {
			v := g.Metric(m)[k]
			vals[at[n]] = v
			if scalemath.Defined(v) && v > ymax {
				ymax = v
			}
		}
		a.Series = append(a.Series, vals)
		a.Colors = append(a.Colors, pal.Color(i))
	}
	if !math.IsInf(ymax, -1) {
		a.YMax = ymax * yHeadroom
	}
	return a
}

// A BarAssembly holds the categorical variant's chart series: one
// value and one colour per category, baseline first. Names, Colors,
// and Values are parallel.
type BarAssembly struct {
	Names  []string
	Colors []color.Color
	Values []float64

	// YMax is the headroom-scaled value maximum; callers may
	// overwrite it.
	YMax float64
}

// AssembleBars reshapes a category set into bar-chart series for
// walltime or speedup.
func AssembleBars(c *scalemath.CategorySet, m scalemath.Metric, pal Palette, yHeadroom float64) (*BarAssembly, error) {
	a := &BarAssembly{Names: append([]string(nil), c.Names...)}
	switch m {
	case scalemath.Walltime:
		a.Values = append(a.Values, c.Walltime...)
		a.YMax = c.MaxWalltime() * yHeadroom
	case scalemath.Speedup:
		a.Values = append(a.Values, c.Speedup...)
		a.YMax = c.MaxSpeedup() * yHeadroom
	default:
		return nil, scalefmt.Configf("metric %s cannot be charted per category", m)
	}
	for i := range a.Names {
		a.Colors = append(a.Colors, pal.Color(i))
	}
	return a, nil
}
