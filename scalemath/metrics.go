// Copyright 2024 The Scaleplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalemath computes scaling metrics from aggregated result
// tables.
//
// For a group of observations over increasing compute-element counts
// with single-element reference walltime t1:
//
//	speedup(n)           = t1 / walltime(n)
//	strong efficiency(n) = t1 / (walltime(n) * n)
//	weak efficiency(n)   = t1 / walltime(n)
//
// Weak efficiency is numerically identical to speedup but is reported
// under its own name: its ideal value is the constant 1, whereas
// speedup is chart against the ideal line y = x.
//
// A metric value with no defined answer (a degenerate walltime that
// slipped past cleaning) is reported as NaN, never as an infinity;
// renderers skip NaN points. Defined reports whether a value is
// usable.
package scalemath

import (
	"math"
	"sort"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/hpctools/scaleplot/scalefmt"
)

// A Series holds one group's observations, sorted ascending by
// compute-element count, plus the derived metrics. All slices are
// parallel.
type Series struct {
	Group    string
	Elements []int
	Walltime []float64

	Speedup   []float64
	StrongEff []float64
	WeakEff   []float64
}

// Metric returns the named metric values for the series. Walltime
// counts as a metric so that chart assembly can treat all four charts
// uniformly.
func (s *Series) Metric(m Metric) []float64 {
	switch m {
	case Walltime:
		return s.Walltime
	case Speedup:
		return s.Speedup
	case StrongEfficiency:
		return s.StrongEff
	case WeakEfficiency:
		return s.WeakEff
	}
	panic("unknown metric")
}

// A Metric identifies one of the charted quantities.
type Metric int

const (
	Walltime Metric = iota
	Speedup
	StrongEfficiency
	WeakEfficiency
)

func (m Metric) String() string {
	switch m {
	case Walltime:
		return "walltime"
	case Speedup:
		return "speedup"
	case StrongEfficiency:
		return "strong efficiency"
	case WeakEfficiency:
		return "weak efficiency"
	}
	return "unknown"
}

// A ResultSet is the full collection of per-group series plus the
// sorted union of compute-element counts used as the charts' shared
// x axis.
type ResultSet struct {
	Groups   []*Series // in order of first appearance in the input
	Elements []int     // ascending union across all groups
}

// Names returns the group names in Groups order.
func (rs *ResultSet) Names() []string {
	names := make([]string, len(rs.Groups))
	for i, g := range rs.Groups {
		names[i] = g.Group
	}
	return names
}

// MaxWalltime returns the largest walltime across all groups.
func (rs *ResultSet) MaxWalltime() float64 {
	var all []float64
	for _, g := range rs.Groups {
		all = append(all, g.Walltime...)
	}
	_, max := stats.Bounds(all)
	return max
}

// MaxElements returns the largest compute-element count.
func (rs *ResultSet) MaxElements() int {
	if len(rs.Elements) == 0 {
		return 0
	}
	return rs.Elements[len(rs.Elements)-1]
}

// Compute derives per-group scaling metrics from a cleaned and
// aggregated table. The table must have one row per (key, compute
// elements) pair; every group must contain exactly one row at one
// compute element, whose walltime is the reference t1.
//
// It returns a *scalefmt.DataError if a group's reference row is
// missing or ambiguous, or if the table holds no groups.
func Compute(g table.Grouping, s scalefmt.Schema) (*ResultSet, error) {
	if s.Elements == "" {
		return nil, scalefmt.Configf("schema has no compute-element column; use ComputeCategories for categorical input")
	}
	rs := new(ResultSet)
	union := make(map[int]bool)

	byGroup := table.GroupBy(g, s.Key)
	for _, gid := range byGroup.Tables() {
		t := byGroup.Table(gid)
		ser := &Series{
			Group:    gid.Label().(string),
			Elements: append([]int(nil), t.MustColumn(s.Elements).([]int)...),
			Walltime: append([]float64(nil), t.MustColumn(s.Walltime).([]float64)...),
		}
		ser.sortByElements()
		if err := ser.compute(); err != nil {
			return nil, err
		}
		for _, n := range ser.Elements {
			union[n] = true
		}
		rs.Groups = append(rs.Groups, ser)
	}
	if len(rs.Groups) == 0 {
		return nil, scalefmt.Dataf("input has no result groups")
	}

	rs.Elements = make([]int, 0, len(union))
	for n := range union {
		rs.Elements = append(rs.Elements, n)
	}
	sort.Ints(rs.Elements)
	return rs, nil
}

func (s *Series) sortByElements() {
	perm := make([]int, len(s.Elements))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return s.Elements[perm[i]] < s.Elements[perm[j]]
	})
	elems := make([]int, len(perm))
	times := make([]float64, len(perm))
	for i, p := range perm {
		elems[i] = s.Elements[p]
		times[i] = s.Walltime[p]
	}
	s.Elements, s.Walltime = elems, times
}

// compute fills in the derived metrics from the reference row at one
// compute element.
func (s *Series) compute() error {
	ref := -1
	for i, n := range s.Elements {
		if n != 1 {
			continue
		}
		if ref >= 0 {
			return scalefmt.Dataf("group %q has more than one single-element row", s.Group)
		}
		ref = i
	}
	if ref < 0 {
		return scalefmt.Dataf("group %q has no single-element reference row", s.Group)
	}
	t1 := s.Walltime[ref]

	s.Speedup = make([]float64, len(s.Walltime))
	s.StrongEff = make([]float64, len(s.Walltime))
	s.WeakEff = make([]float64, len(s.Walltime))
	for i, tn := range s.Walltime {
		s.Speedup[i] = ratio(t1, tn)
		s.StrongEff[i] = ratio(t1, tn*float64(s.Elements[i]))
		s.WeakEff[i] = s.Speedup[i]
	}
	return nil
}

// A CategorySet holds the categorical variant's flat result: one
// walltime per category with speedup relative to a baseline category.
// The baseline is always first; the remaining categories keep their
// input order. All slices are parallel.
type CategorySet struct {
	Names    []string
	Walltime []float64
	Speedup  []float64
}

// MaxWalltime returns the largest category walltime.
func (c *CategorySet) MaxWalltime() float64 {
	_, max := stats.Bounds(c.Walltime)
	return max
}

// MaxSpeedup returns the largest defined category speedup.
func (c *CategorySet) MaxSpeedup() float64 {
	max := math.Inf(-1)
	for _, v := range c.Speedup {
		if Defined(v) && v > max {
			max = v
		}
	}
	return max
}

// ComputeCategories derives categorical speedups from a cleaned and
// aggregated table with one row per category. The baseline category's
// walltime is the reference t1.
//
// It returns a *scalefmt.DataError if the baseline category is
// missing or appears more than once.
func ComputeCategories(g table.Grouping, s scalefmt.Schema, baseline string) (*CategorySet, error) {
	t := table.Flatten(g)
	if t.Len() == 0 {
		return nil, scalefmt.Dataf("input has no categories")
	}
	names := t.MustColumn(s.Key).([]string)
	times := t.MustColumn(s.Walltime).([]float64)

	ref := -1
	for i, name := range names {
		if name != baseline {
			continue
		}
		if ref >= 0 {
			return nil, scalefmt.Dataf("baseline category %q appears more than once", baseline)
		}
		ref = i
	}
	if ref < 0 {
		return nil, scalefmt.Dataf("input has no baseline category %q", baseline)
	}
	t1 := times[ref]

	c := &CategorySet{
		Names:    make([]string, 0, len(names)),
		Walltime: make([]float64, 0, len(times)),
	}
	// Baseline first, then the rest in input order.
	c.Names = append(c.Names, names[ref])
	c.Walltime = append(c.Walltime, times[ref])
	for i := range names {
		if i == ref {
			continue
		}
		c.Names = append(c.Names, names[i])
		c.Walltime = append(c.Walltime, times[i])
	}
	c.Speedup = make([]float64, len(c.Walltime))
	for i, tn := range c.Walltime {
		c.Speedup[i] = ratio(t1, tn)
	}
	return c, nil
}

// ratio returns a/b, or NaN when the ratio is undefined. Cleaning
// removes non-positive walltimes upstream, so an undefined ratio only
// arises for callers that skip scaleproc.
func ratio(a, b float64) float64 {
	if b <= 0 || math.IsNaN(a) || math.IsNaN(b) {
		return math.NaN()
	}
	return a / b
}

// Defined reports whether a metric value is usable for charting.
func Defined(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
