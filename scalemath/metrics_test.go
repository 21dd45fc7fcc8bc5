// Copyright 2024 The Scaleplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalemath

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"

	"github.com/hpctools/scaleplot/scalefmt"
)

var testSchema = scalefmt.Schema{Key: "group", Elements: "compute_elements", Walltime: "walltime"}

func scalingTable(keys []string, elems []int, times []float64) *table.Table {
	var b table.Builder
	b.Add("group", keys)
	b.Add("compute_elements", elems)
	b.Add("walltime", times)
	return b.Done()
}

func categoryTable(keys []string, times []float64) *table.Table {
	var b table.Builder
	b.Add("group", keys)
	b.Add("walltime", times)
	return b.Done()
}

func approx(got, want []float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestCompute(t *testing.T) {
	tab := scalingTable(
		[]string{"A", "A", "A"},
		[]int{1, 2, 4},
		[]float64{100, 60, 20},
	)
	rs, err := Compute(tab, testSchema)
	if err != nil {
		t.Fatal(err)
	}
	if len(rs.Groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(rs.Groups))
	}
	g := rs.Groups[0]
	if g.Group != "A" {
		t.Errorf("group name: got %q, want A", g.Group)
	}
	if want := []float64{1, 100.0 / 60, 5}; !approx(g.Speedup, want) {
		t.Errorf("speedup: got %v, want %v", g.Speedup, want)
	}
	if want := []float64{1, 100.0 / 120, 1.25}; !approx(g.StrongEff, want) {
		t.Errorf("strong efficiency: got %v, want %v", g.StrongEff, want)
	}

	// The single-element metrics are t1/t1 and must be exactly 1.
	if g.Speedup[0] != 1.0 || g.StrongEff[0] != 1.0 {
		t.Errorf("reference row metrics: got %v, %v, want exactly 1", g.Speedup[0], g.StrongEff[0])
	}

	// Weak efficiency is defined identically to speedup.
	if !reflect.DeepEqual(g.WeakEff, g.Speedup) {
		t.Errorf("weak efficiency %v != speedup %v", g.WeakEff, g.Speedup)
	}
}

func TestComputeSortsByElements(t *testing.T) {
	tab := scalingTable(
		[]string{"A", "A", "A"},
		[]int{4, 1, 2},
		[]float64{20, 100, 60},
	)
	rs, err := Compute(tab, testSchema)
	if err != nil {
		t.Fatal(err)
	}
	g := rs.Groups[0]
	if want := []int{1, 2, 4}; !reflect.DeepEqual(g.Elements, want) {
		t.Errorf("elements: got %v, want %v", g.Elements, want)
	}
	if want := []float64{100, 60, 20}; !reflect.DeepEqual(g.Walltime, want) {
		t.Errorf("walltime: got %v, want %v", g.Walltime, want)
	}
}

func TestComputeMonotonic(t *testing.T) {
	// Non-increasing walltime must yield non-decreasing speedup.
	tab := scalingTable(
		[]string{"A", "A", "A", "A"},
		[]int{1, 2, 4, 8},
		[]float64{100, 80, 80, 12.5},
	)
	rs, err := Compute(tab, testSchema)
	if err != nil {
		t.Fatal(err)
	}
	sp := rs.Groups[0].Speedup
	for i := 1; i < len(sp); i++ {
		if sp[i] < sp[i-1] {
			t.Errorf("speedup decreases at index %d: %v", i, sp)
		}
	}
}

func TestComputeElementUnion(t *testing.T) {
	tab := scalingTable(
		[]string{"B", "B", "A", "A", "A"},
		[]int{1, 8, 1, 2, 4},
		[]float64{50, 10, 100, 60, 20},
	)
	rs, err := Compute(tab, testSchema)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"B", "A"}; !reflect.DeepEqual(rs.Names(), want) {
		t.Errorf("group order: got %v, want %v", rs.Names(), want)
	}
	if want := []int{1, 2, 4, 8}; !reflect.DeepEqual(rs.Elements, want) {
		t.Errorf("element union: got %v, want %v", rs.Elements, want)
	}
	if got := rs.MaxElements(); got != 8 {
		t.Errorf("MaxElements: got %d, want 8", got)
	}
	if got := rs.MaxWalltime(); got != 100 {
		t.Errorf("MaxWalltime: got %v, want 100", got)
	}
}

func TestComputeBaselineErrors(t *testing.T) {
	check := func(elems []int, want string) {
		t.Helper()
		keys := make([]string, len(elems))
		times := make([]float64, len(elems))
		for i := range elems {
			keys[i], times[i] = "A", 10
		}
		_, err := Compute(scalingTable(keys, elems, times), testSchema)
		var de *scalefmt.DataError
		if !errors.As(err, &de) {
			t.Fatalf("for elements %v: got %v, want DataError", elems, err)
		}
		if !strings.Contains(de.Msg, want) {
			t.Errorf("for elements %v: error %q does not mention %q", elems, de.Msg, want)
		}
	}

	// No single-element reference row.
	check([]int{2, 4}, "no single-element")
	// Ambiguous reference row.
	check([]int{1, 1, 2}, "more than one")
}

func TestComputeCategories(t *testing.T) {
	s := scalefmt.Schema{Key: "group", Walltime: "walltime"}
	tab := categoryTable([]string{"v2", "v1", "v3"}, []float64{25, 50, 100})
	c, err := ComputeCategories(tab, s, "v1")
	if err != nil {
		t.Fatal(err)
	}
	// The baseline sorts first; the rest keep input order.
	if want := []string{"v1", "v2", "v3"}; !reflect.DeepEqual(c.Names, want) {
		t.Errorf("names: got %v, want %v", c.Names, want)
	}
	if want := []float64{1, 2, 0.5}; !approx(c.Speedup, want) {
		t.Errorf("speedup: got %v, want %v", c.Speedup, want)
	}
	if got := c.MaxWalltime(); got != 100 {
		t.Errorf("MaxWalltime: got %v, want 100", got)
	}
	if got := c.MaxSpeedup(); got != 2 {
		t.Errorf("MaxSpeedup: got %v, want 2", got)
	}
}

func TestComputeCategoriesBaselineErrors(t *testing.T) {
	s := scalefmt.Schema{Key: "group", Walltime: "walltime"}

	var de *scalefmt.DataError
	_, err := ComputeCategories(categoryTable([]string{"v2"}, []float64{25}), s, "v1")
	if !errors.As(err, &de) {
		t.Errorf("missing baseline: got %v, want DataError", err)
	}
	_, err = ComputeCategories(categoryTable([]string{"v1", "v1"}, []float64{25, 30}), s, "v1")
	if !errors.As(err, &de) {
		t.Errorf("duplicate baseline: got %v, want DataError", err)
	}
}

func TestRatioUndefined(t *testing.T) {
	for _, b := range []float64{0, -1, math.NaN()} {
		if v := ratio(1, b); !math.IsNaN(v) {
			t.Errorf("ratio(1, %v) = %v, want NaN", b, v)
		}
	}
	if Defined(math.NaN()) || Defined(math.Inf(1)) {
		t.Error("NaN and Inf must not be Defined")
	}
	if !Defined(1.5) {
		t.Error("1.5 must be Defined")
	}
}
