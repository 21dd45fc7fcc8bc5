// Copyright 2024 The Scaleplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalechart

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/hpctools/scaleplot/scalefmt"
	"github.com/hpctools/scaleplot/scalemath"
)

func testResultSet() *scalemath.ResultSet {
	return &scalemath.ResultSet{
		Groups: []*scalemath.Series{
			{
				Group:    "A",
				Elements: []int{1, 2, 4},
				Walltime: []float64{100, 60, 20},
				Speedup:  []float64{1, 100.0 / 60, 5},
			},
			{
				Group:    "B",
				Elements: []int{1, 8},
				Walltime: []float64{50, 10},
				Speedup:  []float64{1, 5},
			},
		},
		Elements: []int{1, 2, 4, 8},
	}
}

func TestAssembleParallelSequences(t *testing.T) {
	rs := testResultSet()
	pal := Palette{mustHex("#000000"), mustHex("#ffffff")}
	a := Assemble(rs, scalemath.Walltime, pal, 1.2, 1.1)

	if len(a.Series) != len(a.Names) || len(a.Series) != len(a.Colors) {
		t.Fatalf("sequences not parallel: %d series, %d names, %d colours",
			len(a.Series), len(a.Names), len(a.Colors))
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(a.Names, want) {
		t.Errorf("names: got %v, want %v", a.Names, want)
	}
	if want := []int{1, 2, 4, 8}; !reflect.DeepEqual(a.X, want) {
		t.Errorf("x axis: got %v, want %v", a.X, want)
	}
	for i, vals := range a.Series {
		if len(vals) != len(a.X) {
			t.Errorf("series %d has %d values for %d x positions", i, len(vals), len(a.X))
		}
	}

	// Group A has no observation at 8 elements; group B none at 2
	// or 4.
	if !math.IsNaN(a.Series[0][3]) {
		t.Errorf("series A at x=8: got %v, want NaN", a.Series[0][3])
	}
	if !math.IsNaN(a.Series[1][1]) || !math.IsNaN(a.Series[1][2]) {
		t.Errorf("series B holes: got %v", a.Series[1])
	}
	if a.Series[1][3] != 10 {
		t.Errorf("series B at x=8: got %v, want 10", a.Series[1][3])
	}

	// Headroom factors scale the data maxima.
	if want := 100 * 1.2; math.Abs(a.YMax-want) > 1e-9 {
		t.Errorf("YMax: got %v, want %v", a.YMax, want)
	}
	if want := 8 * 1.1; math.Abs(a.XMax-want) > 1e-9 {
		t.Errorf("XMax: got %v, want %v", a.XMax, want)
	}
}

func TestAssembleColourCycling(t *testing.T) {
	rs := testResultSet()
	rs.Groups = append(rs.Groups, &scalemath.Series{
		Group:    "C",
		Elements: []int{1},
		Walltime: []float64{30},
		Speedup:  []float64{1},
	})
	pal := Palette{mustHex("#000000"), mustHex("#ffffff")}
	a := Assemble(rs, scalemath.Walltime, pal, 1, 1)

	if a.Colors[0] != pal[0] || a.Colors[1] != pal[1] {
		t.Error("palette not applied in order")
	}
	// The palette wraps round-robin.
	if a.Colors[2] != pal[0] {
		t.Errorf("third colour: got %v, want palette[0]", a.Colors[2])
	}
}

func TestAssembleBars(t *testing.T) {
	c := &scalemath.CategorySet{
		Names:    []string{"v1", "v2"},
		Walltime: []float64{50, 25},
		Speedup:  []float64{1, 2},
	}
	a, err := AssembleBars(c, scalemath.Speedup, DefaultPalette, 1.2)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Values) != len(a.Names) || len(a.Values) != len(a.Colors) {
		t.Fatal("bar sequences not parallel")
	}
	if want := []float64{1, 2}; !reflect.DeepEqual(a.Values, want) {
		t.Errorf("values: got %v, want %v", a.Values, want)
	}
	if want := 2 * 1.2; math.Abs(a.YMax-want) > 1e-9 {
		t.Errorf("YMax: got %v, want %v", a.YMax, want)
	}

	// Efficiency has no categorical chart.
	_, err = AssembleBars(c, scalemath.StrongEfficiency, DefaultPalette, 1.2)
	var ce *scalefmt.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want ConfigError", err)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#00a9ce")
	if err != nil {
		t.Fatal(err)
	}
	if c.R != 0x00 || c.G != 0xa9 || c.B != 0xce || c.A != 0xff {
		t.Errorf("got %+v", c)
	}
	for _, bad := range []string{"", "#fff", "00a9ce", "#00a9cg"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) succeeded, want error", bad)
		}
	}
}
