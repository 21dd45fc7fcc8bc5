// Copyright 2024 The Scaleplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "testing"

func TestAddPrefix(t *testing.T) {
	cases := []struct {
		base, prefix, sep string
		want              string
	}{
		{"walltime", "", "-", "walltime"},
		{"walltime", "run1", "-", "run1-walltime"},
		{"Speedup", "64 nodes", " - ", "64 nodes - Speedup"},
	}
	for _, c := range cases {
		if got := addPrefix(c.base, c.prefix, c.sep); got != c.want {
			t.Errorf("addPrefix(%q, %q, %q) = %q, want %q", c.base, c.prefix, c.sep, got, c.want)
		}
	}
}
