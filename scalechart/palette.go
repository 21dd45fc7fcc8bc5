// Copyright 2024 The Scaleplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalechart

import (
	"fmt"
	"image/color"
	"strconv"
)

// A Palette is an ordered sequence of series colours, assigned to
// series round-robin by index.
type Palette []color.Color

// Color returns the colour for series index i, cycling through the
// palette.
func (p Palette) Color(i int) color.Color {
	return p[i%len(p)]
}

// DefaultPalette is the palette used when the caller does not supply
// one.
var DefaultPalette = Palette{
	mustHex("#00a9ce"), // midday blue
	mustHex("#78be20"), // light forest
	mustHex("#DF1995"), // fuschia
	mustHex("#E87722"), // orange
	mustHex("#E4002B"), // vermillion
	mustHex("#00616c"), // midnight blue
	mustHex("#FFB81C"), // gold
	mustHex("#6D2077"), // plum
	mustHex("#1E22AA"), // blueberry
}

// ParseHexColor parses a "#rrggbb" colour.
func ParseHexColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("bad colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad colour %q: %v", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

func mustHex(s string) color.Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
