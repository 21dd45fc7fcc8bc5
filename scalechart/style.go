// Copyright 2024 The Scaleplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalechart

import (
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// A Style bundles the cosmetic defaults applied to every chart:
// background and text colours, the optional grid, and font sizes.
type Style struct {
	Name       string
	Background color.Color
	Foreground color.Color
	Grid       bool
	GridColor  color.Color

	TitleSize vg.Length
	LabelSize vg.Length
	TickSize  vg.Length
}

var styles = map[string]Style{
	"default": {
		Name:       "default",
		Background: color.White,
		Foreground: color.Black,
		TitleSize:  vg.Points(16),
		LabelSize:  vg.Points(12),
		TickSize:   vg.Points(10),
	},
	"ggplot": {
		Name:       "ggplot",
		Background: color.NRGBA{0xe5, 0xe5, 0xe5, 0xff},
		Foreground: color.Black,
		Grid:       true,
		GridColor:  color.White,
		TitleSize:  vg.Points(16),
		LabelSize:  vg.Points(12),
		TickSize:   vg.Points(10),
	},
	"dark_background": {
		Name:       "dark_background",
		Background: color.Black,
		Foreground: color.White,
		TitleSize:  vg.Points(16),
		LabelSize:  vg.Points(12),
		TickSize:   vg.Points(10),
	},
	"grayscale": {
		Name:       "grayscale",
		Background: color.White,
		Foreground: color.NRGBA{0x30, 0x30, 0x30, 0xff},
		Grid:       true,
		GridColor:  color.NRGBA{0xd0, 0xd0, 0xd0, 0xff},
		TitleSize:  vg.Points(16),
		LabelSize:  vg.Points(12),
		TickSize:   vg.Points(10),
	},
}

// LookupStyle returns the named style. Unknown names return the
// default style and false; callers are expected to warn and continue
// rather than fail.
func LookupStyle(name string) (Style, bool) {
	if name == "" {
		return styles["default"], true
	}
	s, ok := styles[name]
	if !ok {
		return styles["default"], false
	}
	return s, true
}

// StyleNames returns the known style names, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// apply sets the style's chrome on a plot.
func (s Style) apply(p *plot.Plot) {
	p.BackgroundColor = s.Background

	p.Title.TextStyle.Font.Size = s.TitleSize
	p.Title.TextStyle.Color = s.Foreground
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font.Size = s.LabelSize
		ax.Label.TextStyle.Color = s.Foreground
		ax.LineStyle.Color = s.Foreground
		ax.Tick.LineStyle.Color = s.Foreground
		ax.Tick.Label.Font.Size = s.TickSize
		ax.Tick.Label.Color = s.Foreground
	}
	p.Legend.TextStyle.Font.Size = s.TickSize
	p.Legend.TextStyle.Color = s.Foreground

	if s.Grid {
		grid := plotter.NewGrid()
		grid.Vertical.Color = s.GridColor
		grid.Horizontal.Color = s.GridColor
		p.Add(grid)
	}
}
