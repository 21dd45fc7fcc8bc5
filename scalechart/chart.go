// Copyright 2024 The Scaleplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalechart

import (
	"image/color"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/aclements/go-moremath/vec"
	"github.com/hpctools/scaleplot/scalefmt"
	"github.com/hpctools/scaleplot/scalemath"
)

// idealColor is the colour of the ideal-scaling reference lines.
var idealColor = color.NRGBA{R: 0xe0, A: 0xff}

// A Config carries the per-chart presentation settings shared by all
// renderers.
type Config struct {
	Title  string
	XLabel string
	YLabel string
	Style  Style

	// Width is the chart width; the height is always 3/4 of it.
	// Zero means 10 inches.
	Width vg.Length

	// LineWidth is the stroke width of series and reference
	// lines. Zero means 1.5 points.
	LineWidth vg.Length

	// LogY selects a log-scaled y axis on bar charts.
	LogY bool

	// Tight drops the outer margin when saving.
	Tight bool
}

func (c Config) width() vg.Length {
	if c.Width == 0 {
		return 10 * vg.Inch
	}
	return c.Width
}

func (c Config) lineWidth() vg.Length {
	if c.LineWidth == 0 {
		return vg.Points(1.5)
	}
	return c.LineWidth
}

func (c Config) newPlot() *plot.Plot {
	p := plot.New()
	c.Style.apply(p)
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Legend.Top = true
	return p
}

// WalltimeChart draws grouped walltime bars, one cluster of bars per
// compute-element count and one bar per group within a cluster.
func WalltimeChart(a *Assembly, cfg Config) (*plot.Plot, error) {
	if len(a.Series) == 0 {
		return nil, scalefmt.Dataf("no series to chart")
	}
	p := cfg.newPlot()

	var all []float64
	for _, vals := range a.Series {
		all = append(all, vals...)
	}
	floor := logFloor(all, cfg)

	// Bars fill 83% of each nominal slot, split evenly between
	// the groups.
	slotW := cfg.width() / vg.Length(len(a.X)+2)
	barW := slotW * 83 / 100 / vg.Length(len(a.Series))

	thumbs := make([]plot.Thumbnailer, len(a.Series))
	for i, vals := range a.Series {
		heights := make(plotter.Values, len(vals))
		for j, v := range vals {
			if scalemath.Defined(v) {
				heights[j] = v
			}
			// Undefined values draw no bar.
		}
		bars, err := newBars(heights, barW, floor)
		if err != nil {
			return nil, err
		}
		bars.Color = a.Colors[i]
		bars.Offset = (vg.Length(i) - vg.Length(len(a.Series)-1)/2) * barW
		p.Add(bars)
		thumbs[i] = bars
	}
	addSortedLegend(p, a.Names, thumbs)

	labels := make([]string, len(a.X))
	for j, n := range a.X {
		labels[j] = strconv.Itoa(n)
	}
	p.NominalX(labels...)

	setBarYRange(p, a.YMax, floor, cfg)
	return p, nil
}

// SpeedupChart draws one speedup line per group against the ideal
// y = x reference line.
func SpeedupChart(a *Assembly, cfg Config) (*plot.Plot, error) {
	p, err := lineChart(a, cfg)
	if err != nil {
		return nil, err
	}

	// Ideal speedup is linear in the element count.
	xs := vec.Linspace(float64(a.X[0]), a.XMax, 2)
	ideal := make(plotter.XYs, len(xs))
	for i, x := range xs {
		ideal[i].X, ideal[i].Y = x, x
	}
	if err := addReference(p, ideal, cfg); err != nil {
		return nil, err
	}

	p.Y.Min = float64(a.X[0])
	p.Y.Max = a.YMax
	return p, nil
}

// EfficiencyChart draws one efficiency line per group against the
// ideal y = 1 reference line.
func EfficiencyChart(a *Assembly, cfg Config) (*plot.Plot, error) {
	p, err := lineChart(a, cfg)
	if err != nil {
		return nil, err
	}

	ideal := plotter.XYs{
		{X: float64(a.X[0]), Y: 1},
		{X: a.XMax, Y: 1},
	}
	if err := addReference(p, ideal, cfg); err != nil {
		return nil, err
	}

	p.Y.Min = 0
	p.Y.Max = a.YMax
	return p, nil
}

// lineChart draws the per-group series lines and x axis shared by the
// speedup and efficiency charts.
func lineChart(a *Assembly, cfg Config) (*plot.Plot, error) {
	if len(a.Series) == 0 {
		return nil, scalefmt.Dataf("no series to chart")
	}
	p := cfg.newPlot()

	thumbs := make([]plot.Thumbnailer, len(a.Series))
	for i, vals := range a.Series {
		var xys plotter.XYs
		for j, v := range vals {
			if scalemath.Defined(v) {
				xys = append(xys, plotter.XY{X: float64(a.X[j]), Y: v})
			}
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, err
		}
		line.Color = a.Colors[i]
		line.Width = cfg.lineWidth()
		points.Color = a.Colors[i]
		points.Shape = draw.CircleGlyph{}
		p.Add(line, points)
		thumbs[i] = line
	}
	addSortedLegend(p, a.Names, thumbs)

	ticks := make([]plot.Tick, len(a.X))
	for j, n := range a.X {
		ticks[j] = plot.Tick{Value: float64(n), Label: strconv.Itoa(n)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Min = float64(a.X[0])
	p.X.Max = a.XMax
	return p, nil
}

// CategoryChart draws one bar per category in its own colour,
// baseline first.
func CategoryChart(b *BarAssembly, cfg Config) (*plot.Plot, error) {
	if len(b.Values) == 0 {
		return nil, scalefmt.Dataf("no categories to chart")
	}
	p := cfg.newPlot()

	floor := logFloor(b.Values, cfg)
	barW := cfg.width() / vg.Length(len(b.Values)+2) * 63 / 100

	thumbs := make([]plot.Thumbnailer, len(b.Values))
	for i, v := range b.Values {
		// One BarChart per category so each gets its own
		// colour and legend entry; the other slots are zero
		// and draw nothing.
		heights := make(plotter.Values, len(b.Values))
		if scalemath.Defined(v) {
			heights[i] = v
		}
		bars, err := newBars(heights, barW, floor)
		if err != nil {
			return nil, err
		}
		bars.Color = b.Colors[i]
		p.Add(bars)
		thumbs[i] = bars
	}
	addSortedLegend(p, b.Names, thumbs)
	p.NominalX(b.Names...)

	setBarYRange(p, b.YMax, floor, cfg)
	return p, nil
}

// newBars builds one bar series. A positive floor stacks the bars on
// an invisible base, since a log-scaled axis cannot transform a bar
// bottom at zero.
func newBars(heights plotter.Values, barW vg.Length, floor float64) (*plotter.BarChart, error) {
	bars, err := plotter.NewBarChart(heights, barW)
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = 0
	if floor > 0 {
		base := make(plotter.Values, len(heights))
		for i := range base {
			base[i] = floor
		}
		bb, err := plotter.NewBarChart(base, barW)
		if err != nil {
			return nil, err
		}
		// The base is never added to the plot, so only the
		// stacked tops are drawn.
		bars.StackOn(bb)
	}
	return bars, nil
}

// logFloor returns the bar floor for a log-scaled axis: two decades
// below the smallest plotted value, so the stacking error is
// invisible. It returns 0 for linear axes.
func logFloor(values []float64, cfg Config) float64 {
	if !cfg.LogY {
		return 0
	}
	min := math.Inf(1)
	for _, v := range values {
		if scalemath.Defined(v) && v > 0 && v < min {
			min = v
		}
	}
	if math.IsInf(min, 1) {
		min = 1
	}
	return min / 100
}

// addReference adds an ideal-scaling reference line, which stays out
// of the legend.
func addReference(p *plot.Plot, xys plotter.XYs, cfg Config) error {
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.Color = idealColor
	line.Width = cfg.lineWidth()
	p.Add(line)
	return nil
}

// addSortedLegend adds one legend entry per series, sorted by name so
// the legend order is stable regardless of series order.
func addSortedLegend(p *plot.Plot, names []string, thumbs []plot.Thumbnailer) {
	order := make([]int, len(names))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return names[order[i]] < names[order[j]]
	})
	for _, i := range order {
		p.Legend.Add(names[i], thumbs[i])
	}
}

// setBarYRange sets the y axis of a bar chart. On a log scale the
// axis starts at the bar floor instead of zero.
func setBarYRange(p *plot.Plot, ymax, floor float64, cfg Config) {
	if !cfg.LogY {
		p.Y.Min = 0
		p.Y.Max = ymax
		return
	}
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Min = floor
	p.Y.Max = ymax
}
