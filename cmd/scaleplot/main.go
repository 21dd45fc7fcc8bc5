// Copyright 2024 The Scaleplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Scaleplot charts strong and weak scaling results from a spreadsheet.
//
// Usage:
//
//	scaleplot [options] results.xlsx
//
// The input worksheet must contain a group column, a compute-element
// count column, and a walltime column (by default "group",
// "compute_elements", and "walltime"; see the -*_column options).
// Each group must contain exactly one row with a compute-element
// count of 1: its walltime is the reference all ratios are computed
// against. Repeated observations of the same (group, count) pair are
// averaged first.
//
// Scaleplot writes a walltime bar chart, an efficiency line chart,
// and (for strong scaling) a speedup line chart, named
// <file_prefix->walltime.<ext> and so on in the current directory.
// With -window the charts open in the platform image viewer instead.
//
// With -weak, the efficiency chart reports weak-scaling efficiency
// (walltime stability at a problem size that grows with the element
// count) and no speedup chart is produced.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/hpctools/scaleplot/scalechart"
	"github.com/hpctools/scaleplot/scalefmt"
	"github.com/hpctools/scaleplot/scalemath"
	"github.com/hpctools/scaleplot/scaleproc"
)

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(os.Stderr, "usage: scaleplot [options] results.xlsx\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	exit(2)
}

var (
	flagWorksheet   = flag.String("worksheet_name", "results", "read results from `worksheet`")
	flagGroupCol    = flag.String("group_column", "group", "input `column` containing the result group names")
	flagElementsCol = flag.String("compute_element_column", "compute_elements", "input `column` containing the compute-element counts")
	flagWalltimeCol = flag.String("walltime_column", "walltime", "input `column` containing the walltimes")
	flagFilterCol   = flag.String("filter_column", "", "optional boolean `column`; rows where it is false are excluded")

	flagElementName = flag.String("compute_element_name", "Threads", "compute-element `name` used on axis labels")
	flagUnits       = flag.String("walltime_units", "Minutes", "walltime `units` name used on axis labels")
	flagTitle       = flag.String("title_prefix", "", "`prefix` prepended to the standard chart titles")
	flagFile        = flag.String("file_prefix", "", "`prefix` prepended to the standard file names")

	flagWeak       = flag.Bool("weak", false, "chart weak-scaling efficiency instead of strong, and skip the speedup chart")
	flagSpeedupMax = flag.Float64("speedup_max", 16.1, "speedup chart y-axis `maximum`")
	flagWidth      = flag.Int("plot_width", 10, "chart width in `inches`")
	flagStyle      = flag.String("style", "", "predefined chart `style`")
	flagExt        = flag.String("file-extension", "png", "output image `format`: png, pdf, or svg")
	flagWindow     = flag.Bool("window", false, "display charts in a window instead of writing files")
	flagTight      = flag.Bool("tight", false, "draw with minimal margins")
)

func main() {
	log.SetPrefix("scaleplot: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}

	schema := scalefmt.Schema{
		Key:      *flagGroupCol,
		Elements: *flagElementsCol,
		Walltime: *flagWalltimeCol,
		Filter:   *flagFilterCol,
	}
	tab, err := scalefmt.ReadTable(flag.Arg(0), *flagWorksheet, schema)
	if err != nil {
		log.Fatal(err)
	}
	g, err := scaleproc.Clean(tab, schema)
	if err != nil {
		log.Fatal(err)
	}
	rs, err := scalemath.Compute(scaleproc.Aggregate(g, schema), schema)
	if err != nil {
		log.Fatal(err)
	}

	style, ok := scalechart.LookupStyle(*flagStyle)
	if !ok {
		fmt.Fprintf(os.Stderr, "warning: %q is not a known style (have %v); using the default style\n",
			*flagStyle, scalechart.StyleNames())
	}
	cfg := scalechart.Config{
		Style:  style,
		Width:  vg.Length(*flagWidth) * vg.Inch,
		XLabel: *flagElementName,
		Tight:  *flagTight,
	}
	pal := scalechart.DefaultPalette

	// Walltime bars.
	asm := scalechart.Assemble(rs, scalemath.Walltime, pal, 1.2, 1.0)
	wcfg := cfg
	wcfg.Title = addPrefix("Walltime", *flagTitle, " - ")
	wcfg.YLabel = *flagUnits
	p, err := scalechart.WalltimeChart(asm, wcfg)
	if err != nil {
		log.Fatal(err)
	}
	emit(p, addPrefix("walltime", *flagFile, "-"), wcfg)

	// Efficiency lines.
	metric, base := scalemath.StrongEfficiency, "strong-efficiency"
	if *flagWeak {
		metric, base = scalemath.WeakEfficiency, "weak-efficiency"
	}
	asm = scalechart.Assemble(rs, metric, pal, 1.0, 1.1)
	asm.YMax = 1.3
	ecfg := cfg
	ecfg.Title = addPrefix("Efficiency", *flagTitle, " - ")
	ecfg.YLabel = "Efficiency"
	p, err = scalechart.EfficiencyChart(asm, ecfg)
	if err != nil {
		log.Fatal(err)
	}
	emit(p, addPrefix(base, *flagFile, "-"), ecfg)

	// Speedup lines. A speedup chart is meaningless for weak
	// scaling, where the ideal walltime is flat.
	if !*flagWeak {
		asm = scalechart.Assemble(rs, scalemath.Speedup, pal, 1.0, 1.05)
		asm.YMax = *flagSpeedupMax
		scfg := cfg
		scfg.Title = addPrefix("Speedup", *flagTitle, " - ")
		scfg.YLabel = "Speedup"
		p, err = scalechart.SpeedupChart(asm, scfg)
		if err != nil {
			log.Fatal(err)
		}
		emit(p, addPrefix("speedup", *flagFile, "-"), scfg)
	}
}

// emit writes or displays one finished chart.
func emit(p *plot.Plot, name string, cfg scalechart.Config) {
	if *flagWindow {
		if err := scalechart.Window(p, name, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}
	path, err := scalechart.Save(p, name, *flagExt, cfg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Saving figure to %s\n", path)
}

// addPrefix joins an optional prefix to a base name.
func addPrefix(base, prefix, sep string) string {
	if prefix == "" {
		return base
	}
	return prefix + sep + base
}
