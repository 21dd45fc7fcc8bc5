// Copyright 2024 The Scaleplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Categoryplot charts walltime and speedup per category from a
// spreadsheet, relative to a baseline category.
//
// Usage:
//
//	categoryplot [options] results.xlsx
//
// The input worksheet must contain a category column and a walltime
// column (by default "version" and "walltime"). Exactly one row per
// category must remain after averaging repeated observations, and the
// baseline category (by default "baseline") must be present: its
// walltime is the reference all speedups are computed against. The
// baseline is always charted first.
//
// Categoryplot writes a walltime bar chart and a speedup bar chart,
// named <file_prefix->walltime.<ext> and <file_prefix->speedup.<ext>
// in the current directory. With -window the charts open in the
// platform image viewer instead.
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
	fmt.Fprintf(os.Stderr, "usage: categoryplot [options] results.xlsx\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	exit(2)
}

var (
	flagWorksheet   = flag.String("worksheet_name", "results", "read results from `worksheet`")
	flagCategoryCol = flag.String("category_column", "version", "input `column` containing the category labels")
	flagWalltimeCol = flag.String("walltime_column", "walltime", "input `column` containing the walltimes")
	flagFilterCol   = flag.String("filter_column", "", "optional boolean `column`; rows where it is false are excluded")
	flagBaseline    = flag.String("baseline_category", "baseline", "speedups are computed relative to this `category`")

	flagUnits = flag.String("walltime_units", "Minutes", "walltime `units` name used on axis labels")
	flagTitle = flag.String("title_prefix", "", "`prefix` prepended to the standard chart titles")
	flagFile  = flag.String("file_prefix", "", "`prefix` prepended to the standard file names")

	flagLogScale = flag.Bool("log_scale", false, "use a log scale on the y axis")
	flagWidth    = flag.Int("plot_width", 10, "chart width in `inches`")
	flagStyle    = flag.String("style", "", "predefined chart `style`")
	flagExt      = flag.String("file-extension", "png", "output image `format`: png, pdf, or svg")
	flagWindow   = flag.Bool("window", false, "display charts in a window instead of writing files")
	flagTight    = flag.Bool("tight", false, "draw with minimal margins")
)

func main() {
	log.SetPrefix("categoryplot: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}

	schema := scalefmt.Schema{
		Key:      *flagCategoryCol,
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
	cats, err := scalemath.ComputeCategories(scaleproc.Aggregate(g, schema), schema, *flagBaseline)
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
		XLabel: *flagCategoryCol,
		LogY:   *flagLogScale,
		Tight:  *flagTight,
	}
	pal := scalechart.DefaultPalette

	bars, err := scalechart.AssembleBars(cats, scalemath.Walltime, pal, 1.2)
	if err != nil {
		log.Fatal(err)
	}
	wcfg := cfg
	wcfg.Title = addPrefix("Walltime", *flagTitle, " - ")
	wcfg.YLabel = *flagUnits
	p, err := scalechart.CategoryChart(bars, wcfg)
	if err != nil {
		log.Fatal(err)
	}
	emit(p, addPrefix("walltime", *flagFile, "-"), wcfg)

	bars, err = scalechart.AssembleBars(cats, scalemath.Speedup, pal, 1.2)
	if err != nil {
		log.Fatal(err)
	}
	scfg := cfg
	scfg.Title = addPrefix("Speedup", *flagTitle, " - ")
	scfg.YLabel = "Speedup"
	p, err = scalechart.CategoryChart(bars, scfg)
	if err != nil {
		log.Fatal(err)
	}
	emit(p, addPrefix("speedup", *flagFile, "-"), scfg)
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
