// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/xcflight/xcopt/internal/fixio"
	"github.com/xcflight/xcopt/internal/geojsonout"
	"github.com/xcflight/xcopt/league"
	"github.com/xcflight/xcopt/track"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "xcopt - cross-country flight track optimiser\n\nUsage:\n\n  %s [<options>] <fix sequence JSON>\n\nAllowed options:\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	leagueName := flag.StringP("league", "l", "frcfd", "league to score against: frcfd or ukxcl")
	outputPath := flag.StringP("output", "o", "", "GeoJSON output file (default: stdout)")
	gzipped := flag.BoolP("gzip", "z", false, "input file is gzip-compressed")
	quad := flag.BoolP("quadrilateral", "q", false, "also search for the (expensive) quadrilateral shape in frcfd mode")
	help := flag.BoolP("help", "?", false, "this message")

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "No fix sequence file specified, see --help")
		os.Exit(1)
	}

	fixes, err := loadFixes(args[0], *gzipped)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading fixes:", err)
		os.Exit(1)
	}

	t, err := track.NewTrack(fixes)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error building track:", err)
		os.Exit(1)
	}

	var results []league.ShapeResult
	switch strings.ToLower(*leagueName) {
	case "frcfd":
		cfg := league.FRCFD()
		cfg.EnableQuadrilateral = *quad
		results = league.RunFRCFD(t, cfg)
	case "ukxcl":
		results = league.RunUKXCL(t, league.UKXCL())
	default:
		fmt.Fprintf(os.Stderr, "Unknown league '%s', see --help\n", *leagueName)
		os.Exit(1)
	}

	fc := geojsonout.FeatureCollection(results, fixes)
	out, err := fc.MarshalJSON()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error encoding GeoJSON:", err)
		os.Exit(1)
	}

	if *outputPath == "" {
		os.Stdout.Write(out)
		fmt.Fprintln(os.Stdout)
		return
	}

	if err := os.WriteFile(*outputPath, out, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "Error writing output file:", err)
		os.Exit(1)
	}
}

func loadFixes(path string, gzipped bool) ([]track.Fix, error) {
	if gzipped {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return fixio.LoadFixesJSONGz(f)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return fixio.LoadFixesJSON(data)
}
