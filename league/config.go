// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

// Package league wires the track package's per-shape optimisers into
// the two competition presets the reference implementation exposes —
// FRCFD (open distance, out-and-return, and both triangle shapes) and
// UKXCL (open distance only, up to three turnpoints) — threading the
// incoming bound from one shape to the next exactly as
// rb_XC_FRCFD_optimize/rb_XC_UKXCL_optimize do.
package league

import "github.com/xcflight/xcopt/track"

// Config holds the tunables spec.md §6 lists as "thresholds observed in
// the reference", plus whether RunFRCFD also attempts the
// quadrilateral. The other shapes a run attempts are fixed by the Run
// function called.
type Config struct {
	// CircuitTolerance is the closure tolerance c (radians) passed to
	// Track.ComputeCircuitTables.
	CircuitTolerance float64
	// DownsampleThreshold (radians) is used for the cheap first pass of
	// the two-pass triangle pattern.
	DownsampleThreshold float64
	// OpenFloor (radians) is the minimum bound fed into Open1/Open2 once
	// Open0 has run, so a trivial Open0 win doesn't dominate them.
	OpenFloor float64
	// EnableQuadrilateral opts into the quadrilateral shape, off by
	// default in both presets below (matching the reference, which
	// keeps it behind #if 0 as experimental/too costly).
	EnableQuadrilateral bool
}

const (
	// defaultCircuitTolerance is 3 km expressed in radians (3.0 / R).
	defaultCircuitTolerance = 3.0 / track.R
	// defaultDownsampleThreshold is 0.5 km expressed in radians.
	defaultDownsampleThreshold = 0.5 / track.R
	// defaultOpenFloor is 15 km expressed in radians.
	defaultOpenFloor = 15.0 / track.R
)

// DefaultConfig returns the reference's constants unchanged.
func DefaultConfig() Config {
	return Config{
		CircuitTolerance:    defaultCircuitTolerance,
		DownsampleThreshold: defaultDownsampleThreshold,
		OpenFloor:           defaultOpenFloor,
		EnableQuadrilateral: false,
	}
}

// FRCFD returns the "French cross-country" style league: Open0, Open1,
// Open2, OutAndReturn, FaiTriangle, and FlatTriangle, in that order,
// mirroring rb_XC_FRCFD_optimize.
func FRCFD() Config {
	return DefaultConfig()
}

// UKXCL returns the simpler UK cross-country league: Open0 through
// Open3 only, no circuits, mirroring rb_XC_UKXCL_optimize.
func UKXCL() Config {
	return DefaultConfig()
}
