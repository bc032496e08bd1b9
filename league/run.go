// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package league

import "github.com/xcflight/xcopt/track"

// ShapeResult pairs a route shape with the result of optimising it.
type ShapeResult struct {
	Shape  track.RouteShape
	Result track.Result
}

func pushUnlessSentinel(out []ShapeResult, shape track.RouteShape, r track.Result) []ShapeResult {
	if r.Beaten() {
		out = append(out, ShapeResult{Shape: shape, Result: r})
	}
	return out
}

// RunFRCFD runs the FRCFD-style league over t: Open0, Open1, Open2,
// OutAndReturn, FlatTriangle, FaiTriangle, in that push order,
// mirroring rb_XC_FRCFD_optimize's bound-threading exactly, including
// its quirks:
//   - the bound accumulated through Open0/Open1/Open2 does NOT carry
//     into OutAndReturn, which is always seeded at cfg.OpenFloor;
//   - the FAI triangle's downsampled first pass is also reseeded at
//     cfg.OpenFloor rather than continuing from Open2's bound;
//   - the FlatTriangle's downsampled first pass DOES continue from the
//     FAI triangle's full-resolution result.
//
// Quadrilateral is run only if cfg.EnableQuadrilateral is set (the
// reference keeps it permanently disabled).
func RunFRCFD(t *track.Track, cfg Config) []ShapeResult {
	var out []ShapeResult

	open0 := t.OptimiseOpen0(0.0)
	out = pushUnlessSentinel(out, track.Open0, open0)
	bound := open0.Distance
	if bound < cfg.OpenFloor {
		bound = cfg.OpenFloor
	}

	open1 := t.OptimiseOpen1(bound)
	out = pushUnlessSentinel(out, track.Open1, open1)
	bound = open1.Distance

	open2 := t.OptimiseOpen2(bound)
	out = pushUnlessSentinel(out, track.Open2, open2)

	t.ComputeCircuitTables(cfg.CircuitTolerance)
	outAndReturn := t.OptimiseOutAndReturn(cfg.OpenFloor)
	out = pushUnlessSentinel(out, track.OutAndReturn, outAndReturn)

	downsampled := t.Downsample(cfg.DownsampleThreshold)
	downsampled.ComputeCircuitTables(cfg.CircuitTolerance)

	faiBound := downsampled.OptimiseFaiTriangle(cfg.OpenFloor)
	fai := t.OptimiseFaiTriangle(faiBound.Distance)
	if !fai.Beaten() {
		fai = faiBound
	}

	flatBound := downsampled.OptimiseFlatTriangle(fai.Distance)
	flat := t.OptimiseFlatTriangle(flatBound.Distance)
	if !flat.Beaten() {
		if !flatBound.Beaten() {
			flat = fai
		} else {
			flat = flatBound
		}
	}

	out = pushUnlessSentinel(out, track.FlatTriangle, flat)
	out = pushUnlessSentinel(out, track.FaiTriangle, fai)

	if cfg.EnableQuadrilateral {
		quadBound := downsampled.OptimiseQuadrilateral(cfg.OpenFloor)
		out = pushUnlessSentinel(out, track.Quadrilateral, quadBound)
	}

	return out
}

// RunUKXCL runs the simpler UK cross-country league over t: Open0
// through Open3, each seeded from the previous shape's bound, no
// circuits. Mirrors rb_XC_UKXCL_optimize.
func RunUKXCL(t *track.Track, cfg Config) []ShapeResult {
	var out []ShapeResult

	open0 := t.OptimiseOpen0(0.0)
	out = pushUnlessSentinel(out, track.Open0, open0)
	bound := open0.Distance
	if bound < cfg.OpenFloor {
		bound = cfg.OpenFloor
	}

	open1 := t.OptimiseOpen1(bound)
	out = pushUnlessSentinel(out, track.Open1, open1)

	open2 := t.OptimiseOpen2(open1.Distance)
	out = pushUnlessSentinel(out, track.Open2, open2)

	open3 := t.OptimiseOpen3(open2.Distance)
	out = pushUnlessSentinel(out, track.Open3, open3)

	return out
}
