// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package track

import "testing"

func TestDownsampleKeepsFirstFix(t *testing.T) {
	tr := buildLine(40, 0.05)
	ds := tr.Downsample(0.5 * 3.14159 / 180.0)
	if ds.Len() < 2 {
		t.Fatalf("downsampled track too short: %d", ds.Len())
	}
	if !floatEquals(ds.sinLat[0], tr.sinLat[0], eps) || !floatEquals(ds.lonRad[0], tr.lonRad[0], eps) {
		t.Error("downsampled track dropped the first fix")
	}
}

func TestDownsampleNeverExceedsOriginalLength(t *testing.T) {
	tr := buildLine(100, 0.02)
	ds := tr.Downsample(0.1 * 3.14159 / 180.0)
	if ds.Len() > tr.Len() {
		t.Errorf("downsampled track longer than original: %d > %d", ds.Len(), tr.Len())
	}
}

func TestDownsampledOpen0NeverBeatsFullResolution(t *testing.T) {
	tr := buildLine(60, 0.31)
	ds := tr.Downsample(0.2 * 3.14159 / 180.0)

	full := tr.OptimiseOpen0(0.0)
	coarse := ds.OptimiseOpen0(0.0)

	if coarse.Distance > full.Distance+eps {
		t.Errorf("downsampled result %v exceeds full-resolution result %v", coarse.Distance, full.Distance)
	}
}
