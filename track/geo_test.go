// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package track

import (
	"math"
	"testing"
)

const eps = 1e-9

func floatEquals(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func fix(lat, lon float64, t int64) Fix {
	return Fix{Lat: int32(lat * 60000), Lon: int32(lon * 60000), TimeUnixSec: t, Valid: true}
}

func TestDeltaZeroForIdenticalPoint(t *testing.T) {
	tr, err := NewTrack([]Fix{fix(48.0, 11.0, 0), fix(48.0, 11.0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	if d := tr.Delta(0, 1); !floatEquals(d, 0, eps) {
		t.Errorf("expected 0, got %v", d)
	}
}

func TestDeltaOneDegreeLatitude(t *testing.T) {
	tr, err := NewTrack([]Fix{fix(0, 0, 0), fix(1, 0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	want := math.Pi / 180.0
	if d := tr.Delta(0, 1); !floatEquals(d, want, 1e-6) {
		t.Errorf("expected %v, got %v", want, d)
	}
}

func TestDeltaIsSymmetric(t *testing.T) {
	tr, err := NewTrack([]Fix{fix(10, 10, 0), fix(20, -5, 1), fix(-3, 40, 2)})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < tr.Len(); i++ {
		for j := 0; j < tr.Len(); j++ {
			if !floatEquals(tr.Delta(i, j), tr.Delta(j, i), eps) {
				t.Errorf("Delta(%d,%d) != Delta(%d,%d)", i, j, j, i)
			}
		}
	}
}

func TestDeltaClampsAcosDomain(t *testing.T) {
	tr, err := NewTrack([]Fix{fix(45, 45, 0), fix(45, 45, 1)})
	if err != nil {
		t.Fatal(err)
	}
	if d := tr.Delta(0, 1); math.IsNaN(d) {
		t.Error("Delta returned NaN for coincident points")
	}
}
