// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

// Package track builds the in-memory representation of a flight track —
// the fix array plus the precomputed lookup tables (sigma-delta,
// before/after, circuit closure) that make nested turnpoint search
// feasible on tracks of tens of thousands of fixes — and the route
// optimisers that search it for the highest-scoring route under each
// supported league shape.
package track

import "math"

const (
	minLat = -90 * 60000
	maxLat = 90 * 60000
	minLon = -180 * 60000
	maxLon = 180 * 60000
)

// Fix is a single recorded GPS position, immutable once a Track is built
// from it. Lat/Lon are fixed-point milli-minutes (signed integer degrees
// times 60000); TimeUnixSec is absolute seconds since epoch and must be
// strictly increasing across a fix sequence.
type Fix struct {
	Lat         int32
	Lon         int32
	TimeUnixSec int64
	AltGPS      int32
	AltBaro     int32
	Valid       bool
	Name        string
}

// limitTable holds the before[]/after[] "furthest reachable" tables as
// parallel arrays rather than an array of structs — both fields are
// walked independently in the innermost optimiser loops.
type limitTable struct {
	index    []int
	distance []float64
}

// Track owns the per-fix timestamps and all derived arrays: the trig
// cache, sigma-delta prefix, before/after tables, and (once requested) the
// circuit-closure tables. It is built once, then queried read-only by
// any number of route optimisers.
type Track struct {
	n int

	sinLat []float64
	cosLat []float64
	lonRad []float64
	times  []int64

	sigmaDelta []float64
	maxDelta   float64

	before limitTable
	after  limitTable

	circuitTolerance float64
	lastFinish       []int
	bestStart        []int
}

// Len returns the number of fixes in the track.
func (t *Track) Len() int { return t.n }

// Time returns the original Unix-seconds timestamp of fix i.
func (t *Track) Time(i int) int64 { return t.times[i] }

// SigmaDelta returns the cumulative angular distance from fix 0 to fix i.
func (t *Track) SigmaDelta(i int) float64 { return t.sigmaDelta[i] }

// NewTrack validates fixes and builds a Track from them. Fixes must be
// non-empty, strictly increasing in time, and within valid lat/lon
// bounds; any violation is returned as a *ValidationError and no Track
// is built.
func NewTrack(fixes []Fix) (*Track, error) {
	if len(fixes) == 0 {
		return nil, &ValidationError{Reason: EmptySequence, Index: -1}
	}
	for i, f := range fixes {
		if f.Lat < minLat || f.Lat > maxLat {
			return nil, &ValidationError{Reason: LatOutOfRange, Index: i}
		}
		if f.Lon < minLon || f.Lon > maxLon {
			return nil, &ValidationError{Reason: LonOutOfRange, Index: i}
		}
		if i > 0 && f.TimeUnixSec <= fixes[i-1].TimeUnixSec {
			return nil, &ValidationError{Reason: NonMonotonicTime, Index: i}
		}
	}

	n := len(fixes)
	t := &Track{
		n:      n,
		sinLat: make([]float64, n),
		cosLat: make([]float64, n),
		lonRad: make([]float64, n),
		times:  make([]int64, n),
	}
	for i, f := range fixes {
		lat := math.Pi * float64(f.Lat) / (180 * 60000)
		lon := math.Pi * float64(f.Lon) / (180 * 60000)
		t.sinLat[i] = math.Sin(lat)
		t.cosLat[i] = math.Cos(lat)
		t.lonRad[i] = lon
		t.times[i] = f.TimeUnixSec
	}

	t.sigmaDelta = make([]float64, n)
	t.maxDelta = 0.0
	for i := 1; i < n; i++ {
		d := t.Delta(i-1, i)
		t.sigmaDelta[i] = t.sigmaDelta[i-1] + d
		if d > t.maxDelta {
			t.maxDelta = d
		}
	}

	t.buildBeforeAfter()

	return t, nil
}
