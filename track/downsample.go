// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package track

// Downsample produces a new Track containing only fix 0 and every
// subsequent fix j whose angular distance from the last kept fix
// exceeds threshold. It is a coarse pass used to establish a strong
// lower bound cheaply before running the full-resolution optimiser; the
// result is itself a complete Track with all tables rebuilt.
func (t *Track) Downsample(threshold float64) *Track {
	n := t.n
	result := &Track{
		sinLat:     make([]float64, 0, n),
		cosLat:     make([]float64, 0, n),
		lonRad:     make([]float64, 0, n),
		times:      make([]int64, 0, n),
		sigmaDelta: make([]float64, 0, n),
	}
	result.sinLat = append(result.sinLat, t.sinLat[0])
	result.cosLat = append(result.cosLat, t.cosLat[0])
	result.lonRad = append(result.lonRad, t.lonRad[0])
	result.times = append(result.times, t.times[0])
	result.sigmaDelta = append(result.sigmaDelta, 0.0)
	result.n = 1

	last := 0
	for j := 1; j < n; j++ {
		d := t.Delta(last, j)
		if d > threshold {
			result.sinLat = append(result.sinLat, t.sinLat[j])
			result.cosLat = append(result.cosLat, t.cosLat[j])
			result.lonRad = append(result.lonRad, t.lonRad[j])
			result.times = append(result.times, t.times[j])
			result.sigmaDelta = append(result.sigmaDelta, result.sigmaDelta[result.n-1]+d)
			if d > result.maxDelta {
				result.maxDelta = d
			}
			result.n++
			last = j
		}
	}

	result.buildBeforeAfter()
	return result
}
