// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package track

// furthestFrom scans k in [begin, end) and returns the index maximising
// Delta(i, k) subject to Delta(i, k) > bound, skipping ahead with
// fastForward whenever the current candidate falls short. Returns
// (-1, bound) if nothing beats bound.
func (t *Track) furthestFrom(i, begin, end int, bound float64) (int, float64) {
	result := -1
	for j := begin; j < end; {
		d := t.Delta(i, j)
		if d > bound {
			bound = d
			result = j
			j++
		} else {
			j = t.fastForward(j, bound-d)
		}
	}
	return result, bound
}

// nearestTo is the minimising mirror of furthestFrom: it returns the
// index k in [begin, end) minimising Delta(i, k) subject to
// Delta(i, k) < bound.
func (t *Track) nearestTo(i, begin, end int, bound float64) (int, float64) {
	result := -1
	for j := begin; j < end; {
		d := t.Delta(i, j)
		if d < bound {
			result = j
			bound = d
			j++
		} else {
			j = t.fastForward(j, d-bound)
		}
	}
	return result, bound
}

// furthestFrom2 scans k in [begin, end) maximising
// Delta(i, k) + Delta(k, j) subject to exceeding bound. The stepper
// advances by half the shortfall, since the two-leg sum can move at
// twice the rate of a single delta.
func (t *Track) furthestFrom2(i, j, begin, end int, bound float64) (int, float64) {
	result := -1
	for k := begin; k < end; {
		d := t.Delta(i, k) + t.Delta(k, j)
		if d > bound {
			result = k
			bound = d
			k++
		} else {
			k = t.fastForward(k, (bound-d)/2.0)
		}
	}
	return result, bound
}

// firstAtLeast returns the earliest j in [begin, end) with
// Delta(i, j) > bound, or -1 if none.
func (t *Track) firstAtLeast(i, begin, end int, bound float64) int {
	for j := begin; j < end; {
		d := t.Delta(i, j)
		if d > bound {
			return j
		}
		j = t.fastForward(j, bound-d)
	}
	return -1
}

// lastAtLeast returns the latest j in [begin, end) with
// Delta(i, j) > bound, or -1 if none.
func (t *Track) lastAtLeast(i, begin, end int, bound float64) int {
	for j := end - 1; j >= begin; {
		d := t.Delta(i, j)
		if d > bound {
			return j
		}
		j = t.fastBackward(j, bound-d)
	}
	return -1
}
