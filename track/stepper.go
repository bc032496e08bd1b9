// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package track

// forward returns the largest index jump from i that is guaranteed not
// to skip over any target within angular distance d, using maxDelta as
// a per-step upper bound on point-to-point delta.
func (t *Track) forward(i int, d float64) int {
	if t.maxDelta <= 0 {
		return i + 1
	}
	step := int(d / t.maxDelta)
	if step > 0 {
		return i + step
	}
	return i + 1
}

// fastForward returns the smallest j > i with sigmaDelta[j] >=
// sigmaDelta[i] + d, advancing by repeated forward bound-jumps; it
// always advances at least one index, even for d <= 0. It may return
// Len() or more (out of range).
func (t *Track) fastForward(i int, d float64) int {
	target := t.sigmaDelta[i] + d
	i = t.forward(i, d)
	if i >= t.n {
		return i
	}
	for {
		remaining := target - t.sigmaDelta[i]
		if remaining <= 0.0 {
			return i
		}
		i = t.forward(i, remaining)
		if i >= t.n {
			return i
		}
	}
}

// backward is the mirror of forward for decreasing i.
func (t *Track) backward(i int, d float64) int {
	if t.maxDelta <= 0 {
		return i - 1
	}
	step := int(d / t.maxDelta)
	if step > 0 {
		return i - step
	}
	return i - 1
}

// fastBackward is the mirror of fastForward; it may return -1.
func (t *Track) fastBackward(i int, d float64) int {
	target := t.sigmaDelta[i] - d
	i = t.backward(i, d)
	if i < 0 {
		return i
	}
	for {
		remaining := t.sigmaDelta[i] - target
		if remaining <= 0.0 {
			return i
		}
		i = t.backward(i, remaining)
		if i < 0 {
			return i
		}
	}
}
