// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package track

// CircuitCloseWeight is the heavy penalty weight applied to the
// start/finish closure leg during circuitClose. It is empirical — the
// reference implementation offers no derivation — and is treated as a
// tunable constant rather than re-derived here.
const CircuitCloseWeight = 256.0

// circuitClose tightens the start (indices[0]) and finish
// (indices[n-1]) of a closed route by searching start in
// [indices[0], indices[1]] and finish in [indices[n-2], indices[n-1]]
// for the pair minimising the penalty
//
//	Delta(tp1, start) + W*Delta(start, finish) + Delta(finish, tpLast)
//
// subject to Delta(start, finish) < circuitBound, where W is
// CircuitCloseWeight. indices is modified in place; it is left
// untouched if indices[0] is already the sentinel -1.
func (t *Track) circuitClose(indices []int, circuitBound float64) {
	n := len(indices)
	if indices[0] == -1 {
		return
	}
	bound := t.Delta(indices[1], indices[0]) + CircuitCloseWeight*t.Delta(indices[0], indices[n-1]) + t.Delta(indices[n-1], indices[n-2])
	for start := indices[0]; start <= indices[1]; start++ {
		leg1 := t.Delta(indices[1], start)
		for finish := indices[n-1]; finish >= indices[n-2]; finish-- {
			leg2 := t.Delta(start, finish)
			if leg2 < circuitBound {
				leg3 := t.Delta(finish, indices[n-2])
				score := leg1 + CircuitCloseWeight*leg2 + leg3
				if score < bound {
					indices[0] = start
					indices[n-1] = finish
					bound = score
				}
			}
		}
	}
}
