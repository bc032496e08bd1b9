// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package track

// ComputeCircuitTables builds the lastFinish[]/bestStart[] tables for
// the given closure tolerance c (radians). lastFinish[i] is the largest
// j >= i with Delta(i, j) < c, or -1 if no such j exists. bestStart[i]
// is, among candidate starts s in [0, i], the one whose lastFinish[s]
// is maximal and still >= i — the widest closed loop enclosing i.
//
// Circuit tables are lazy: route optimisers that need a circuit (out
// and return, both triangle shapes, the quadrilateral) call this once
// per (Track, tolerance) pair and reuse the result across all of them.
func (t *Track) ComputeCircuitTables(c float64) {
	n := t.n
	t.circuitTolerance = c
	t.lastFinish = make([]int, n)
	t.bestStart = make([]int, n)

	currentBestStart := 0
	for i := 0; i < n; i++ {
		t.lastFinish[i] = -1
		for j := n - 1; j >= i; {
			d := t.Delta(i, j)
			if d < c {
				t.lastFinish[i] = j
				break
			}
			j = t.fastBackward(j, d-c)
		}
		if t.lastFinish[i] > t.lastFinish[currentBestStart] {
			currentBestStart = i
		}
		if t.lastFinish[currentBestStart] < i {
			currentBestStart = 0
			for j := 1; j <= i; j++ {
				if t.lastFinish[j] > t.lastFinish[currentBestStart] {
					currentBestStart = j
				}
			}
		}
		t.bestStart[i] = currentBestStart
	}
}

// HasCircuitTables reports whether ComputeCircuitTables has been run.
func (t *Track) HasCircuitTables() bool { return t.lastFinish != nil }
