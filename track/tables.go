// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package track

// buildBeforeAfter fills the before[]/after[] tables. before[i] is the
// fix j < i that maximises Delta(i, j); after[i] is the symmetric table
// for j > i. Each entry is built with a warm-start lower bound of the
// previous entry's distance minus maxDelta, which exploits the fact
// that before[i].distance (resp. after[i].distance) cannot fall by more
// than maxDelta between neighbouring i. When rounding makes that bound
// tie the true maximum, so that nothing strictly beats it, the entry is
// rebuilt by a full scan.
func (t *Track) buildBeforeAfter() {
	n := t.n
	t.before = limitTable{index: make([]int, n), distance: make([]float64, n)}
	t.before.index[0] = 0
	t.before.distance[0] = 0.0
	for i := 1; i < n; i++ {
		idx, dist := t.furthestFrom(i, 0, i, t.before.distance[i-1]-t.maxDelta)
		if idx < 0 {
			idx, dist = t.furthestFrom(i, 0, i, -1.0)
		}
		t.before.index[i] = idx
		t.before.distance[i] = dist
	}

	t.after = limitTable{index: make([]int, n), distance: make([]float64, n)}
	if n > 1 {
		idx, dist := t.furthestFrom(0, 1, n, -1.0)
		t.after.index[0] = idx
		t.after.distance[0] = dist
		for i := 1; i < n-1; i++ {
			idx, dist := t.furthestFrom(i, i+1, n, t.after.distance[i-1]-t.maxDelta)
			if idx < 0 {
				idx, dist = t.furthestFrom(i, i+1, n, -1.0)
			}
			t.after.index[i] = idx
			t.after.distance[i] = dist
		}
	}
	t.after.index[n-1] = n - 1
	t.after.distance[n-1] = 0.0
}
