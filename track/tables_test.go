// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package track

import "testing"

// buildLine constructs a track of n fixes walking east along the
// equator by stepDeg degrees per fix, one second apart.
func buildLine(n int, stepDeg float64) *Track {
	fixes := make([]Fix, n)
	for i := 0; i < n; i++ {
		fixes[i] = fix(0, float64(i)*stepDeg, int64(i))
	}
	tr, err := NewTrack(fixes)
	if err != nil {
		panic(err)
	}
	return tr
}

func TestBeforeAfterAgreeWithBruteForce(t *testing.T) {
	tr := buildLine(12, 0.37)

	for i := 0; i < tr.Len(); i++ {
		wantDist, wantIdx := -1.0, -1
		for j := 0; j < i; j++ {
			if d := tr.Delta(i, j); d > wantDist {
				wantDist, wantIdx = d, j
			}
		}
		if i == 0 {
			wantDist, wantIdx = 0, 0
		}
		if !floatEquals(tr.before.distance[i], wantDist, 1e-6) || tr.before.index[i] != wantIdx {
			t.Errorf("before[%d] = (%d, %v), want (%d, %v)", i, tr.before.index[i], tr.before.distance[i], wantIdx, wantDist)
		}
	}

	for i := 0; i < tr.Len(); i++ {
		wantDist, wantIdx := -1.0, tr.Len()-1
		for j := i + 1; j < tr.Len(); j++ {
			if d := tr.Delta(i, j); d > wantDist {
				wantDist, wantIdx = d, j
			}
		}
		if i == tr.Len()-1 {
			wantDist, wantIdx = 0, tr.Len()-1
		}
		if !floatEquals(tr.after.distance[i], wantDist, 1e-6) || tr.after.index[i] != wantIdx {
			t.Errorf("after[%d] = (%d, %v), want (%d, %v)", i, tr.after.index[i], tr.after.distance[i], wantIdx, wantDist)
		}
	}
}

func TestCircuitTablesRespectTolerance(t *testing.T) {
	// An out-and-back line: walk away from the origin and back,
	// so late fixes close a loop with early ones.
	n := 20
	fixes := make([]Fix, 0, n)
	for i := 0; i < n/2; i++ {
		fixes = append(fixes, fix(0, float64(i)*0.1, int64(len(fixes))))
	}
	for i := n / 2; i < n; i++ {
		fixes = append(fixes, fix(0, float64(n-i-1)*0.1, int64(len(fixes))))
	}
	tr, err := NewTrack(fixes)
	if err != nil {
		t.Fatal(err)
	}
	tolerance := 0.2 * 0.1 * 3.14159 / 180.0
	tr.ComputeCircuitTables(tolerance)

	for i := 0; i < tr.Len(); i++ {
		lf := tr.lastFinish[i]
		if lf == -1 {
			continue
		}
		if lf < i {
			t.Errorf("lastFinish[%d] = %d is before i", i, lf)
		}
		if tr.Delta(i, lf) >= tolerance {
			t.Errorf("lastFinish[%d]=%d has Delta %v >= tolerance %v", i, lf, tr.Delta(i, lf), tolerance)
		}
	}

	for i := 0; i < tr.Len(); i++ {
		bs := tr.bestStart[i]
		if bs < 0 || bs > i {
			t.Errorf("bestStart[%d] = %d out of range", i, bs)
		}
		if tr.lastFinish[bs] < i && tr.lastFinish[bs] != -1 {
			t.Errorf("bestStart[%d]=%d has lastFinish %d < %d", i, bs, tr.lastFinish[bs], i)
		}
	}
}

func TestRaisingInitialBoundNeverFindsABetterRoute(t *testing.T) {
	tr := buildLine(30, 0.41)
	low := tr.OptimiseOpen0(0.0)
	high := tr.OptimiseOpen0(low.Distance * 2)
	// Seeding above the true optimum must not manufacture a better
	// route: either the search reports no win (sentinel indices) or,
	// if it does win, the winning distance is still bounded by the
	// true optimum found from a zero seed.
	if high.Beaten() && high.Distance > low.Distance+eps {
		t.Errorf("raising initial bound found a better route: %v > %v", high.Distance, low.Distance)
	}
}
