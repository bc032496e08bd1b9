// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package track

// OptimiseOpen0 maximises Delta(start, finish) over start < finish: the
// unconstrained two-point open distance.
func (t *Track) OptimiseOpen0(bound float64) Result {
	indices := sentinelIndices(2)
	for start := 0; start < t.n-1; start++ {
		finish, newBound := t.furthestFrom(start, start+1, t.n, bound)
		bound = newBound
		if finish != -1 {
			indices[0] = start
			indices[1] = finish
		}
	}
	return Result{Distance: bound, Indices: indices}
}

// OptimiseOpen1 maximises before[tp1].distance + after[tp1].distance
// over tp1 in [1, n-1), i.e. open distance through a single turnpoint.
func (t *Track) OptimiseOpen1(bound float64) Result {
	indices := sentinelIndices(3)
	for tp1 := 1; tp1 < t.n-1; {
		total := t.before.distance[tp1] + t.after.distance[tp1]
		if total > bound {
			indices[0] = t.before.index[tp1]
			indices[1] = tp1
			indices[2] = t.after.index[tp1]
			bound = total
			tp1++
		} else {
			tp1 = t.fastForward(tp1, 0.5*(bound-total))
		}
	}
	return Result{Distance: bound, Indices: indices}
}

// OptimiseOpen2 extends OptimiseOpen1 with a second turnpoint: for each
// tp1, the inner loop maximises Delta(tp1, tp2) + after[tp2].distance.
func (t *Track) OptimiseOpen2(bound float64) Result {
	indices := sentinelIndices(4)
	for tp1 := 1; tp1 < t.n-2; tp1++ {
		leg1 := t.before.distance[tp1]
		bound23 := bound - leg1
		for tp2 := tp1 + 1; tp2 < t.n-1; {
			leg23 := t.Delta(tp1, tp2) + t.after.distance[tp2]
			if leg23 > bound23 {
				indices[0] = t.before.index[tp1]
				indices[1] = tp1
				indices[2] = tp2
				indices[3] = t.after.index[tp2]
				bound23 = leg23
				tp2++
			} else {
				tp2 = t.fastForward(tp2, 0.5*(bound23-leg23))
			}
		}
		bound = leg1 + bound23
	}
	return Result{Distance: bound, Indices: indices}
}

// OptimiseOpen3 triply nests the same pattern for a third turnpoint.
func (t *Track) OptimiseOpen3(bound float64) Result {
	indices := sentinelIndices(5)
	for tp1 := 1; tp1 < t.n-3; tp1++ {
		leg1 := t.before.distance[tp1]
		bound234 := bound - leg1
		for tp2 := tp1 + 1; tp2 < t.n-2; tp2++ {
			leg2 := t.Delta(tp1, tp2)
			bound34 := bound234 - leg2
			for tp3 := tp2 + 1; tp3 < t.n-1; {
				legs34 := t.Delta(tp2, tp3) + t.after.distance[tp3]
				if legs34 > bound34 {
					indices[0] = t.before.index[tp1]
					indices[1] = tp1
					indices[2] = tp2
					indices[3] = tp3
					indices[4] = t.after.index[tp3]
					bound34 = legs34
					tp3++
				} else {
					tp3 = t.fastForward(tp3, 0.5*(bound34-legs34))
				}
			}
			bound234 = leg2 + bound34
		}
		bound = leg1 + bound234
	}
	return Result{Distance: bound, Indices: indices}
}
