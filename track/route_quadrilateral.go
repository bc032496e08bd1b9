// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package track

// QuadRatio is the minimum fraction of the total perimeter each of the
// quadrilateral's four legs must reach.
const QuadRatio = 0.15

// OptimiseQuadrilateral requires ComputeCircuitTables to have been run.
// Four turnpoints, each leg constrained to at least QuadRatio of the
// total perimeter, searched tp1/tp4/tp2/tp3 with the same progressive
// leg-bound pruning as OptimiseFaiTriangle. This shape is the most
// expensive of the eight and is optionally disabled by callers (see
// league.Config.EnableQuadrilateral) because of its cost.
func (t *Track) OptimiseQuadrilateral(bound float64) Result {
	indices := sentinelIndices(6)
	legbound := QuadRatio * bound
	const other = 1 - 3*QuadRatio // 0.55: the max share left for one leg once the other three meet QuadRatio

	for tp1 := 0; tp1 < t.n-3; tp1++ {
		start := t.bestStart[tp1]
		finish := t.lastFinish[start]
		if finish < 0 {
			continue
		}
		tp4first := t.firstAtLeast(tp1, tp1+2, finish+1, legbound)
		if tp4first < 0 {
			continue
		}
		tp4last := t.lastAtLeast(tp1, tp4first, finish+1, legbound)
		if tp4last < 0 {
			continue
		}

		for tp4 := tp4last; tp4 >= tp4first; {
			leg4 := t.Delta(tp4, tp1)
			if leg4 < legbound {
				tp4 = t.fastBackward(tp4, legbound-leg4)
				continue
			}

			shortestLegBound := QuadRatio * leg4 / other
			tp2first := t.firstAtLeast(tp1, tp1+1, tp4-1, shortestLegBound)
			if tp2first < 0 {
				tp4--
				continue
			}
			tp3last := t.lastAtLeast(tp4, tp2first+1, tp4, shortestLegBound)
			if tp3last < 0 {
				tp4--
				continue
			}
			tp2last := t.lastAtLeast(tp4, tp2first+1, tp3last-1, shortestLegBound)
			if tp2last < 0 {
				tp4--
				continue
			}
			longestLegBound := other * leg4 / QuadRatio

			for tp2 := tp2first; tp2 <= tp2last; {
				leg1 := t.Delta(tp1, tp2)
				shortestLegBound2 := QuadRatio * (leg1 + leg4) / (1 - 2*QuadRatio)
				if shortestLegBound2 > shortestLegBound {
					shortestLegBound2 = shortestLegBound
				}
				longestLegBound2 := other * (leg1 + leg4) / (2 * QuadRatio)
				if longestLegBound2 < longestLegBound {
					longestLegBound2 = longestLegBound
				}
				tp3first := t.firstAtLeast(tp2, tp2+1, tp3last+1, shortestLegBound2)
				if tp3first < 0 {
					tp2++
					continue
				}

				for tp3 := tp3last; tp3 >= tp3first; {
					d := 0.0
					leg2 := t.Delta(tp2, tp3)
					if leg2 < shortestLegBound2 {
						d = shortestLegBound2 - leg2
					}
					if leg2 > longestLegBound2 && leg2-longestLegBound2 > d {
						d = leg2 - longestLegBound2
					}
					leg3 := t.Delta(tp3, tp4)
					if leg3 < shortestLegBound2 && shortestLegBound2-leg3 > d {
						d = shortestLegBound2 - leg3
					}
					if leg3 > longestLegBound2 && leg3-longestLegBound2 > d {
						d = leg3 - longestLegBound2
					}
					if d > 0.0 {
						tp3 = t.fastBackward(tp3, d)
						continue
					}

					total := leg1 + leg2 + leg3 + leg4
					thisLegBound := QuadRatio * total
					d = 0.0
					if leg1 < thisLegBound {
						d = thisLegBound - leg1
					}
					if leg2 < thisLegBound && thisLegBound-leg2 > d {
						d = thisLegBound - leg2
					}
					if leg3 < thisLegBound && thisLegBound-leg3 > d {
						d = thisLegBound - leg3
					}
					if leg4 < thisLegBound && thisLegBound-leg4 > d {
						d = thisLegBound - leg4
					}
					if d > 0.0 {
						tp3 = t.fastBackward(tp3, 0.5*d)
						continue
					}

					if total < bound {
						tp3 = t.fastBackward(tp3, 0.5*(bound-total))
						continue
					}

					bound = total
					legbound = thisLegBound
					indices[0] = start
					indices[1] = tp1
					indices[2] = tp2
					indices[3] = tp3
					indices[4] = tp4
					indices[5] = finish
					tp3--
				}
				tp2++
			}
			tp4--
		}
	}

	t.circuitClose(indices, t.circuitTolerance)
	return Result{Distance: bound, Indices: indices}
}
