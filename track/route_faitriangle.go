// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package track

// FaiRatio is the minimum fraction of the total perimeter each leg of an
// FAI triangle must reach.
const FaiRatio = 0.28

// OptimiseFaiTriangle requires ComputeCircuitTables to have been run.
// It searches the same tp1/tp3/tp2 structure as OptimiseFlatTriangle,
// but additionally enforces that every leg is at least FaiRatio of the
// triangle's total perimeter. legbound tracks 0.28*bound and is used to
// prune candidate tp3/tp2 values that cannot possibly satisfy the ratio
// before the full three-leg check runs. Closed by circuitClose.
func (t *Track) OptimiseFaiTriangle(bound float64) Result {
	indices := sentinelIndices(5)
	legbound := FaiRatio * bound

	for tp1 := 0; tp1 < t.n-2; tp1++ {
		start := t.bestStart[tp1]
		finish := t.lastFinish[start]
		if finish < 0 {
			continue
		}
		tp3first := t.firstAtLeast(tp1, tp1+2, finish+1, legbound)
		if tp3first < 0 {
			continue
		}
		tp3last := t.lastAtLeast(tp1, tp3first, finish+1, legbound)
		if tp3last < 0 {
			continue
		}

		for tp3 := tp3last; tp3 >= tp3first; {
			leg3 := t.Delta(tp3, tp1)
			if leg3 < legbound {
				tp3 = t.fastBackward(tp3, legbound-leg3)
				continue
			}

			shortestLegBound := FaiRatio * leg3 / (1 - 2*FaiRatio)
			tp2first := t.firstAtLeast(tp1, tp1+1, tp3-1, shortestLegBound)
			if tp2first < 0 {
				tp3--
				continue
			}
			tp2last := t.lastAtLeast(tp3, tp2first, tp3, shortestLegBound)
			if tp2last < 0 {
				tp3--
				continue
			}
			longestLegBound := (1 - 2*FaiRatio) * leg3 / FaiRatio

			for tp2 := tp2first; tp2 <= tp2last; {
				d := 0.0
				leg1 := t.Delta(tp1, tp2)
				if leg1 < shortestLegBound {
					d = shortestLegBound - leg1
				}
				if leg1 > longestLegBound && leg1-longestLegBound > d {
					d = leg1 - longestLegBound
				}
				leg2 := t.Delta(tp2, tp3)
				if leg2 < shortestLegBound && shortestLegBound-leg2 > d {
					d = shortestLegBound - leg2
				}
				if leg2 > longestLegBound && leg2-longestLegBound > d {
					d = leg2 - longestLegBound
				}
				if d > 0.0 {
					tp2 = t.fastForward(tp2, d)
					continue
				}

				total := leg1 + leg2 + leg3
				thisLegBound := FaiRatio * total
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
				if d > 0.0 {
					tp2 = t.fastForward(tp2, 0.5*d)
					continue
				}

				if total < bound {
					tp2 = t.fastForward(tp2, 0.5*(bound-total))
					continue
				}

				bound = total
				legbound = thisLegBound
				indices[0] = start
				indices[1] = tp1
				indices[2] = tp2
				indices[3] = tp3
				indices[4] = finish
				tp2++
			}
			tp3--
		}
	}

	t.circuitClose(indices, t.circuitTolerance)
	return Result{Distance: bound, Indices: indices}
}
