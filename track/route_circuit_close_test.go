// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package track

import "testing"

func TestCircuitCloseLeavesSentinelUntouched(t *testing.T) {
	tr := buildLine(10, 0.1)
	indices := sentinelIndices(4)
	tr.circuitClose(indices, 1.0)
	for _, idx := range indices {
		if idx != -1 {
			t.Errorf("circuitClose modified sentinel indices: %v", indices)
		}
	}
}

func TestCircuitCloseKeepsIndicesWithinOriginalSpan(t *testing.T) {
	tr := buildLoop(40, 0.1)
	indices := []int{5, 8, 20, 30}
	origStart, origFinish := indices[0], indices[len(indices)-1]
	tr.circuitClose(indices, 0.5*3.14159/180.0)
	if indices[0] < origStart || indices[0] > indices[1] {
		t.Errorf("closed start %d escaped [%d, %d]", indices[0], origStart, indices[1])
	}
	if indices[len(indices)-1] > origFinish || indices[len(indices)-1] < indices[len(indices)-2] {
		t.Errorf("closed finish %d escaped [%d, %d]", indices[len(indices)-1], indices[len(indices)-2], origFinish)
	}
}
