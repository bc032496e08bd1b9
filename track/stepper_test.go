// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package track

import "testing"

func TestFastForwardNeverSkipsAGenuineTarget(t *testing.T) {
	tr := buildLine(50, 0.23)
	for i := 0; i < tr.Len()-1; i++ {
		for _, d := range []float64{0.0, 1e-6, 0.01, 1.0} {
			j := tr.fastForward(i, d)
			target := tr.sigmaDelta[i] + d
			if j < tr.Len() && tr.sigmaDelta[j] < target-eps {
				t.Errorf("fastForward(%d, %v) landed at %d short of target %v (got %v)", i, d, j, target, tr.sigmaDelta[j])
			}
		}
	}
}

func TestFastBackwardNeverSkipsAGenuineTarget(t *testing.T) {
	tr := buildLine(50, 0.23)
	for i := 1; i < tr.Len(); i++ {
		for _, d := range []float64{0.0, 1e-6, 0.01, 1.0} {
			j := tr.fastBackward(i, d)
			target := tr.sigmaDelta[i] - d
			if j >= 0 && tr.sigmaDelta[j] > target+eps {
				t.Errorf("fastBackward(%d, %v) landed at %d short of target %v (got %v)", i, d, j, target, tr.sigmaDelta[j])
			}
		}
	}
}

func TestStepperHandlesZeroMaxDelta(t *testing.T) {
	// A single repeated position: maxDelta is 0, the stepper must fall
	// back to a plain +/-1 step rather than dividing by zero.
	tr, err := NewTrack([]Fix{fix(0, 0, 0), fix(0, 0, 1), fix(0, 0, 2)})
	if err != nil {
		t.Fatal(err)
	}
	if tr.maxDelta != 0 {
		t.Fatalf("expected maxDelta 0, got %v", tr.maxDelta)
	}
	if got := tr.forward(0, 1.0); got != 1 {
		t.Errorf("forward with zero maxDelta = %d, want 1", got)
	}
	if got := tr.backward(2, 1.0); got != 1 {
		t.Errorf("backward with zero maxDelta = %d, want 1", got)
	}
}
