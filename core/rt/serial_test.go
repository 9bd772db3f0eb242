// core/rt/serial_test.go
package rt

import (
	"math"
	"testing"
)

func TestDiscretizeWeights(t *testing.T) {
	si := SerialInterval{Mean: 7, SD: 4.75}
	w, err := si.Discretize(60)
	if err != nil {
		t.Fatal(err)
	}
	if w[0] != 0 {
		t.Errorf("day-0 weight must be 0, got %g", w[0])
	}
	sum, mean := 0.0, 0.0
	for s, v := range w {
		if v < 0 {
			t.Fatalf("negative weight %g at day %d", v, s)
		}
		sum += v
		mean += float64(s) * v
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("weights sum to %g, want 1", sum)
	}
	// Midpoint discretization keeps the mean close to the continuous one.
	if math.Abs(mean-si.Mean) > 0.5 {
		t.Errorf("discretized mean %g too far from %g", mean, si.Mean)
	}
}

func TestDiscretizeShortTail(t *testing.T) {
	// All mass crammed into the only available day still normalizes.
	w, err := SerialInterval{Mean: 7, SD: 2}.Discretize(1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(w[1]-1) > 1e-12 {
		t.Errorf("single-day weight %g, want 1", w[1])
	}
}

func TestDiscretizeRejectsInvalid(t *testing.T) {
	cases := []SerialInterval{
		{Mean: 0, SD: 1},
		{Mean: -3, SD: 1},
		{Mean: 5, SD: 0},
		{Mean: 5, SD: -1},
	}
	for _, si := range cases {
		if _, err := si.Discretize(30); err == nil {
			t.Errorf("expected error for %+v", si)
		}
	}
	if _, err := (SerialInterval{Mean: 5, SD: 2}).Discretize(0); err == nil {
		t.Error("expected error for zero-length discretization")
	}
}
