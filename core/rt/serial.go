// core/rt/serial.go
package rt

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// SerialInterval characterizes the delay between symptom onset in a primary
// case and the secondary cases it generates, modeled as a gamma distribution
// with the given mean and standard deviation.
type SerialInterval struct {
	Mean float64
	SD   float64
}

func (si SerialInterval) validate() error {
	if si.Mean <= 0 {
		return fmt.Errorf("serial-interval mean must be > 0, got %g", si.Mean)
	}
	if si.SD <= 0 {
		return fmt.Errorf("serial-interval sd must be > 0, got %g", si.SD)
	}
	return nil
}

// gamma returns the distribution parameterized by shape/rate.
func (si SerialInterval) gamma() distuv.Gamma {
	shape := (si.Mean / si.SD) * (si.Mean / si.SD)
	rate := si.Mean / (si.SD * si.SD)
	return distuv.Gamma{Alpha: shape, Beta: rate}
}

// Discretize returns integer-day infectiousness weights w[0..n]. w[0] is 0
// (no same-day transmission); w[s] for s >= 1 is the gamma probability mass
// on [s-0.5, s+0.5), with the mass below half a day folded into day 1. The
// weights are renormalized to sum to 1.
func (si SerialInterval) Discretize(n int) ([]float64, error) {
	if err := si.validate(); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("discretization length must be >= 1, got %d", n)
	}
	g := si.gamma()
	w := make([]float64, n+1)
	sum := 0.0
	for s := 1; s <= n; s++ {
		lo := float64(s) - 0.5
		if s == 1 {
			lo = 0
		}
		w[s] = g.CDF(float64(s)+0.5) - g.CDF(lo)
		sum += w[s]
	}
	if sum <= 0 {
		return nil, fmt.Errorf("serial interval (mean %g, sd %g) has no mass on days 1..%d", si.Mean, si.SD, n)
	}
	for s := range w {
		w[s] /= sum
	}
	return w, nil
}
