// core/sir/sir.go
package sir

import "fmt"

// Params holds the SIR model rates.
type Params struct {
	Beta  float64 // transmission rate per unit time
	Gamma float64 // recovery rate per unit time

	// FreqDependent scales transmission by the initial total population
	// (frequency-dependent mixing). When false the raw mass-action term
	// Beta*S*I is used (density-dependent).
	FreqDependent bool
}

// R0 returns the basic reproduction number implied by the parameters for a
// fully susceptible population of the given size. +Inf when Gamma is 0 and
// transmission occurs.
func (p Params) R0(population float64) float64 {
	if p.FreqDependent {
		return p.Beta / p.Gamma
	}
	return p.Beta * population / p.Gamma
}

func (p Params) validate() error {
	if p.Beta < 0 {
		return fmt.Errorf("beta must be >= 0, got %g", p.Beta)
	}
	if p.Gamma < 0 {
		return fmt.Errorf("gamma must be >= 0, got %g", p.Gamma)
	}
	return nil
}

// State is one compartment snapshot.
type State struct {
	S float64 // susceptible
	I float64 // infectious
	R float64 // recovered
}

// Total returns S+I+R. The model has no births, deaths or migration, so the
// total is conserved along any valid trajectory.
func (s State) Total() float64 { return s.S + s.I + s.R }

func (s State) validate() error {
	if s.S < 0 || s.I < 0 || s.R < 0 {
		return fmt.Errorf("compartments must be >= 0, got S=%g I=%g R=%g", s.S, s.I, s.R)
	}
	return nil
}

func (s State) add(o State) State     { return State{s.S + o.S, s.I + o.I, s.R + o.R} }
func (s State) scale(c float64) State { return State{c * s.S, c * s.I, c * s.R} }

// Point is one trajectory row at time T.
type Point struct {
	T float64
	State
}

// Trajectory is the ordered sequence of per-time-unit snapshots, inclusive
// of t=0 and t=horizon.
type Trajectory []Point

// Final returns the last snapshot. Panics on an empty trajectory.
func (tr Trajectory) Final() Point { return tr[len(tr)-1] }
