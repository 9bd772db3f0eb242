// core/sir/simulate.go
package sir

import "fmt"

// Simulate integrates the SIR system
//
//	dS/dt = -beta*S*I/D
//	dI/dt =  beta*S*I/D - gamma*I
//	dR/dt =  gamma*I
//
// from y0 over [0, horizon] and returns one snapshot per integer time step.
// D is the initial total population in frequency-dependent mode and 1
// otherwise. Invalid inputs are rejected, never clamped.
func Simulate(p Params, y0 State, horizon int) (Trajectory, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := y0.validate(); err != nil {
		return nil, err
	}
	if horizon < 1 {
		return nil, fmt.Errorf("horizon must be >= 1, got %d", horizon)
	}

	denom := 1.0
	if p.FreqDependent {
		denom = y0.Total()
		if denom <= 0 {
			return nil, fmt.Errorf("frequency-dependent mode needs a positive initial population, got %g", denom)
		}
	}

	f := func(y State) State {
		infection := p.Beta * y.S * y.I / denom
		recovery := p.Gamma * y.I
		return State{S: -infection, I: infection - recovery, R: recovery}
	}
	return integrate(f, y0, horizon, defaultControl)
}
