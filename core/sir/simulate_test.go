// core/sir/simulate_test.go
package sir

import (
	"math"
	"testing"
)

func relDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	if m := math.Max(math.Abs(a), math.Abs(b)); m > 0 {
		return d / m
	}
	return d
}

// Mass conservation over a full outbreak: S+I+R stays at the initial total.
func TestConservationOutbreak(t *testing.T) {
	y0 := State{S: 500000, I: 1, R: 10000}
	traj, err := Simulate(Params{Beta: 1, Gamma: 0.05, FreqDependent: true}, y0, 365)
	if err != nil {
		t.Fatal(err)
	}
	if len(traj) != 366 {
		t.Fatalf("expected 366 rows, got %d", len(traj))
	}
	total := y0.Total()
	for _, p := range traj {
		if relDiff(p.Total(), total) > 1e-6 {
			t.Fatalf("mass not conserved at t=%g: %g vs %g", p.T, p.Total(), total)
		}
	}
	if traj.Final().R <= y0.R {
		t.Errorf("R0 >> 1 should produce an outbreak: final R %g <= initial %g", traj.Final().R, y0.R)
	}
}

// I0 = 0: nothing happens, every compartment stays at its initial value.
func TestNoSeedNoOutbreak(t *testing.T) {
	y0 := State{S: 1000, I: 0, R: 5}
	traj, err := Simulate(Params{Beta: 0.8, Gamma: 0.2, FreqDependent: true}, y0, 50)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range traj {
		if relDiff(p.S, y0.S) > 1e-9 || math.Abs(p.I) > 1e-9 || relDiff(p.R, y0.R) > 1e-9 {
			t.Fatalf("trajectory moved without infectious seed at t=%g: %+v", p.T, p.State)
		}
	}
}

// Beta = 0: I decays as I0*exp(-gamma*t), S constant, R picks up the rest.
func TestPureDecayClosedForm(t *testing.T) {
	y0 := State{S: 100, I: 50, R: 0}
	gamma := 0.3
	traj, err := Simulate(Params{Beta: 0, Gamma: gamma}, y0, 30)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range traj {
		want := y0.I * math.Exp(-gamma*p.T)
		if relDiff(p.I, want) > 1e-6 {
			t.Fatalf("t=%g: I=%g, closed form %g", p.T, p.I, want)
		}
		if relDiff(p.S, y0.S) > 1e-9 {
			t.Fatalf("t=%g: S drifted to %g with beta=0", p.T, p.S)
		}
		wantR := y0.R + y0.I*(1-math.Exp(-gamma*p.T))
		if relDiff(p.R, wantR) > 1e-6 {
			t.Fatalf("t=%g: R=%g, closed form %g", p.T, p.R, wantR)
		}
	}
}

// R0 = 1 boundary: I never grows beyond its seed.
func TestBoundaryNoMajorOutbreak(t *testing.T) {
	y0 := State{S: 9999, I: 1, R: 0}
	traj, err := Simulate(Params{Beta: 0.2, Gamma: 0.2, FreqDependent: true}, y0, 365)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range traj {
		if p.I > y0.I*1.01 {
			t.Fatalf("I grew to %g at t=%g with R0=1", p.I, p.T)
		}
	}
}

func TestInvalidInputsRejected(t *testing.T) {
	ok := State{S: 10, I: 1, R: 0}
	cases := []struct {
		name    string
		p       Params
		y0      State
		horizon int
	}{
		{"negative beta", Params{Beta: -1, Gamma: 0.1}, ok, 10},
		{"negative gamma", Params{Beta: 1, Gamma: -0.1}, ok, 10},
		{"negative compartment", Params{Beta: 1, Gamma: 0.1}, State{S: -5, I: 1, R: 0}, 10},
		{"zero horizon", Params{Beta: 1, Gamma: 0.1}, ok, 0},
		{"freq-dependent empty population", Params{Beta: 1, Gamma: 0.1, FreqDependent: true}, State{}, 10},
	}
	for _, c := range cases {
		if _, err := Simulate(c.p, c.y0, c.horizon); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestR0(t *testing.T) {
	p := Params{Beta: 0.6, Gamma: 0.2, FreqDependent: true}
	if got := p.R0(1000); relDiff(got, 3) > 1e-12 {
		t.Fatalf("freq-dependent R0: got %g, want 3", got)
	}
	d := Params{Beta: 0.001, Gamma: 0.2}
	if got := d.R0(1000); relDiff(got, 5) > 1e-12 {
		t.Fatalf("density-dependent R0: got %g, want 5", got)
	}
}
