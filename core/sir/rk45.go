// core/sir/rk45.go
package sir

import (
	"fmt"
	"math"
)

// rhs evaluates the state derivative at a given state. The SIR system is
// autonomous, so time does not appear.
type rhs func(State) State

// control holds the adaptive step-size settings.
type control struct {
	atol float64 // absolute error tolerance per component
	rtol float64 // relative error tolerance per component
	hMax float64
	hMin float64
}

var defaultControl = control{
	atol: 1e-9,
	rtol: 1e-8,
	hMax: 1.0,
	hMin: 1e-12,
}

// Dormand-Prince 5(4) tableau. The pairing gives a fifth-order solution with
// an embedded fourth-order error estimate, FSAL.
var (
	dpA = [7][6]float64{
		{},
		{1.0 / 5.0},
		{3.0 / 40.0, 9.0 / 40.0},
		{44.0 / 45.0, -56.0 / 15.0, 32.0 / 9.0},
		{19372.0 / 6561.0, -25360.0 / 2187.0, 64448.0 / 6561.0, -212.0 / 729.0},
		{9017.0 / 3168.0, -355.0 / 33.0, 46732.0 / 5247.0, 49.0 / 176.0, -5103.0 / 18656.0},
		{35.0 / 384.0, 0, 500.0 / 1113.0, 125.0 / 192.0, -2187.0 / 6784.0, 11.0 / 84.0},
	}
	dpB = [7]float64{35.0 / 384.0, 0, 500.0 / 1113.0, 125.0 / 192.0, -2187.0 / 6784.0, 11.0 / 84.0, 0}
	dpE = [7]float64{
		35.0/384.0 - 5179.0/57600.0,
		0,
		500.0/1113.0 - 7571.0/16695.0,
		125.0/192.0 - 393.0/640.0,
		-2187.0/6784.0 + 92097.0/339200.0,
		11.0/84.0 - 187.0/2100.0,
		-1.0 / 40.0,
	}
)

// integrate advances y0 from t=0 to t=horizon with adaptive step-size
// control, sampling the solution at every integer time. Steps are shortened
// to land exactly on each output time, so no interpolation is needed.
func integrate(f rhs, y0 State, horizon int, ctl control) (Trajectory, error) {
	traj := make(Trajectory, 0, horizon+1)
	traj = append(traj, Point{T: 0, State: y0})

	y := y0
	t := 0.0
	h := math.Min(0.1, ctl.hMax)
	k1 := f(y)

	var ks [7]State
	for next := 1; next <= horizon; next++ {
		target := float64(next)
		for target-t > ctl.hMin {
			hs := math.Min(h, target-t)
			if hs < ctl.hMin {
				return nil, fmt.Errorf("integration stalled at t=%g (step %g below minimum)", t, hs)
			}

			ks[0] = k1
			for i := 1; i < 7; i++ {
				yi := y
				for j := 0; j < i; j++ {
					if dpA[i][j] != 0 {
						yi = yi.add(ks[j].scale(hs * dpA[i][j]))
					}
				}
				ks[i] = f(yi)
			}

			var yNext, errV State
			yNext = y
			for i := 0; i < 7; i++ {
				if dpB[i] != 0 {
					yNext = yNext.add(ks[i].scale(hs * dpB[i]))
				}
				if dpE[i] != 0 {
					errV = errV.add(ks[i].scale(hs * dpE[i]))
				}
			}

			errNorm := stepError(y, yNext, errV, ctl)
			if errNorm <= 1 {
				t += hs
				y = yNext
				k1 = ks[6] // FSAL: last stage is the derivative at the new point
			}
			h = nextStep(hs, errNorm, ctl)
		}
		t = target
		traj = append(traj, Point{T: target, State: y})
	}
	return traj, nil
}

// stepError returns the scaled RMS error of a step; values <= 1 accept.
func stepError(y, yNext, e State, ctl control) float64 {
	sq := func(err, a, b float64) float64 {
		sc := ctl.atol + ctl.rtol*math.Max(math.Abs(a), math.Abs(b))
		v := err / sc
		return v * v
	}
	sum := sq(e.S, y.S, yNext.S) + sq(e.I, y.I, yNext.I) + sq(e.R, y.R, yNext.R)
	return math.Sqrt(sum / 3)
}

// nextStep applies the standard I-controller with safety factor 0.9 and
// growth clamped to [0.2, 5].
func nextStep(h, errNorm float64, ctl control) float64 {
	fac := 5.0
	if errNorm > 0 {
		fac = 0.9 * math.Pow(1/errNorm, 1.0/5.0)
		fac = math.Min(5.0, math.Max(0.2, fac))
	}
	return math.Min(h*fac, ctl.hMax)
}
