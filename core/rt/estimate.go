// core/rt/estimate.go
//
// Sliding-window Bayesian estimator of the instantaneous reproduction
// number, after Cori et al. (2013). Incidence on day t is modeled as
// Poisson with mean Rt * Lambda_t, where Lambda_t is past incidence
// weighted by the discretized serial interval; a gamma prior on Rt then
// gives a gamma posterior per window in closed form.
package rt

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"epirt-core/incidence"
)

// Prior is the gamma prior on Rt, given as mean and standard deviation.
type Prior struct {
	Mean float64
	SD   float64
}

// DefaultPrior is the conventional weakly-informative choice (mean 5, sd 5,
// i.e. shape 1, rate 0.2).
var DefaultPrior = Prior{Mean: 5, SD: 5}

func (p Prior) shapeRate() (shape, rate float64, err error) {
	if p.Mean <= 0 || p.SD <= 0 {
		return 0, 0, fmt.Errorf("prior mean and sd must be > 0, got mean=%g sd=%g", p.Mean, p.SD)
	}
	shape = (p.Mean / p.SD) * (p.Mean / p.SD)
	rate = p.Mean / (p.SD * p.SD)
	return shape, rate, nil
}

// Config collects the estimator inputs that do not vary per window.
type Config struct {
	SerialInterval SerialInterval
	Prior          Prior // zero value means DefaultPrior
}

// Estimate is one window's posterior summary. When Undefined is set the
// window had no measurable infectiousness: Mean and Upper are +Inf and the
// interval is [0, +Inf), representing "Rt cannot be bounded here". Such
// rows are reported, never dropped.
type Estimate struct {
	Window    Window
	StartDate time.Time // set by EstimateSeries
	EndDate   time.Time // date of the window's last day
	Mean      float64
	Lower     float64
	Upper     float64
	Undefined bool
}

// Infectiousness returns Lambda_t for every day of the series: past
// incidence weighted by the serial-interval weights w, with Lambda_0 = 0.
func Infectiousness(counts []int, w []float64) []float64 {
	lambda := make([]float64, len(counts))
	for t := 1; t < len(counts); t++ {
		sum := 0.0
		for s := 1; s <= t && s < len(w); s++ {
			sum += float64(counts[t-s]) * w[s]
		}
		lambda[t] = sum
	}
	return lambda
}

// degenerateLambda is the aggregate-infectiousness floor below which a
// window's posterior is not meaningfully constrained by the data.
const degenerateLambda = 1e-12

// EstimateWindows computes one posterior Rt summary per supplied window, in
// the same order. Counts must be non-negative; windows must lie within the
// series and start at day 1 or later.
func EstimateWindows(counts []int, windows []Window, cfg Config) ([]Estimate, error) {
	if len(counts) < 2 {
		return nil, fmt.Errorf("incidence series too short (%d days)", len(counts))
	}
	for i, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("negative incidence %d on day %d", c, i)
		}
	}
	if err := validateWindows(windows, len(counts)); err != nil {
		return nil, err
	}
	prior := cfg.Prior
	if prior == (Prior{}) {
		prior = DefaultPrior
	}
	a0, b0, err := prior.shapeRate()
	if err != nil {
		return nil, err
	}
	w, err := cfg.SerialInterval.Discretize(len(counts) - 1)
	if err != nil {
		return nil, err
	}
	lambda := Infectiousness(counts, w)

	out := make([]Estimate, 0, len(windows))
	for _, win := range windows {
		sumI := 0
		sumL := 0.0
		for t := win.Start; t < win.End; t++ {
			sumI += counts[t]
			sumL += lambda[t]
		}
		if sumL < degenerateLambda {
			out = append(out, Estimate{
				Window:    win,
				Mean:      math.Inf(1),
				Lower:     0,
				Upper:     math.Inf(1),
				Undefined: true,
			})
			continue
		}
		shape := a0 + float64(sumI)
		rate := b0 + sumL
		post := distuv.Gamma{Alpha: shape, Beta: rate}
		out = append(out, Estimate{
			Window: win,
			Mean:   shape / rate,
			Lower:  post.Quantile(0.025),
			Upper:  post.Quantile(0.975),
		})
	}
	return out, nil
}

// EstimateSeries runs EstimateWindows against a dated series and attaches
// calendar dates: StartDate is the window's first day, EndDate its last.
func EstimateSeries(s incidence.Series, windows []Window, cfg Config) ([]Estimate, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	ests, err := EstimateWindows(s.Counts, windows, cfg)
	if err != nil {
		return nil, fmt.Errorf("series %q: %w", s.Geo, err)
	}
	for i := range ests {
		ests[i].StartDate = s.Day(ests[i].Window.Start)
		ests[i].EndDate = s.Day(ests[i].Window.End - 1)
	}
	return ests, nil
}
