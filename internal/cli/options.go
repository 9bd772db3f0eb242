// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"epirt/internal/version"
)

// Options holds all episim flags.
type Options struct {
	// Model parameters (ignored when a scenario file is given)
	Beta    float64
	Gamma   float64
	S0      float64
	I0      float64
	R0      float64
	Horizon int
	Density bool // density-dependent transmission (default is frequency-dependent)

	// Scenario file
	Config string

	// Output
	Output string // text | json
	Header bool   // true unless --no-header

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: SIR outbreak simulator

Integrates the susceptible-infected-recovered compartmental model with an
adaptive-step solver and prints one row per time unit.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Model parameters; defaults reproduce the classic large-outbreak run.
	fs.Float64Var(&opt.Beta, "beta", 1, "transmission rate per time unit [1]")
	fs.Float64Var(&opt.Gamma, "gamma", 0.05, "recovery rate per time unit [0.05]")
	fs.Float64Var(&opt.S0, "s0", 500000, "initial susceptible count [500000]")
	fs.Float64Var(&opt.I0, "i0", 1, "initial infectious count [1]")
	fs.Float64Var(&opt.R0, "r0", 10000, "initial recovered count [10000]")
	fs.IntVar(&opt.Horizon, "horizon", 365, "number of time units to simulate [365]")
	fs.BoolVar(&opt.Density, "density", false, "density-dependent transmission (beta unscaled by population) [false]")

	fs.StringVar(&opt.Config, "config", "", "YAML scenario file; runs every scenario it defines")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	if opt.Config != "" {
		inline := false
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "beta", "gamma", "s0", "i0", "r0", "horizon", "density":
				inline = true
			}
		})
		if inline {
			return opt, errors.New("--config conflicts with inline model parameters")
		}
	}
	if opt.Beta < 0 || opt.Gamma < 0 {
		return opt, errors.New("--beta and --gamma must be >= 0")
	}
	if opt.S0 < 0 || opt.I0 < 0 || opt.R0 < 0 {
		return opt, errors.New("--s0/--i0/--r0 must be >= 0")
	}
	if opt.Horizon < 1 {
		return opt, errors.New("--horizon must be >= 1")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
