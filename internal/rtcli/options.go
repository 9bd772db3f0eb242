// internal/rtcli/options.go
package rtcli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"epirt/internal/cliutil"
	"epirt/internal/version"
)

// Options holds all epirt flags and arguments.
type Options struct {
	// Input CSV files (positional, glob-expanded, '-' = stdin)
	Inputs []string

	// Geography selection; empty means every column.
	Geos []string

	// Estimation
	Width     int
	SIMean    float64
	SISD      float64
	PriorMean float64
	PriorSD   float64
	KeepZeros bool // keep leading zero-incidence days instead of trimming

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
			`%s: sliding-window Rt estimation from daily case counts

Reads wide CSV tables (date column plus one case-count column per
geography) and prints one posterior Rt row per window and geography.

Version: %s

Usage: %s [flags] data.csv [more.csv ...]
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags and positional CSV paths may be intermixed.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var geos stringSlice
	fs.Var(&geos, "geo", "geography column to estimate (repeatable; default all)")

	fs.IntVar(&opt.Width, "window", 7, "sliding window width in days [7]")
	fs.Float64Var(&opt.SIMean, "si-mean", 7, "serial-interval mean in days [7]")
	fs.Float64Var(&opt.SISD, "si-sd", 4.75, "serial-interval standard deviation in days [4.75]")
	fs.Float64Var(&opt.PriorMean, "prior-mean", 5, "gamma prior mean for Rt [5]")
	fs.Float64Var(&opt.PriorSD, "prior-sd", 5, "gamma prior standard deviation for Rt [5]")
	fs.BoolVar(&opt.KeepZeros, "keep-leading-zeros", false, "do not trim the leading run of zero-incidence days [false]")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Geos = geos
	opt.Header = !noHeader

	inputs, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.Inputs = inputs

	// Validation
	if len(opt.Inputs) == 0 {
		return opt, errors.New("at least one incidence CSV (or '-') is required")
	}
	if opt.Width < 1 {
		return opt, errors.New("--window must be >= 1")
	}
	if opt.SIMean <= 0 || opt.SISD <= 0 {
		return opt, errors.New("--si-mean and --si-sd must be > 0")
	}
	if opt.PriorMean <= 0 || opt.PriorSD <= 0 {
		return opt, errors.New("--prior-mean and --prior-sd must be > 0")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
