// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"epirt-core/sir"
	"epirt/internal/cli"
	"epirt/internal/config"
	"epirt/internal/output"
	"epirt/internal/version"
	"epirt/internal/writers"
)

// RunContext is the episim entry point. Exit codes: 0 success, 2 usage or
// parameter error, 3 write failure, 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("episim")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "episim version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	scenarios := []config.Scenario{{
		Name:    "manual",
		Beta:    opts.Beta,
		Gamma:   opts.Gamma,
		S0:      opts.S0,
		I0:      opts.I0,
		R0:      opts.R0,
		Horizon: opts.Horizon,
		Density: opts.Density,
	}}
	if opts.Config != "" {
		f, err := config.Load(opts.Config)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		scenarios = f.Scenarios
	}

	var rows []output.TrajectoryRow
	for _, sc := range scenarios {
		if parent.Err() != nil {
			return 130
		}
		traj, err := sir.Simulate(
			sir.Params{Beta: sc.Beta, Gamma: sc.Gamma, FreqDependent: !sc.Density},
			sir.State{S: sc.S0, I: sc.I0, R: sc.R0},
			sc.Horizon,
		)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "scenario %q: %v\n", sc.Name, err)
			return 2
		}
		for _, p := range traj {
			rows = append(rows, output.TrajectoryRow{Scenario: sc.Name, Point: p})
		}
	}

	if err := writers.WriteTrajectory(opts.Output, outw, rows, opts.Header); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushCode(outw, stderr, 0)
}

// Run wraps RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// flushCode flushes buffered output, tolerating broken pipes.
func flushCode(outw *bufio.Writer, stderr io.Writer, ok int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return ok
}
