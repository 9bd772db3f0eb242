// internal/rtapp/app.go
package rtapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"epirt-core/incidence"
	"epirt-core/rt"
	"epirt/internal/output"
	"epirt/internal/rtcli"
	"epirt/internal/version"
	"epirt/internal/writers"
)

// RunContext is the epirt entry point. Exit codes: 0 success, 2 usage or
// input error, 3 write failure, 130 cancelled. Geographies too short for a
// single window are skipped with a warning rather than failing the run.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := rtcli.NewFlagSet("epirt")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 0)
	}

	opts, err := rtcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "epirt version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	cfg := rt.Config{
		SerialInterval: rt.SerialInterval{Mean: opts.SIMean, SD: opts.SISD},
		Prior:          rt.Prior{Mean: opts.PriorMean, SD: opts.PriorSD},
	}
	wanted := map[string]bool{}
	for _, g := range opts.Geos {
		wanted[g] = true
	}

	var rows []output.EstimateRow
	for _, path := range opts.Inputs {
		if parent.Err() != nil {
			return 130
		}
		list, err := incidence.LoadCSV(path)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		matched := 0
		for _, s := range list {
			if len(wanted) > 0 && !wanted[s.Geo] {
				continue
			}
			matched++
			if !opts.KeepZeros {
				s = s.TrimLeadingZeros()
			}
			windows := rt.SlidingWindows(s.Len(), opts.Width)
			if len(windows) == 0 {
				_, _ = fmt.Fprintf(stderr, "warning: %s: geography %q has only %d usable days, need %d; skipping\n",
					path, s.Geo, s.Len(), opts.Width+2)
				continue
			}
			ests, err := rt.EstimateSeries(s, windows, cfg)
			if err != nil {
				_, _ = fmt.Fprintf(stderr, "%s: %v\n", path, err)
				return 2
			}
			for _, e := range ests {
				rows = append(rows, output.EstimateRow{Geo: s.Geo, SourceFile: path, Estimate: e})
			}
		}
		if len(wanted) > 0 && matched == 0 {
			_, _ = fmt.Fprintf(stderr, "%s: none of the requested geographies present\n", path)
			return 2
		}
	}

	if err := writers.WriteEstimates(opts.Output, outw, rows, opts.Header); err != nil {
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

func flushCode(outw *bufio.Writer, stderr io.Writer, ok int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return ok
}
