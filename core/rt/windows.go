// core/rt/windows.go
package rt

import "fmt"

// Window is a half-open [Start, End) day-index range into an incidence
// series. End-Start is the window width in days.
type Window struct {
	Start int
	End   int
}

// Width returns End-Start.
func (w Window) Width() int { return w.End - w.Start }

// SlidingWindows returns the standard width-day schedule over an n-day
// series: Start runs from 2 through n-width, leaving the first two days out
// so the infectiousness sum has something to draw on. Returns nil when the
// series is too short for a single window.
func SlidingWindows(n, width int) []Window {
	if width < 1 || n < width+2 {
		return nil
	}
	out := make([]Window, 0, n-width-1)
	for start := 2; start <= n-width; start++ {
		out = append(out, Window{Start: start, End: start + width})
	}
	return out
}

func validateWindows(ws []Window, n int) error {
	if len(ws) == 0 {
		return fmt.Errorf("no estimation windows supplied")
	}
	for i, w := range ws {
		if w.Start < 1 || w.End <= w.Start || w.End > n {
			return fmt.Errorf("window %d [%d,%d) is malformed for a %d-day series", i, w.Start, w.End, n)
		}
	}
	return nil
}
