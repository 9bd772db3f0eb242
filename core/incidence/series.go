// core/incidence/series.go
package incidence

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used throughout.
const DateLayout = "2006-01-02"

// Series is a contiguous daily case-count series for one geography.
// Counts[i] is the incidence on Start plus i days; gaps are not
// representable, callers must pre-fill missing days with zeros.
type Series struct {
	Geo    string
	Start  time.Time // midnight UTC of the first day
	Counts []int
}

// Len returns the number of days covered.
func (s Series) Len() int { return len(s.Counts) }

// Day returns the calendar date of day index i.
func (s Series) Day(i int) time.Time { return s.Start.AddDate(0, 0, i) }

// Validate checks that the series is non-empty and all counts are
// non-negative.
func (s Series) Validate() error {
	if len(s.Counts) == 0 {
		return fmt.Errorf("incidence series %q is empty", s.Geo)
	}
	for i, c := range s.Counts {
		if c < 0 {
			return fmt.Errorf("incidence series %q: negative count %d on %s", s.Geo, c, s.Day(i).Format(DateLayout))
		}
	}
	return nil
}

// TrimLeadingZeros returns a copy with the leading run of zero days removed
// and Start advanced accordingly. A series of all zeros trims to empty.
func (s Series) TrimLeadingZeros() Series {
	i := 0
	for i < len(s.Counts) && s.Counts[i] == 0 {
		i++
	}
	return Series{Geo: s.Geo, Start: s.Day(i), Counts: s.Counts[i:]}
}
