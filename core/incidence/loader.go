// core/incidence/loader.go
package incidence

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ReadCSV parses a wide incidence table: a "date" column followed by one
// case-count column per geography, one row per calendar day in ascending
// order. Any missing day is an error; callers must pre-fill gaps with zeros
// rather than skip days.
func ReadCSV(r io.Reader) ([]Series, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 2 || strings.ToLower(strings.TrimSpace(header[0])) != "date" {
		return nil, fmt.Errorf("expected header 'date,<geo>,...', got %q", strings.Join(header, ","))
	}
	geos := header[1:]

	var start, prev time.Time
	counts := make([][]int, len(geos))
	row := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row++
		day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(rec[0]), time.UTC)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad date %q: %w", row, rec[0], err)
		}
		if row == 1 {
			start = day
		} else if got := day.Sub(prev); got != 24*time.Hour {
			return nil, fmt.Errorf("row %d: %s does not follow %s by one day; fill gaps with zeros",
				row, day.Format(DateLayout), prev.Format(DateLayout))
		}
		prev = day

		if len(rec) != len(geos)+1 {
			return nil, fmt.Errorf("row %d: %d fields, want %d", row, len(rec), len(geos)+1)
		}
		for i, field := range rec[1:] {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: bad count %q", row, geos[i], field)
			}
			if n < 0 {
				return nil, fmt.Errorf("row %d, column %q: negative count %d", row, geos[i], n)
			}
			counts[i] = append(counts[i], n)
		}
	}
	if row == 0 {
		return nil, fmt.Errorf("no data rows")
	}

	out := make([]Series, len(geos))
	for i, g := range geos {
		out[i] = Series{Geo: strings.TrimSpace(g), Start: start, Counts: counts[i]}
	}
	return out, nil
}

// LoadCSV reads a wide incidence table from a file, or stdin for "-".
func LoadCSV(path string) ([]Series, error) {
	if path == "-" {
		return ReadCSV(os.Stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	list, err := ReadCSV(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}
