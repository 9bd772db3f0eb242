// internal/output/rows.go
package output

import (
	"fmt"
	"math"
	"strconv"

	"epirt-core/incidence"
	"epirt-core/rt"
	"epirt-core/sir"
)

// TrajectoryRow tags one simulated point with the scenario that produced it.
type TrajectoryRow struct {
	Scenario string
	Point    sir.Point
}

// EstimateRow tags one Rt estimate with its geography and source file.
type EstimateRow struct {
	Geo        string
	SourceFile string
	Estimate   rt.Estimate
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// na renders non-finite posterior values as "NA" in text output.
func na(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "NA"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// FormatTrajectoryRowTSV returns the 5 trajectory columns (no newline).
func FormatTrajectoryRowTSV(r TrajectoryRow) string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s",
		r.Scenario, ftoa(r.Point.T), ftoa(r.Point.S), ftoa(r.Point.I), ftoa(r.Point.R))
}

// FormatEstimateRowTSV returns the 7 estimation columns (no newline).
func FormatEstimateRowTSV(r EstimateRow) string {
	e := r.Estimate
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s\t%s",
		r.Geo,
		e.StartDate.Format(incidence.DateLayout),
		e.EndDate.Format(incidence.DateLayout),
		na(e.Mean), na(e.Lower), na(e.Upper),
		strconv.FormatBool(e.Undefined))
}

const (
	trajectoryHeader = "scenario\tt\ts\ti\tr"
	estimateHeader   = "geo\twindow_start\twindow_end\tmean\tlower\tupper\tundefined"
)
