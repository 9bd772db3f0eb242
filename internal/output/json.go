// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
	"math"

	"epirt-core/incidence"
	"epirt/pkg/api"
)

func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ToAPITrajectoryPoint converts a tagged point to the stable wire schema (v1).
func ToAPITrajectoryPoint(r TrajectoryRow) api.TrajectoryPointV1 {
	return api.TrajectoryPointV1{
		Scenario: r.Scenario,
		T:        r.Point.T,
		S:        r.Point.S,
		I:        r.Point.I,
		R:        r.Point.R,
	}
}

// ToAPIEstimate converts a tagged estimate to the stable wire schema (v1).
// Non-finite posterior values become null; JSON cannot carry Inf.
func ToAPIEstimate(r EstimateRow) api.RtEstimateV1 {
	e := r.Estimate
	v := api.RtEstimateV1{
		Geo:        r.Geo,
		SourceFile: r.SourceFile,
		Start:      e.StartDate.Format(incidence.DateLayout),
		End:        e.EndDate.Format(incidence.DateLayout),
		Undefined:  e.Undefined,
	}
	ptr := func(x float64) *float64 {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return nil
		}
		return &x
	}
	if !e.Undefined {
		v.Mean = ptr(e.Mean)
		v.Lower = ptr(e.Lower)
		v.Upper = ptr(e.Upper)
	}
	return v
}

// WriteTrajectoryJSON writes a single pretty-printed JSON array of v1 points.
func WriteTrajectoryJSON(w io.Writer, rows []TrajectoryRow) error {
	out := make([]api.TrajectoryPointV1, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToAPITrajectoryPoint(r))
	}
	return encodePretty(w, out)
}

// WriteEstimateJSON writes a single pretty-printed JSON array of v1 estimates.
func WriteEstimateJSON(w io.Writer, rows []EstimateRow) error {
	out := make([]api.RtEstimateV1, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToAPIEstimate(r))
	}
	return encodePretty(w, out)
}
