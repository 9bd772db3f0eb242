// pkg/api/epirt_v1.go
package api

// TrajectoryPointV1 is the stable JSON schema for one simulated time step.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type TrajectoryPointV1 struct {
	Scenario string  `json:"scenario,omitempty"`
	T        float64 `json:"t"`
	S        float64 `json:"s"`
	I        float64 `json:"i"`
	R        float64 `json:"r"`
}

// RtEstimateV1 is the stable JSON schema for one estimation window.
// Mean/Lower/Upper are null when the window's infectiousness was degenerate
// and Rt could not be bounded (Undefined is then true); JSON has no Inf.
type RtEstimateV1 struct {
	Geo        string   `json:"geo,omitempty"`
	SourceFile string   `json:"source_file,omitempty"`
	Start      string   `json:"window_start"`
	End        string   `json:"window_end"`
	Mean       *float64 `json:"mean"`
	Lower      *float64 `json:"lower"`
	Upper      *float64 `json:"upper"`
	Undefined  bool     `json:"undefined,omitempty"`
}
