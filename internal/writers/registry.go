// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"epirt/internal/output"
)

// Writer registries (format name → handler). Registered in init below so a
// new format only touches this package.
var (
	TrajectoryWriters = map[string]func(w io.Writer, rows []output.TrajectoryRow, header bool) error{}
	EstimateWriters   = map[string]func(w io.Writer, rows []output.EstimateRow, header bool) error{}
)

func init() {
	TrajectoryWriters["text"] = output.WriteTrajectoryText
	TrajectoryWriters["json"] = func(w io.Writer, rows []output.TrajectoryRow, _ bool) error {
		return output.WriteTrajectoryJSON(w, rows)
	}
	EstimateWriters["text"] = output.WriteEstimateText
	EstimateWriters["json"] = func(w io.Writer, rows []output.EstimateRow, _ bool) error {
		return output.WriteEstimateJSON(w, rows)
	}
}

// WriteTrajectory dispatches to the registered handler for format.
func WriteTrajectory(format string, w io.Writer, rows []output.TrajectoryRow, header bool) error {
	fn, ok := TrajectoryWriters[format]
	if !ok {
		return fmt.Errorf("unknown trajectory format %q (no writer registered)", format)
	}
	return fn(w, rows, header)
}

// WriteEstimates dispatches to the registered handler for format.
func WriteEstimates(format string, w io.Writer, rows []output.EstimateRow, header bool) error {
	fn, ok := EstimateWriters[format]
	if !ok {
		return fmt.Errorf("unknown estimate format %q (no writer registered)", format)
	}
	return fn(w, rows, header)
}
