// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// WriteTrajectoryText prints one TSV line per time step.
func WriteTrajectoryText(w io.Writer, rows []TrajectoryRow, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, trajectoryHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, FormatTrajectoryRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// WriteEstimateText prints one TSV line per window and geography.
func WriteEstimateText(w io.Writer, rows []EstimateRow, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, estimateHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, FormatEstimateRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
