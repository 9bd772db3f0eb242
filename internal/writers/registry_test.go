// internal/writers/registry_test.go
package writers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"epirt/internal/output"
)

func TestRegisteredFormats(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		assert.Contains(t, TrajectoryWriters, format)
		assert.Contains(t, EstimateWriters, format)
	}
}

func TestUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteTrajectory("xml", &buf, nil, true))
	assert.Error(t, WriteEstimates("xml", &buf, nil, true))
}

func TestDispatchText(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteEstimates("text", &buf, []output.EstimateRow{}, true))
	assert.Equal(t, "geo\twindow_start\twindow_end\tmean\tlower\tupper\tundefined\n", buf.String())
}
