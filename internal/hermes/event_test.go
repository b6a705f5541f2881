package hermes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Downstream agents consume these events by field name; the wire format is a
// contract.
func TestAnalysisEventWireFormat(t *testing.T) {
	ev := AnalysisEvent{
		AnalysisID:    "a1b2",
		Mode:          "1on1",
		Score:         72,
		Label:         "BALANCED",
		PatternTitles: []string{"Balanced effort", "Quick replies"},
	}

	data, err := json.Marshal(ev)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "a1b2", raw["analysis_id"])
	assert.Equal(t, "1on1", raw["mode"])
	assert.Equal(t, float64(72), raw["score"])
	assert.NotContains(t, raw, "participants", "zero counts stay off the wire")
}

func TestAnalysisEventGroupMode(t *testing.T) {
	ev := AnalysisEvent{AnalysisID: "c3d4", Mode: "group", Participants: 5}

	data, err := json.Marshal(ev)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(5), raw["participants"])
	assert.NotContains(t, raw, "score")
	assert.NotContains(t, raw, "label")
}
