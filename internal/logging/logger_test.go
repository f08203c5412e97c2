package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarriesRunID(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Config{Level: "debug"})
	log.Debug().Str("strategy", "slicing").Msg("reversed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "slicing", entry["strategy"])
	runID, ok := entry["run_id"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(runID)
	assert.NoError(t, err)
}

func TestNewLevel(t *testing.T) {
	testCases := []struct {
		name   string
		level  string
		logged bool
	}{
		{name: "default is info", level: "", logged: false},
		{name: "unparseable falls back to info", level: "loud", logged: false},
		{name: "debug", level: "debug", logged: true},
		{name: "error suppresses debug", level: "error", logged: false},
	}

	for _, tc := range testCases {
		var buf bytes.Buffer
		log := New(&buf, Config{Level: tc.level})
		log.Debug().Msg("probe")
		assert.Equal(t, tc.logged, buf.Len() > 0, tc.name)
	}
}
