package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staff-briefing/internal/config"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/briefings/:date", "GET", 200, time.Millisecond)
	m.RecordRequest("/briefings/:date", "GET", 200, time.Millisecond)
	m.RecordError("/roster/import", "POST", "VALIDATION_FAILED")
	m.RecordBriefing("text", 2)
	m.RecordBriefing("json", 0)
	m.RecordFetch(1500 * time.Millisecond)

	snap := m.Snapshot()
	require.Equal(t, int64(2), snap.Requests["/briefings/:date|GET|200"])
	require.Equal(t, int64(1), snap.Errors["/roster/import|POST|VALIDATION_FAILED"])
	require.Equal(t, int64(1), snap.Briefings["text"])
	require.Equal(t, int64(2), snap.FlaggedRecord)
	require.Equal(t, int64(1500), snap.LastFetchMS)

	snap.Requests["x"] = 1
	require.NotContains(t, m.Snapshot().Requests, "x")
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, 0)
	m.RecordError("/", "GET", "X")
	m.RecordBriefing("text", 1)
	m.RecordFetch(time.Second)
	require.Equal(t, Snapshot{}, m.Snapshot())
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "debug"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger, err = NewLogger(config.LoggerConfig{Level: "nonsense"})
	require.NoError(t, err)
	require.NotNil(t, logger)
}
