package wsp

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WalkAtDebug(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = NewJSONLogger(&buf, slog.LevelDebug)
	ps, err := NewPointSet(fourPoints(), cfg)
	require.NoError(t, err)
	require.NoError(t, ps.Walk(1.0, 1))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "walk completed", entry["msg"])
	assert.Equal(t, float64(1), entry["origin"])
	assert.Equal(t, float64(3), entry["active"])
	assert.Equal(t, float64(4), entry["points"])
	assert.Equal(t, float64(2), entry["dimension"])
}

func TestLogger_AdaptiveResult(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf, slog.LevelInfo)

	l.LogAdaptiveResult(true, AdaptiveResult{Distance: 0.5, Active: 9, Target: 10})
	assert.Contains(t, buf.String(), "best approximation")

	buf.Reset()
	l.LogAdaptiveResult(true, AdaptiveResult{Distance: 0.5, Active: 10, Target: 10, Exact: true})
	assert.Contains(t, buf.String(), "reached target")

	buf.Reset()
	l.LogAdaptiveResult(false, AdaptiveResult{Active: 10, Target: 10, Exact: true})
	assert.Empty(t, buf.String())
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	l.LogIteration(true, 1, 0.5, 3, 3)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
