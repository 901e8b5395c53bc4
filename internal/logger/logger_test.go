package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDisabledDiscards(t *testing.T) {
	l := New(Options{})
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
}

func TestDefaultDiscardsWarnings(t *testing.T) {
	t.Setenv(EnvAllocLog, "")
	assert.False(t, L.Enabled(t.Context(), slog.LevelWarn))
	assert.False(t, FromEnv().Enabled(t.Context(), slog.LevelError))
}

func TestNewJSON(t *testing.T) {
	var out bytes.Buffer
	l := New(Options{Enabled: true, Writer: &out, Level: slog.LevelDebug, JSON: true})
	l.Debug("alloc", "size", 24)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "alloc", rec["msg"])
	assert.EqualValues(t, 24, rec["size"])
}

func TestNewTintRespectsLevel(t *testing.T) {
	var out bytes.Buffer
	l := New(Options{Enabled: true, Writer: &out, Level: slog.LevelWarn, NoColor: true})
	l.Info("hidden")
	l.Warn("shown", "ptr", 16)

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
	assert.Contains(t, out.String(), "ptr=16")
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAllocLog, "")
	assert.Same(t, L, FromEnv())

	t.Setenv(EnvAllocLog, "1")
	assert.True(t, FromEnv().Enabled(t.Context(), slog.LevelDebug))
}

func TestInitSwapsGlobal(t *testing.T) {
	prev := L
	t.Cleanup(func() { L = prev })

	var out bytes.Buffer
	Init(Options{Enabled: true, Writer: &out, JSON: true})
	L.Info("hello")
	assert.Contains(t, out.String(), `"msg":"hello"`)
}
