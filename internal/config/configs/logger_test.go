package configs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"err", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, Logger{Level: tt.level}.SlogLevel())
		})
	}
}

func TestLogger_SlogFormat(t *testing.T) {
	assert.Equal(t, "json", Logger{Format: "JSON"}.SlogFormat())
	assert.Equal(t, "text", Logger{Format: "logfmt"}.SlogFormat())
}

func TestLogger_NewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Logger{Level: "warn", Format: "json"}.New(&buf)

	log.Info("dropped")
	log.Warn("kept", slog.Int("port", 8080))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.EqualValues(t, 8080, entry["port"])
}

func TestEntryPoint_Argv(t *testing.T) {
	e := EntryPoint{Runner: "  streamlit   run app.py "}
	assert.Equal(t, []string{"streamlit", "run", "app.py"}, e.Argv())
	assert.True(t, e.External())
	assert.False(t, EntryPoint{}.External())
}
