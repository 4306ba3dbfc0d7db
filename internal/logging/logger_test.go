package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"chatty", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestValidLevel(t *testing.T) {
	assert.True(t, ValidLevel("Info"))
	assert.False(t, ValidLevel("trace"))
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("warn", &buf)
	l.Info("hidden")
	l.Warn("shown", "item", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "item=3")
}

func TestOpen_EmptyPathDiscards(t *testing.T) {
	l, closeFn, err := Open("", "debug")
	require.NoError(t, err)
	require.NotNil(t, l)
	l.Info("nowhere")
	assert.NoError(t, closeFn())
}

func TestOpen_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gctb.log")
	l, closeFn, err := Open(path, "info")
	require.NoError(t, err)
	l.Info("session started", "test", "arith")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")
	assert.Contains(t, string(data), "test=arith")
}
