package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/boxoffice-go/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), "level %q", tt.input)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LoggingConfig{Level: "info", Format: "json"}, &buf)

	logger.Debug("hidden")
	logger.Info("Section located", slog.String("section", "notes"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Section located", entry["msg"])
	assert.Equal(t, "notes", entry["section"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LoggingConfig{Level: "warn", Format: "text"}, &buf)

	logger.Info("hidden")
	logger.Warn("converting", slog.String("path", "report.xlsx"))

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "path=report.xlsx")
	assert.NotContains(t, buf.String(), "hidden")
}
