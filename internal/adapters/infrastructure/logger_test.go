package infrastructure

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/internal/ports"
)

func TestSlogLoggerAdapter_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogLoggerAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	adapter.Warn("Forecast fetch failed", ports.F("cycle_id", "abc"), ports.F("days", 5))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "Forecast fetch failed", entry["msg"])
	assert.Equal(t, "abc", entry["cycle_id"])
	assert.Equal(t, float64(5), entry["days"])
}

func TestSlogLoggerAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogLoggerAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	adapter.Debug("hidden")
	assert.Zero(t, buf.Len())

	adapter.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestMultiLogger(t *testing.T) {
	var a, b bytes.Buffer
	multi := NewMultiLogger(
		NewSlogLoggerAdapter(slog.New(slog.NewJSONHandler(&a, nil))),
		NewSlogLoggerAdapter(slog.New(slog.NewJSONHandler(&b, nil))),
	)

	multi.Info("Theme saved", ports.F("theme", "night"))

	assert.Contains(t, a.String(), `"theme":"night"`)
	assert.Contains(t, b.String(), `"theme":"night"`)
}
