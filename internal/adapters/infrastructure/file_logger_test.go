package infrastructure

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	var entries []map[string]interface{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestFileLoggerAdapter_NewFileLoggerAdapter(t *testing.T) {
	t.Run("NestedPath", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "deep", "weather.log")

		logger, err := NewFileLoggerAdapter(path)
		require.NoError(t, err)
		defer func() { _ = logger.Close() }()

		_, err = os.Stat(filepath.Dir(path))
		assert.NoError(t, err)
	})

	t.Run("EmptyPath", func(t *testing.T) {
		logger, err := NewFileLoggerAdapter("")
		assert.Nil(t, logger)
		assert.True(t, errors.IsConfigurationError(err))
	})
}

func TestFileLoggerAdapter_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)
	logger.now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }

	logger.Info("Weather API request started", ports.F("operation", "forecast"))
	logger.Error("Weather API request failed", ports.F("code", "NOT_FOUND"))
	require.NoError(t, logger.Close())

	entries := readEntries(t, path)
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "2024-03-10T12:00:00Z", entries[0]["timestamp"])
	assert.Equal(t, "forecast", entries[0]["operation"])
	assert.Equal(t, "ERROR", entries[1]["level"])
	assert.Equal(t, "NOT_FOUND", entries[1]["code"])

	// writes after close are dropped
	logger.Warn("ignored")
	assert.Len(t, readEntries(t, path), 2)
}

func TestFileLoggerAdapter_ConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger.Debug("entry", ports.F("n", i))
		}(i)
	}
	wg.Wait()
	require.NoError(t, logger.Close())

	assert.Len(t, readEntries(t, path), 20)
}
