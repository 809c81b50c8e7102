package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, err := New("info", "")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestNew_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "journeymap.log")

	logger, err := New("info", path)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("journey selected", zap.Int64("journey_id", 2))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "journey selected", entry["msg"])
	assert.Equal(t, float64(2), entry["journey_id"])
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journeymap.log")
	logger, err := New("loud", path)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNew_DebugUsesConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journeymap.log")
	logger, err := New("debug", path)
	require.NoError(t, err)
	logger.Debug("camera drained")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "camera drained")
	assert.False(t, strings.HasPrefix(string(data), "{"))
}
