package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var terminal bytes.Buffer
	logger, closeFn, err := New(Options{
		Writer: &terminal,
		Level:  slog.LevelInfo,
	})
	require.NoError(t, err)
	defer closeFn()

	logger.Debug("hidden")
	logger.Info("evaluated expression", "variables", 3)

	assert.NotContains(t, terminal.String(), "hidden")
	assert.Contains(t, terminal.String(), "msg=\"evaluated expression\"")
	assert.Contains(t, terminal.String(), "variables=3")
}

func TestNewWithFile(t *testing.T) {
	var terminal bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "evaluator.log")

	logger, closeFn, err := New(Options{
		Writer: &terminal,
		Level:  slog.LevelDebug,
		File:   logFile,
	})
	require.NoError(t, err)

	logger.Debug("building truth table", "rows", 8)
	require.NoError(t, closeFn())

	assert.Contains(t, terminal.String(), "rows=8")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "building truth table", record["msg"])
	assert.Equal(t, float64(8), record["rows"])
}

func TestNewWithUnwritableFile(t *testing.T) {
	_, _, err := New(Options{File: filepath.Join(t.TempDir(), "missing", "dir", "log")})
	assert.Error(t, err)
}
