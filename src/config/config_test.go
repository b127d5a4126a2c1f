package config

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/eriklarko/logic-evaluator/src/boolexpr"
	helpers_test "github.com/eriklarko/logic-evaluator/src/helpers"
	"github.com/eriklarko/logic-evaluator/src/truthtable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {

	t.Run("valid, existing config", func(t *testing.T) {
		content := `max-variables: 12
workers: 4
timeout: 5s
format: csv
csv-file: "table.csv"`
		configFile := helpers_test.CreateTempFileWithContents(t, content)

		config, err := LoadConfig(configFile)
		require.NoError(t, err)

		assert.Equal(t, 12, config.MaxVariables)
		assert.Equal(t, 4, config.Workers)
		assert.Equal(t, 5*time.Second, config.Timeout)
		assert.Equal(t, FormatCSV, config.Format)
		assert.Equal(t, "table.csv", config.CSVFile)
		assert.Equal(t, configFile, config.Path)
	})

	t.Run("missing keys keep their defaults", func(t *testing.T) {
		configFile := helpers_test.CreateTempFileWithContents(t, `workers: 2`)

		config, err := LoadConfig(configFile)
		require.NoError(t, err)

		assert.Equal(t, truthtable.DefaultMaxVariables, config.MaxVariables)
		assert.Equal(t, 2, config.Workers)
		assert.Equal(t, FormatText, config.Format)
	})

	t.Run("invalid, existing config", func(t *testing.T) {
		content := `foo` // no keys
		configFile := helpers_test.CreateTempFileWithContents(t, content)

		_, err := LoadConfig(configFile)
		assert.Error(t, err)
		assert.False(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("values out of range", func(t *testing.T) {
		configFile := helpers_test.CreateTempFileWithContents(t, `max-variables: 40`)

		_, err := LoadConfig(configFile)
		assert.ErrorContains(t, err, "max-variables")
	})

	t.Run("non-existing config", func(t *testing.T) {
		_, err := LoadConfig("non-existing.yaml")
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestValidate(t *testing.T) {
	tests := map[string]func(c *Config){
		"zero max variables": func(c *Config) { c.MaxVariables = 0 },
		"zero workers":       func(c *Config) { c.Workers = 0 },
		"negative timeout":   func(c *Config) { c.Timeout = -time.Second },
		"unknown format":     func(c *Config) { c.Format = "png" },
		"unknown log level":  func(c *Config) { c.LogLevel = "chatty" },
	}

	assert.NoError(t, Default().Validate())

	for name, breakConfig := range tests {
		t.Run(name, func(t *testing.T) {
			config := Default()
			breakConfig(config)
			assert.Error(t, config.Validate())
		})
	}
}

func TestLevel(t *testing.T) {
	config := Default()
	config.LogLevel = "debug"

	level, err := config.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	config.LogLevel = ""
	level, err = config.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestWriteConfig(t *testing.T) {
	configFile := helpers_test.TempPath(t, "test_config.yaml")

	config := Default()
	config.Workers = 8
	config.Timeout = 2 * time.Second
	config.Path = configFile

	err := config.Write()
	require.NoError(t, err)

	// Verify file content
	content := helpers_test.ReadFile(t, configFile)
	assert.Contains(t, content, "max-variables: 20\n")
	assert.Contains(t, content, "workers: 8\n")
	assert.Contains(t, content, "timeout: 2s\n")
	assert.NotContains(t, content, "csv-file")

	// and that it can be read back
	loaded, err := LoadConfig(configFile)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestWriteConfigWithoutPath(t *testing.T) {
	assert.Error(t, Default().Write())
}

func TestWriteTableCSV(t *testing.T) {
	node, err := boolexpr.New("A or B")
	require.NoError(t, err)
	table, err := truthtable.Build(node, node.Variables())
	require.NoError(t, err)

	config := Default()
	config.CSVFile = helpers_test.TempPath(t, "table.csv")

	err = config.WriteTableCSV(table)
	require.NoError(t, err)

	content := helpers_test.ReadFile(t, config.CSVFile)
	assert.Equal(t, "A,B,(A or B)\n0,0,0\n0,1,1\n1,0,1\n1,1,1\n", content)
}
