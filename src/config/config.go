package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/eriklarko/logic-evaluator/src/truthtable"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatDOT  Format = "dot"
	FormatYAML Format = "yaml"
)

type Config struct {
	// refuse expressions with more variables than this, the table has
	// 2^MaxVariables rows
	MaxVariables int `yaml:"max-variables"`
	// goroutines used to evaluate table rows
	Workers int `yaml:"workers"`
	// 0 means no timeout
	Timeout time.Duration `yaml:"timeout,omitempty"`

	Format   Format `yaml:"format"`
	CSVFile  string `yaml:"csv-file,omitempty"`
	LogFile  string `yaml:"log-file,omitempty"`
	LogLevel string `yaml:"log-level,omitempty"`

	// where the config was loaded from and is written to
	Path string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		MaxVariables: truthtable.DefaultMaxVariables,
		Workers:      1,
		Format:       FormatText,
		LogLevel:     "info",
	}
}

// LoadConfig reads the YAML file at path on top of the defaults. A missing file
// is reported with an error matching os.ErrNotExist so callers can fall back to
// Default().
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	config.Path = path

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.MaxVariables < 1 || c.MaxVariables > truthtable.MaxVariables {
		return fmt.Errorf("max-variables must be between 1 and %d, got %d", truthtable.MaxVariables, c.MaxVariables)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	switch c.Format {
	case FormatText, FormatCSV, FormatDOT, FormatYAML:
	default:
		return fmt.Errorf("unknown format '%s'", c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel, defaulting to info when unset.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log-level '%s': %w", c.LogLevel, err)
	}
	return level, nil
}

// Write stores the config as YAML at c.Path.
func (c *Config) Write() error {
	if c.Path == "" {
		return fmt.Errorf("config has no path to write to")
	}

	absPath, err := filepath.Abs(c.Path)
	if err != nil {
		// only used to make the error messages easier to follow. Best effort.
		absPath = c.Path
	}

	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(absPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", absPath, err)
	}
	return nil
}

// WriteTableCSV writes the truth table to CSVFile.
func (c *Config) WriteTableCSV(table *truthtable.Table) error {
	if c.CSVFile == "" {
		return fmt.Errorf("no csv-file configured")
	}

	absPath, err := filepath.Abs(c.CSVFile)
	if err != nil {
		absPath = c.CSVFile
	}

	file, err := os.Create(absPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", absPath, err)
	}
	defer file.Close()

	if err := table.WriteCSV(file); err != nil {
		return fmt.Errorf("failed to write truth table to %s: %w", absPath, err)
	}
	return nil
}
