// Package config loads the optional unitconv configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ja7ad/unitconv/pkg/format"
)

// Config is the application configuration.
type Config struct {
	// Precision is the default decimal-place count for non-integer
	// results.
	Precision int `json:"precision"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `json:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Precision: format.DefaultPrecision,
		LogLevel:  "warn",
	}
}

// Path returns the default config file location.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".unitconv.json"
	}
	return filepath.Join(home, ".unitconv.json")
}

// Load reads a JSON config file, merging it over the defaults. Fields
// absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Precision < 0 || cfg.Precision > format.MaxPrecision {
		return nil, fmt.Errorf("config: precision must be in [0,%d], got %d", format.MaxPrecision, cfg.Precision)
	}
	return cfg, nil
}
