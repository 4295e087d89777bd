// Package file provides the TOML-backed configuration for the Blockdex
// CLI. Configuration lives in ~/.blockdex/config.toml unless a directory
// is given explicitly.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the CLI-level settings.
type Config struct {
	// DataDir is where the SQLite catalogue lives. Empty means the
	// store default (~/.blockdex/data).
	DataDir string `toml:"data_dir"`

	// IncludeAnonymous also imports anonymous ("*"-prefixed) blocks.
	IncludeAnonymous bool `toml:"include_anonymous"`

	// DepthBudget caps nested-instance recursion. Zero means the
	// engine default.
	DepthBudget int `toml:"depth_budget"`

	// Verbose enables debug logging without the --verbose flag.
	Verbose bool `toml:"verbose"`
}

// Load reads the config file from configDir, falling back to
// ~/.blockdex. A missing file yields the zero config, not an error.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".blockdex")
	}

	var cfg Config
	data, err := os.ReadFile(filepath.Join(configDir, "config.toml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config file to configDir, creating the directory as
// needed.
func Save(configDir string, cfg *Config) error {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".blockdex")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
