// Package config loads tourdeck settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// StateDirName is the per-project directory holding config and logs.
const StateDirName = ".tourdeck"

// Config holds all tourdeck configuration.
type Config struct {
	// DataPath points at a catalog YAML file; empty means the built-in catalog.
	DataPath string `yaml:"data_path"`

	// Watch reloads the catalog when DataPath changes on disk.
	Watch bool `yaml:"watch"`

	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI:      *DefaultUIConfig(),
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

// DefaultPath returns .tourdeck/config.yaml under the working directory.
func DefaultPath() string {
	return filepath.Join(StateDir(), "config.yaml")
}

// StateDir returns the project-local state directory.
func StateDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return StateDirName
	}
	return filepath.Join(cwd, StateDirName)
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults with env overrides applied.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("TOURDECK_DATA"); path != "" {
		c.DataPath = path
	}
	if theme := os.Getenv("TOURDECK_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if v := os.Getenv("TOURDECK_DEBUG"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			c.Logging.DebugMode = on
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case "", "auto", "light", "dark":
	default:
		return fmt.Errorf("invalid ui.theme: %q (valid: auto, light, dark)", c.UI.Theme)
	}
	switch c.UI.StartPage {
	case "", PageTours, PageReviews:
	default:
		return fmt.Errorf("invalid ui.start_page: %q (valid: %s, %s)", c.UI.StartPage, PageTours, PageReviews)
	}
	if c.UI.TruncateAt < 0 {
		return fmt.Errorf("invalid ui.truncate_at: %d (must be >= 0)", c.UI.TruncateAt)
	}
	if c.Watch && c.DataPath == "" {
		return fmt.Errorf("watch requires data_path")
	}
	return nil
}
