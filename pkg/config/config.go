package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the tool configuration, stored as YAML.
type Config struct {
	// TemplatePath overrides the default template image location.
	TemplatePath string `yaml:"template_path"`

	// DefaultRoot is used by seed/verify/watch when no root argument is given.
	DefaultRoot string `yaml:"default_root"`

	// MaxWorkers bounds verification concurrency.
	MaxWorkers int `yaml:"max_workers"`

	// WatchDebounceMS coalesces config-file change events in watch mode.
	WatchDebounceMS int `yaml:"watch_debounce_ms"`

	// SkipExisting makes seed leave existing destinations untouched.
	SkipExisting bool `yaml:"skip_existing"`

	// ColorTheme selects terminal colors ("auto", "dark", "light").
	ColorTheme string `yaml:"color_theme"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		TemplatePath:    "",
		DefaultRoot:     "",
		MaxWorkers:      4,
		WatchDebounceMS: 500,
		SkipExisting:    false,
		ColorTheme:      "auto",
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// A missing config file is not an error; defaults apply.
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Backfill essential values if zeroed out in the file
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 4
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 500
	}
	if cfg.ColorTheme == "" {
		cfg.ColorTheme = "auto"
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
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
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
