package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents strarena CLI configuration
type Config struct {
	// Log level: debug, info, warn or error
	LogLevel string `yaml:"log_level"`

	// Arena sizing
	Arena ArenaConfig `yaml:"arena"`

	// Longest input line accepted by line-oriented commands, in bytes
	MaxLineBytes int `yaml:"max_line_bytes"`
}

// ArenaConfig holds the capacity hints every arena is created with
type ArenaConfig struct {
	// Expected total bytes
	Bytes int `yaml:"bytes"`

	// Expected number of strings
	Strings int `yaml:"strings"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Arena: ArenaConfig{
			Bytes:   64 * 1024,
			Strings: 1024,
		},
		MaxLineBytes: 1024 * 1024,
	}
}

// Load reads configuration from a YAML file on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for values the CLI cannot work with
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.Arena.Bytes < 0 {
		return fmt.Errorf("arena.bytes must not be negative, got %d", c.Arena.Bytes)
	}
	if c.Arena.Strings < 0 {
		return fmt.Errorf("arena.strings must not be negative, got %d", c.Arena.Strings)
	}
	if c.MaxLineBytes <= 0 {
		return fmt.Errorf("max_line_bytes must be positive, got %d", c.MaxLineBytes)
	}
	return nil
}
