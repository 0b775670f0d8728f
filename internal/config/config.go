// Package config loads settings for the blaze command from TOML or YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Output formats for the parser command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the host settings for a blaze session.
type Config struct {
	Source     string `toml:"source" yaml:"source"`           // label used in diagnostic positions
	Color      bool   `toml:"color" yaml:"color"`             // style severity labels
	Format     string `toml:"format" yaml:"format"`           // parser output: text, json or yaml
	SinkBuffer int    `toml:"sink_buffer" yaml:"sink_buffer"` // diagnostic channel capacity
	LogLevel   string `toml:"log_level" yaml:"log_level"`     // debug, info, warn or error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source:     "Shell",
		Color:      true,
		Format:     FormatText,
		SinkBuffer: 16,
		LogLevel:   "warn",
	}
}

// Load reads configuration from a .toml, .yaml or .yml file. Keys absent
// from the file keep their default values. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	// Expand environment variables in path
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	cfg.applyDefaults()
	cfg.Source = os.ExpandEnv(cfg.Source)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from the BLAZE_CONFIG environment
// variable, falling back to the default locations and then to the
// built-in defaults.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("BLAZE_CONFIG")
	if path == "" {
		home, _ := os.UserHomeDir()
		for _, p := range []string{
			"./blaze.toml",
			"./blaze.yaml",
			filepath.Join(home, ".config", "blaze", "config.toml"),
		} {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	return Load(path)
}

// applyDefaults fills zero values left by a sparse file.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Source == "" {
		c.Source = d.Source
	}
	if c.Format == "" {
		c.Format = d.Format
	}
	if c.SinkBuffer == 0 {
		c.SinkBuffer = d.SinkBuffer
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid format %q: want text, json or yaml", c.Format)
	}
	if c.SinkBuffer < 1 {
		return fmt.Errorf("invalid sink_buffer %d: must be at least 1", c.SinkBuffer)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel. Unknown names map to
// slog.LevelWarn.
func (c *Config) Level() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return l
}

func parseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", name, err)
	}
	return l, nil
}
