// Package config provides configuration loading and management for ttl2port.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/c360studio/ttl2port/graph"
	"gopkg.in/yaml.v3"
)

// Config represents the complete ttl2port configuration
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Input     InputConfig     `yaml:"input"`
	Log       LogConfig       `yaml:"log"`
}

// GeneratorConfig configures header generation
type GeneratorConfig struct {
	// Strict turns duplicate port indices into an error instead of a warning.
	// Nil leaves the setting to a lower-precedence layer.
	Strict *bool `yaml:"strict,omitempty"`
	// EnumPrefix is prepended to every generated constant (default: PORT_)
	EnumPrefix string `yaml:"enum_prefix"`
}

// InputConfig configures how plugin descriptions are read
type InputConfig struct {
	// Format is the RDF serialization (empty = detect from file extension)
	Format string `yaml:"format"`
}

// LogConfig configures diagnostic output
type LogConfig struct {
	// Level is one of debug, info, warn, error (default: warn)
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Strict:     Bool(false),
			EnumPrefix: "PORT_",
		},
		Input: InputConfig{
			Format: "", // Detect
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// IsStrict reports whether duplicate port indices fail the run
func (g GeneratorConfig) IsStrict() bool {
	return g.Strict != nil && *g.Strict
}

// Bool returns a pointer to v, for optional settings
func Bool(v bool) *bool {
	return &v
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Generator.EnumPrefix == "" {
		return fmt.Errorf("generator.enum_prefix is required")
	}
	if c.Input.Format != "" {
		if _, err := graph.ParseFormat(c.Input.Format); err != nil {
			return fmt.Errorf("input.format: %w", err)
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
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

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Generator
	if other.Generator.Strict != nil {
		c.Generator.Strict = Bool(*other.Generator.Strict)
	}
	if other.Generator.EnumPrefix != "" {
		c.Generator.EnumPrefix = other.Generator.EnumPrefix
	}

	// Input
	if other.Input.Format != "" {
		c.Input.Format = other.Input.Format
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
