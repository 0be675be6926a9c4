// Package config provides configuration management for gobasics.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sivchari/gobasics/internal/compare"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatHTML = "html"
)

// DefaultFile is written by `config init` and searched first by Load.
const DefaultFile = ".gobasics.yaml"

var (
	// ErrInvalidFormat is returned for an unknown output format.
	ErrInvalidFormat = errors.New("invalid output format")
	// ErrNegativeCount is returned when compare.count is below zero.
	ErrNegativeCount = errors.New("compare count must not be negative")
)

// Config represents the configuration for gobasics.
type Config struct {
	Verbose bool `yaml:"verbose,omitempty" json:"verbose,omitempty"`

	Record    RecordConfig    `yaml:"record" json:"record"`
	Calculate CalculateConfig `yaml:"calculate" json:"calculate"`
	Compare   CompareConfig   `yaml:"compare" json:"compare"`
	Data      []int           `yaml:"data" json:"data"`

	Output OutputConfig `yaml:"output,omitempty" json:"output,omitempty"`
}

// RecordConfig holds the constructor arguments of the record.
type RecordConfig struct {
	X    int    `yaml:"x" json:"x"`
	Name string `yaml:"name" json:"name"`
}

// CalculateConfig holds the operands of a + b*c.
type CalculateConfig struct {
	A int `yaml:"a" json:"a"`
	B int `yaml:"b" json:"b"`
	C int `yaml:"c" json:"c"`
}

// CompareConfig holds the comparison inputs.
type CompareConfig struct {
	X     int    `yaml:"x" json:"x"`
	Y     int    `yaml:"y" json:"y"`
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
	Count *int   `yaml:"count,omitempty" json:"count,omitempty"`
}

// OutputConfig contains output-related configuration.
type OutputConfig struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// Default returns a config that reproduces the built-in program.
func Default() *Config {
	count := compare.DefaultCount

	return &Config{
		Record: RecordConfig{
			X:    42,
			Name: "test",
		},
		Calculate: CalculateConfig{A: 1, B: 2, C: 3},
		Compare: CompareConfig{
			X:     5,
			Y:     10,
			Label: compare.DefaultLabel,
			Count: &count,
		},
		Data: []int{1, 2, 3, 4, 5},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// CompareCount returns the configured count, or the default when unset.
func (c *Config) CompareCount() int {
	if c.Compare.Count == nil {
		return compare.DefaultCount
	}

	return *c.Compare.Count
}

// Load loads configuration from file, falling back to defaults.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	// If no config file specified, try default locations
	if configFile == "" {
		candidates := []string{DefaultFile, ".gobasics.yml"}
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				configFile = candidate

				break
			}
		}
	}

	if configFile != "" {
		if err := cfg.loadFromFile(configFile); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse YAML config file: %w", err)
	}

	return nil
}

// Validate fills unset values with defaults and rejects invalid ones.
func (c *Config) Validate() error {
	if c.Compare.Label == "" {
		c.Compare.Label = compare.DefaultLabel
	}

	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}

	switch c.Output.Format {
	case FormatText, FormatJSON, FormatHTML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.Format)
	}

	if c.CompareCount() < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, c.CompareCount())
	}

	return nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write YAML config file: %w", err)
	}

	return nil
}
