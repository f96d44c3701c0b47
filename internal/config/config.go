package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/suker799/ReDet-v1/internal/utils"
)

// Config holds the application configuration
type Config struct {
	Converter ConverterConfig `json:"converter"`
	Assembler AssemblerConfig `json:"assembler"`
}

// ConverterConfig holds configuration for the HRSC to DOTA batch converter
type ConverterConfig struct {
	OutPrefix  string `json:"out_prefix"`
	StrictL2   bool   `json:"strict_l2"`
	SanitizeL3 bool   `json:"sanitize_l3"`
}

// AssemblerConfig holds configuration for the DOTA to COCO assembler
type AssemblerConfig struct {
	Strict          bool     `json:"strict"`
	ImageExtensions []string `json:"image_extensions"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Converter: ConverterConfig{
			OutPrefix:  "labelTxt",
			StrictL2:   false,
			SanitizeL3: false,
		},
		Assembler: AssemblerConfig{
			Strict:          false,
			ImageExtensions: utils.ImageExtensions,
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Converter.OutPrefix == "" {
		return fmt.Errorf("converter.out_prefix cannot be empty")
	}

	if len(c.Assembler.ImageExtensions) == 0 {
		return fmt.Errorf("assembler.image_extensions cannot be empty")
	}

	for _, ext := range c.Assembler.ImageExtensions {
		if len(ext) < 2 || ext[0] != '.' {
			return fmt.Errorf("assembler.image_extensions entry %q must start with a dot", ext)
		}
	}

	return nil
}
