// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"bundle-cost/core/types"
	"bundle-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Catalog contains catalog loading configuration
	Catalog CatalogConfig `json:"catalog"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CatalogConfig contains catalog-related settings
type CatalogConfig struct {
	// Path is the default catalog document path (.json or .hcl)
	Path string `json:"path"`

	// DefaultCurrency is used when the catalog omits a currency
	DefaultCurrency types.Currency `json:"default_currency"`

	// ValidateOnLoad runs eager shape validation when loading
	ValidateOnLoad bool `json:"validate_on_load"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowLines shows the per-item breakdown
	ShowLines bool `json:"show_lines"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	catalogPath := filepath.Join(homeDir, ".bundle-cost", "catalog.json")

	return &Config{
		Version: "1.0",
		Catalog: CatalogConfig{
			Path:            catalogPath,
			DefaultCurrency: types.CurrencyEUR,
			ValidateOnLoad:  true,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowLines:     true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
