// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for fabula configuration.
	DefaultConfigDir = ".fabula"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultLibraryFile is the default library (session) file name.
	DefaultLibraryFile = "library.json"
)

// Config holds static configuration (read-only after init).
type Config struct {
	Library LibraryConfig `yaml:"library,omitempty"`
	History HistoryConfig `yaml:"history,omitempty"`
}

// LibraryConfig locates the library file the session loads from and saves to.
type LibraryConfig struct {
	Path string `yaml:"path,omitempty"`
}

// HistoryConfig bounds the navigation history stack.
type HistoryConfig struct {
	Capacity int `yaml:"capacity,omitempty"`
}

// Default returns a Config with default values rooted at basePath.
func Default(basePath string) *Config {
	return &Config{
		Library: LibraryConfig{
			Path: LibraryFilePath(basePath),
		},
		History: HistoryConfig{
			Capacity: 20,
		},
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Library,
		validation.Field(&c.Library.Path, validation.Required),
	); err != nil {
		return fmt.Errorf("library: %w", err)
	}
	if err := validation.ValidateStruct(&c.History,
		validation.Field(&c.History.Capacity, validation.Min(1)),
	); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	return nil
}

// Load loads configuration from the .fabula directory in the given path.
// A missing config file is not an error: defaults apply, so every command
// works in a directory that was never initialized.
func Load(basePath string) (*Config, error) {
	cfg := Default(basePath)

	data, err := os.ReadFile(ConfigFilePath(basePath))
	if os.IsNotExist(err) {
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("FABULA_LIBRARY"); path != "" {
		c.Library.Path = path
	}
}

// ConfigDir returns the path to the .fabula config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// LibraryFilePath returns the default path to the library file.
func LibraryFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultLibraryFile)
}

// Exists checks if a fabula config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
