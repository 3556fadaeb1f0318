package configs

import (
	"fmt"
	"os"

	kerrors "github.com/deploykit/kitlog/internal/errors"
	logger "github.com/deploykit/kitlog/internal/logging"
)

type Config struct {
	Logger LoggerConfig `toml:"logger" json:"logger"`
	Assert AssertConfig `toml:"assert" json:"assert"`
	Audit  AuditConfig  `toml:"audit" json:"audit"`
}

type LoggerConfig struct {
	Verbose bool   `toml:"verbose" json:"verbose"`
	Prefix  string `toml:"prefix" json:"prefix"`
	Color   string `toml:"color" json:"color"`
}

type AssertConfig struct {
	ExitCode int `toml:"exit_code" json:"exit_code"`
}

type AuditConfig struct {
	Enabled bool   `toml:"enabled" json:"enabled"`
	Path    string `toml:"path,omitempty" json:"path,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Logger: LoggerConfig{
			Verbose: true,
			Prefix:  logger.DefaultPrefix,
			Color:   "auto",
		},
		Assert: AssertConfig{
			ExitCode: 1,
		},
	}
}

// LoadConfig loads the configuration at configPath on top of the defaults.
// A missing file yields the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w: %v", configPath, kerrors.ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves the configuration to configPath.
func SaveConfig(configPath string, config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// Validate checks the values a config file can get wrong.
func (c *Config) Validate() error {
	switch c.Logger.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("logger.color %q: %w", c.Logger.Color, kerrors.ErrInvalidConfig)
	}

	if c.Assert.ExitCode < 1 || c.Assert.ExitCode > 125 {
		return fmt.Errorf("assert.exit_code %d must be between 1 and 125: %w", c.Assert.ExitCode, kerrors.ErrInvalidConfig)
	}

	return nil
}

// AuditPath returns the audit journal path, falling back to the data
// directory from settings.
func (c *Config) AuditPath() string {
	if c.Audit.Path != "" {
		return c.Audit.Path
	}
	if KitlogSettings == nil {
		return ""
	}
	return KitlogSettings.AuditPath
}
