package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// appName is the directory name used under the XDG config home
const appName = "shsenroll"

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig `yaml:"database"`
	Log         LogConfig      `yaml:"log"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// DatabaseConfig locates the SQLite file. An empty path uses the default
// data directory.
type DatabaseConfig struct {
	Path string `yaml:"path" env:"SHSENROLL_DB_PATH"`
}

// LogConfig controls the file logger
type LogConfig struct {
	Level string `yaml:"level" env:"SHSENROLL_LOG_LEVEL"`
	Dir   string `yaml:"dir" env:"SHSENROLL_LOG_DIR"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Log:         LogConfig{Level: "info"},
		ColorScheme: DefaultColorScheme(),
	}
}

// loadThemeFile loads and merges theme from SHSENROLL_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("SHSENROLL_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory.
// A missing file yields defaults; environment variables override the file.
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !os.IsNotExist(readErr):
			return nil, readErr
		}
	}

	// Load theme from SHSENROLL_THEME_FILE if set
	loadThemeFile(config)

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the location Load reads from
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.ColorScheme.ApplyDefaults()
}
