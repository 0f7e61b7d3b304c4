package config

import (
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/vergashev/hafta/internal/config/colors"
)

// Config represents the application configuration
type Config struct {
	Storage     Storage            `yaml:"storage"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// Storage configures where the tracker file lives. An empty path means
// the default location under the home directory.
type Storage struct {
	Path string `yaml:"path"`
}

// Validate checks the storage section
func (s Storage) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Path, validation.Length(0, 4096)),
	)
}

// loadThemeFile loads and merges theme from HAFTA_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("HAFTA_THEME_FILE")
	if themeFile == "" {
		return
	}

	if _, err := os.Stat(themeFile); err != nil {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// DefaultConfig returns a config with every value set to its default
func DefaultConfig() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := DefaultConfig()
		loadThemeFile(config)
		return config, nil
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		config := DefaultConfig()
		loadThemeFile(config)
		return config, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Expand environment references such as $HOME in the raw file
	data = []byte(os.ExpandEnv(string(data)))

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Load theme from HAFTA_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
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

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(configPath, data, 0o644)
}

// Validate checks the parsed configuration
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Storage),
	); err != nil {
		return err
	}
	return c.ColorScheme.Validate()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "hafta", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "hafta", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
