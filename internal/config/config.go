package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Allocation struct {
		PanelSize        int `yaml:"panel_size" env:"ALLOC_PANEL_SIZE"`
		Buffer           int `yaml:"buffer" env:"ALLOC_BUFFER"`
		MaxTeamsPerPanel int `yaml:"max_teams_per_panel" env:"ALLOC_MAX_TEAMS_PER_PANEL"`
	} `yaml:"allocation"`

	Inputs struct {
		Roster  string `yaml:"roster" env:"INPUT_ROSTER"`
		Teams   string `yaml:"teams" env:"INPUT_TEAMS"`
		Schemas string `yaml:"schemas" env:"INPUT_SCHEMAS"`
	} `yaml:"inputs"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults plus environment apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			file, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Allocation.PanelSize = 3
	config.Allocation.Buffer = 0
	config.Allocation.MaxTeamsPerPanel = 0 // 0 disables the capacity check

	config.Logging.Level = "info"
	config.Logging.Format = "console"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Allocation.PanelSize < 2 {
		return fmt.Errorf("allocation panel_size must be at least 2, got %d", config.Allocation.PanelSize)
	}
	if config.Allocation.Buffer < 0 {
		return fmt.Errorf("allocation buffer cannot be negative, got %d", config.Allocation.Buffer)
	}
	if config.Allocation.MaxTeamsPerPanel < 0 {
		return fmt.Errorf("allocation max_teams_per_panel cannot be negative, got %d", config.Allocation.MaxTeamsPerPanel)
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging format must be console or json, got %q", config.Logging.Format)
	}
	return nil
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
