package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GetConfigPath returns the configuration file path
// Priority: 1. Specified config file, 2. $HOME/.csdview/config.yaml
func GetConfigPath(configFile string) string {
	if configFile != "" {
		return configFile
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(homeDir, ".csdview", "config.yaml")
}

// LoadConfig loads configuration from file. A missing file yields the
// defaults; keys absent from the file keep their default value.
func LoadConfig(configFile string) (*Config, error) {
	configPath := GetConfigPath(configFile)
	if configPath == "" {
		return DefaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves configuration to file
func SaveConfig(config *Config, configFile string) error {
	configPath := GetConfigPath(configFile)
	if configPath == "" {
		return fmt.Errorf("unable to determine config path")
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile writes the default configuration unless the
// file already exists.
func CreateDefaultConfigFile(configFile string) error {
	configPath := GetConfigPath(configFile)
	if configPath == "" {
		return fmt.Errorf("unable to determine config path")
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	return SaveConfig(DefaultConfig(), configFile)
}
