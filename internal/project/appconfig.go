// Package project persists application preferences and catalog presets as
// JSON under the user config directory. Estimates themselves are never
// stored; every calculation starts from fresh inputs.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/RenoQuote/internal/model"
)

// DefaultConfigDir returns the default directory for application
// configuration, under the platform user config dir.
func DefaultConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "renoquote"), nil
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	// Ensure RecentPriceBooks is never nil
	if config.RecentPriceBooks == nil {
		config.RecentPriceBooks = []string{}
	}
	return config, nil
}
