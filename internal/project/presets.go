package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/RenoQuote/internal/model"
)

// DefaultPresetsPath returns the default file path for saved catalog presets.
func DefaultPresetsPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "presets.json"), nil
}

// SavePresets saves catalog presets to a JSON file.
func SavePresets(path string, presets []model.CatalogPreset) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPresets loads catalog presets from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadPresets(path string) ([]model.CatalogPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.CatalogPreset{}, nil
		}
		return nil, err
	}

	var presets []model.CatalogPreset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, err
	}

	// Presets written by hand may lack prices that pass validation;
	// drop the broken ones rather than fail the whole load.
	valid := presets[:0]
	for _, p := range presets {
		if p.Prices.Validate() == nil {
			valid = append(valid, p)
		}
	}
	return valid, nil
}

// ExportPreset exports a single preset to a JSON file (for sharing).
func ExportPreset(path string, preset model.CatalogPreset) error {
	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportPreset imports a single preset from a JSON file.
func ImportPreset(path string) (model.CatalogPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.CatalogPreset{}, err
	}

	var preset model.CatalogPreset
	if err := json.Unmarshal(data, &preset); err != nil {
		return model.CatalogPreset{}, err
	}

	if preset.Name == "" {
		return model.CatalogPreset{}, errors.New("imported preset has no name")
	}
	if err := preset.Prices.Validate(); err != nil {
		return model.CatalogPreset{}, err
	}
	return preset, nil
}
