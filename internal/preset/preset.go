// Package preset stores material panel settings as YAML files and watches
// them for edits.
package preset

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/matview/internal/material"
)

// Extension is the file extension used by the save dialog.
const Extension = "yaml"

// Load reads a preset. Fields missing from the file keep their
// material.DefaultParams values, and out-of-range values are clamped.
func Load(path string) (material.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return material.Params{}, fmt.Errorf("reading preset: %w", err)
	}
	return Parse(data)
}

// Parse decodes preset YAML.
func Parse(data []byte) (material.Params, error) {
	p := material.DefaultParams()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return material.Params{}, fmt.Errorf("parsing preset: %w", err)
	}
	p.Clamp()
	return p, nil
}

// Save writes p to path, creating parent directories as needed.
func Save(path string, p material.Params) error {
	data, err := yaml.Marshal(&p)
	if err != nil {
		return fmt.Errorf("encoding preset: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating preset directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing preset: %w", err)
	}
	return nil
}
