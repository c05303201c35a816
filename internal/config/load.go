package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the viewer cannot start with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.MaxPixelRatio <= 0 {
		return fmt.Errorf("max_pixel_ratio must be positive, got %g", c.Window.MaxPixelRatio)
	}
	if c.Scene.CameraFOV <= 0 || c.Scene.CameraFOV >= 180 {
		return fmt.Errorf("camera_fov out of range: %g", c.Scene.CameraFOV)
	}
	if c.Scene.DampingFactor < 0 || c.Scene.DampingFactor > 1 {
		return fmt.Errorf("damping_factor out of range: %g", c.Scene.DampingFactor)
	}
	if c.Capture.Width < 0 || c.Capture.Height < 0 {
		return fmt.Errorf("invalid capture size %dx%d", c.Capture.Width, c.Capture.Height)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "matview")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "matview")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "matview")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "matview")
	}
}

// loadFromFile merges a YAML file into cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
