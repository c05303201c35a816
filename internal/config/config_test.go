package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.MaxPixelRatio != 2 {
		t.Errorf("expected max pixel ratio 2, got %f", cfg.Window.MaxPixelRatio)
	}
	if cfg.Assets.Root != "static" {
		t.Errorf("expected asset root 'static', got %s", cfg.Assets.Root)
	}
	if cfg.Scene.RotationSpeedX != 0.15 || cfg.Scene.RotationSpeedY != 0.1 {
		t.Errorf("unexpected rotation speeds %f/%f", cfg.Scene.RotationSpeedX, cfg.Scene.RotationSpeedY)
	}
	if cfg.Scene.CameraFOV != 75 {
		t.Errorf("expected fov 75, got %f", cfg.Scene.CameraFOV)
	}
	if cfg.Scene.CameraPosition != [3]float32{1, 1, 2} {
		t.Errorf("expected camera at (1,1,2), got %v", cfg.Scene.CameraPosition)
	}
	if !cfg.Scene.Damping || cfg.Scene.DampingFactor != 0.05 {
		t.Errorf("expected damping 0.05, got %v/%f", cfg.Scene.Damping, cfg.Scene.DampingFactor)
	}
	if cfg.Material.Kind != "" {
		t.Errorf("expected empty material kind, got %s", cfg.Material.Kind)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  max_pixel_ratio: 1.5

assets:
  root: "/srv/matview/static"

scene:
  rotation_speed_y: 0.5
  background: [0.1, 0.1, 0.2]

material:
  kind: toon
  preset: "presets/gold.yaml"

logging:
  level: "debug"
  log_file: "matview.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.MaxPixelRatio != 1.5 {
		t.Errorf("expected max pixel ratio 1.5, got %f", cfg.Window.MaxPixelRatio)
	}
	if cfg.Assets.Root != "/srv/matview/static" {
		t.Errorf("unexpected asset root %s", cfg.Assets.Root)
	}
	if cfg.Scene.RotationSpeedY != 0.5 {
		t.Errorf("expected rotation speed y 0.5, got %f", cfg.Scene.RotationSpeedY)
	}
	// Untouched keys keep their defaults.
	if cfg.Scene.RotationSpeedX != 0.15 {
		t.Errorf("expected default rotation speed x, got %f", cfg.Scene.RotationSpeedX)
	}
	if cfg.Scene.Background != [3]float32{0.1, 0.1, 0.2} {
		t.Errorf("unexpected background %v", cfg.Scene.Background)
	}
	if cfg.Material.Kind != "toon" || cfg.Material.Preset != "presets/gold.yaml" {
		t.Errorf("unexpected material config %+v", cfg.Material)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "matview.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative pixel ratio", func(c *Config) { c.Window.MaxPixelRatio = -1 }},
		{"fov too wide", func(c *Config) { c.Scene.CameraFOV = 180 }},
		{"damping above one", func(c *Config) { c.Scene.DampingFactor = 1.5 }},
		{"negative capture", func(c *Config) { c.Capture.Width = -10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Window.ShowStats {
					t.Error("expected stats overlay with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "asset, preset and material flags",
			setup: func() {
				*flagAssets = "/tmp/assets"
				*flagPreset = "chrome.yaml"
				*flagMaterial = "physical"
				*flagWatch = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Assets.Root != "/tmp/assets" {
					t.Errorf("unexpected asset root %s", cfg.Assets.Root)
				}
				if cfg.Material.Preset != "chrome.yaml" || cfg.Material.Kind != "physical" || !cfg.Material.WatchPreset {
					t.Errorf("unexpected material config %+v", cfg.Material)
				}
			},
			teardown: func() {
				*flagAssets = ""
				*flagPreset = ""
				*flagMaterial = ""
				*flagWatch = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
window:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Material.Kind = "phong"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Material.Kind != "phong" {
		t.Errorf("expected phong after reload, got %s", loaded.Material.Kind)
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("HOME", tmpDir)
	t.Setenv("APPDATA", tmpDir)

	cfg := Default()
	cfg.Window.Width = 1024

	path, err := cfg.Save()
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if path != filepath.Join(ConfigDir(), "config.yaml") {
		t.Errorf("unexpected save path %s", path)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Window.Width != 1024 {
		t.Errorf("expected width 1024 after reload, got %d", loaded.Window.Width)
	}
}
