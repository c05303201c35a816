// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Assets   AssetsConfig   `yaml:"assets"`
	Scene    SceneConfig    `yaml:"scene"`
	Material MaterialConfig `yaml:"material"`
	Capture  CaptureConfig  `yaml:"capture"`
	Export   ExportConfig   `yaml:"export"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title         string  `yaml:"title"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Fullscreen    bool    `yaml:"fullscreen"`
	VSync         bool    `yaml:"vsync"`
	MaxPixelRatio float32 `yaml:"max_pixel_ratio"` // Drawable size is capped at logical size times this
	ShowStats     bool    `yaml:"show_stats"`
}

// AssetsConfig holds asset locations.
type AssetsConfig struct {
	Root     string `yaml:"root"`      // Directory containing textures/
	FontPath string `yaml:"font_path"` // Optional TTF for the panel
}

// SceneConfig holds animation and camera settings.
type SceneConfig struct {
	RotationSpeedX float32    `yaml:"rotation_speed_x"` // Radians per second
	RotationSpeedY float32    `yaml:"rotation_speed_y"`
	Background     [3]float32 `yaml:"background"`
	CameraFOV      float32    `yaml:"camera_fov"` // Degrees
	CameraPosition [3]float32 `yaml:"camera_position"`
	Damping        bool       `yaml:"damping"`
	DampingFactor  float32    `yaml:"damping_factor"`
}

// MaterialConfig holds the startup material settings.
type MaterialConfig struct {
	Kind        string `yaml:"kind"`         // Empty keeps the initial standard material
	Preset      string `yaml:"preset"`       // Preset file applied at startup
	WatchPreset bool   `yaml:"watch_preset"` // Reload the preset when it changes on disk
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Width  int    `yaml:"width"` // 0 captures the window as displayed
	Height int    `yaml:"height"`
}

// ExportConfig holds glTF export settings.
type ExportConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:         "matview",
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			MaxPixelRatio: 2,
			ShowStats:     false,
		},
		Assets: AssetsConfig{
			Root: "static",
		},
		Scene: SceneConfig{
			RotationSpeedX: 0.15,
			RotationSpeedY: 0.1,
			Background:     [3]float32{0, 0, 0},
			CameraFOV:      75,
			CameraPosition: [3]float32{1, 1, 2},
			Damping:        true,
			DampingFactor:  0.05,
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "matview",
		},
		Export: ExportConfig{
			Path: "matview.gltf",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
