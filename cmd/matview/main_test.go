package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/matview/internal/config"
)

func TestBackendConfigCarriesWindowSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Fullscreen = true
	cfg.Window.VSync = false
	cfg.Window.Width = 1600
	cfg.Assets.FontPath = "fonts/panel.ttf"

	bc := backendConfig(cfg)
	assert.True(t, bc.Fullscreen)
	assert.False(t, bc.VSync)
	assert.Equal(t, 1600, bc.Width)
	assert.Equal(t, cfg.Window.Height, bc.Height)
	assert.Equal(t, "fonts/panel.ttf", bc.FontPath)
	assert.Equal(t, cfg.Window.MaxPixelRatio, bc.MaxPixelRatio)
	assert.Equal(t, cfg.Scene.Background, bc.Background)

	cfg.Window.Fullscreen = false
	cfg.Window.VSync = true
	bc = backendConfig(cfg)
	assert.False(t, bc.Fullscreen)
	assert.True(t, bc.VSync)
}
