// Package main is the entry point for the panel-free material preview. It
// drives the viewer straight from SDL events and binds every control to the
// keyboard.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/matview/internal/config"
	"github.com/Faultbox/matview/internal/engine/frame"
	"github.com/Faultbox/matview/internal/engine/input"
	"github.com/Faultbox/matview/internal/engine/renderer"
	"github.com/Faultbox/matview/internal/engine/texture"
	"github.com/Faultbox/matview/internal/engine/window"
	"github.com/Faultbox/matview/internal/logger"
	"github.com/Faultbox/matview/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== matview (sdl) ===")

	if config.SaveRequested() {
		if path, err := cfg.Save(); err != nil {
			logger.Warn("saving config failed", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("path", path))
		}
	}

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	win, err := window.New(window.Config{
		Title:         cfg.Window.Title,
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		Fullscreen:    cfg.Window.Fullscreen,
		VSync:         cfg.Window.VSync,
		MaxPixelRatio: cfg.Window.MaxPixelRatio,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Close()

	lib, err := texture.Load(ctx, cfg.Assets.Root)
	if err != nil {
		return fmt.Errorf("load textures: %w", err)
	}

	r, err := renderer.New(win.Viewport())
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	v, err := viewer.New(cfg, r, lib)
	if err != nil {
		r.Close()
		return err
	}
	defer v.Close()
	v.Resize(win.Viewport())

	if cfg.Material.WatchPreset && cfg.Material.Preset != "" {
		if err := v.WatchPreset(ctx, cfg.Material.Preset); err != nil {
			logger.Warn("preset watch disabled", zap.String("path", cfg.Material.Preset), zap.Error(err))
		}
	}

	in := input.New()
	var fps frame.FPSCounter
	lastFrame := time.Now()
	lastTitle := lastFrame

	for {
		now := time.Now()
		fps.Tick(now.Sub(lastFrame))
		lastFrame = now

		if in.Update() {
			return nil
		}
		for _, e := range in.Events() {
			switch e.Type {
			case input.EventWindowResize:
				v.Resize(win.Viewport())
			case input.EventKeyDown:
				if v.HandleKey(e.Name, e.Shift(), e.Repeat) == viewer.KeyQuit {
					return nil
				}
			case input.EventMouseDrag:
				v.HandleDrag(e.DX, e.DY)
			case input.EventMouseWheel:
				v.HandleZoom(e.Wheel)
			}
		}

		v.Frame()
		r.Present(win.DrawableSize())
		win.SwapBuffers()

		if now.Sub(lastTitle) >= time.Second {
			win.SetTitle(fmt.Sprintf("%s - %.0f FPS - %s", cfg.Window.Title, fps.FPS(), v.Material().Kind().Label()))
			lastTitle = now
		}
	}
}
