// Package main is the entry point for the material preview with the ImGui
// panel.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/matview/internal/config"
	"github.com/Faultbox/matview/internal/engine/frame"
	"github.com/Faultbox/matview/internal/engine/renderer"
	"github.com/Faultbox/matview/internal/engine/texture"
	"github.com/Faultbox/matview/internal/engine/ui"
	"github.com/Faultbox/matview/internal/logger"
	"github.com/Faultbox/matview/internal/viewer"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// viewerKeys maps ImGui keys to the names the viewer binds.
var viewerKeys = []struct {
	key  imgui.Key
	name string
}{
	{imgui.Key1, "1"}, {imgui.Key2, "2"}, {imgui.Key3, "3"},
	{imgui.Key4, "4"}, {imgui.Key5, "5"}, {imgui.Key6, "6"},
	{imgui.Key7, "7"}, {imgui.Key8, "8"}, {imgui.Key9, "9"},
	{imgui.KeyW, "W"}, {imgui.KeyF, "F"}, {imgui.KeyM, "M"},
	{imgui.KeyA, "A"}, {imgui.KeyO, "O"}, {imgui.KeyH, "H"},
	{imgui.KeyN, "N"}, {imgui.KeyG, "G"}, {imgui.KeyS, "S"},
	{imgui.KeyR, "R"}, {imgui.KeyP, "P"}, {imgui.KeyL, "L"},
	{imgui.KeyX, "X"},
	{imgui.KeyUpArrow, "Up"}, {imgui.KeyDownArrow, "Down"},
	{imgui.KeyLeftArrow, "Left"}, {imgui.KeyRightArrow, "Right"},
	{imgui.KeyLeftBracket, "["}, {imgui.KeyRightBracket, "]"},
	{imgui.KeyF12, "F12"}, {imgui.KeyEscape, "Escape"},
}

// App owns the window, the renderer and the viewer state.
type App struct {
	backend   *ui.Backend
	renderer  *renderer.Renderer
	viewer    *viewer.Viewer
	panel     *ui.Panel
	overlay   *ui.StatsOverlay
	sceneView ui.SceneView

	title     string
	lastFrame time.Time
	lastTitle time.Time
	cancel    context.CancelFunc
}

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

	logger.Info("=== matview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		if path, err := cfg.Save(); err != nil {
			logger.Warn("saving config failed", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("path", path))
		}
	}

	app, err := newApp(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer app.Close()

	app.backend.Run(app.render)
	logger.Info("viewer closed normally")
}

// backendConfig maps the viewer config onto the ImGui window settings.
func backendConfig(cfg *config.Config) ui.Config {
	return ui.Config{
		Title:         cfg.Window.Title,
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		FontPath:      cfg.Assets.FontPath,
		MaxPixelRatio: cfg.Window.MaxPixelRatio,
		Background:    cfg.Scene.Background,
		Fullscreen:    cfg.Window.Fullscreen,
		VSync:         cfg.Window.VSync,
	}
}

func newApp(cfg *config.Config) (*App, error) {
	backend, err := ui.NewBackend(backendConfig(cfg))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		backend:   backend,
		overlay:   ui.NewStatsOverlay(cfg.Window.ShowStats),
		title:     cfg.Window.Title,
		lastFrame: time.Now(),
		cancel:    cancel,
	}

	lib, err := texture.Load(ctx, cfg.Assets.Root)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("load textures: %w", err)
	}

	// The display size is unknown until the first frame; Resize fixes it.
	initial := frame.Viewport{Width: cfg.Window.Width, Height: cfg.Window.Height, PixelRatio: 1, MaxRatio: cfg.Window.MaxPixelRatio}
	app.renderer, err = renderer.New(initial)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	app.viewer, err = viewer.New(cfg, app.renderer, lib)
	if err != nil {
		app.renderer.Close()
		cancel()
		return nil, err
	}

	if cfg.Material.WatchPreset && cfg.Material.Preset != "" {
		if err := app.viewer.WatchPreset(ctx, cfg.Material.Preset); err != nil {
			logger.Warn("preset watch disabled", zap.String("path", cfg.Material.Preset), zap.Error(err))
		}
	}

	app.panel = ui.NewPanel(app.viewer)
	return app, nil
}

func (a *App) render() {
	now := time.Now()
	dt := now.Sub(a.lastFrame)
	a.lastFrame = now
	a.overlay.Update(dt)

	vp := a.backend.Viewport()
	if vp != a.viewer.Viewport() {
		a.viewer.Resize(vp)
	}

	a.handleKeys()
	a.sceneView.HandleInput(a.viewer)

	stats := a.viewer.Frame()
	a.sceneView.Draw(a.renderer.ColorTexture(), vp)
	a.overlay.Render(stats, a.viewer.Material().Kind().Label(), vp)
	a.panel.Render(float32(vp.Width))

	if now.Sub(a.lastTitle) >= time.Second {
		a.backend.SetWindowTitle(fmt.Sprintf("%s - %.0f FPS", a.title, a.overlay.FPS()))
		a.lastTitle = now
	}
}

func (a *App) handleKeys() {
	if ui.IsKeyPressed(imgui.KeyF1) {
		a.overlay.Enabled = !a.overlay.Enabled
	}
	if imgui.CurrentIO().WantCaptureKeyboard() {
		return
	}
	if ui.IsKeyPressed(imgui.KeyTab) {
		a.panel.Visible = !a.panel.Visible
	}

	shift := ui.ShiftHeld()
	for _, k := range viewerKeys {
		pressed, repeat := ui.KeyPress(k.key)
		if !pressed {
			continue
		}
		if a.viewer.HandleKey(k.name, shift, repeat) == viewer.KeyQuit {
			a.backend.Close()
		}
	}
}

// Close releases GPU resources and stops the preset watcher.
func (a *App) Close() {
	a.cancel()
	if a.viewer != nil {
		a.viewer.Close()
	}
}
