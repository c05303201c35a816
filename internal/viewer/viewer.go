// Package viewer ties the material binder, scene, camera and renderer into
// the per-frame application state driven by a window front end.
package viewer

import (
	"context"
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/matview/internal/config"
	"github.com/Faultbox/matview/internal/engine/camera"
	"github.com/Faultbox/matview/internal/engine/debug"
	"github.com/Faultbox/matview/internal/engine/frame"
	"github.com/Faultbox/matview/internal/engine/texture"
	"github.com/Faultbox/matview/internal/export"
	"github.com/Faultbox/matview/internal/logger"
	"github.com/Faultbox/matview/internal/material"
	"github.com/Faultbox/matview/internal/preset"
	"github.com/Faultbox/matview/internal/scene"
)

// Renderer is the GPU side the viewer draws through.
type Renderer interface {
	Upload(meshes []*scene.Mesh, lib *texture.Library) error
	Resize(vp frame.Viewport)
	Render(s *scene.Scene, cam *camera.OrbitCamera) frame.Stats
	Capture(s *scene.Scene, cam *camera.OrbitCamera, width, height int) (*image.RGBA, error)
	Close()
}

// Viewer is the application context. All methods run on the render thread.
type Viewer struct {
	cfg      *config.Config
	params   *material.Params
	binder   *material.Binder
	scene    *scene.Scene
	camera   *camera.OrbitCamera
	clock    *scene.Clock
	textures *texture.Library
	renderer Renderer
	capture  *debug.ScreenshotCapture

	viewport frame.Viewport
	pending  *frame.Viewport
	stats    frame.Stats
	frames   uint64

	watcher    *preset.Watcher
	presetPath string

	log *zap.Logger
}

// New builds the scene, binds the shared material and uploads everything to r.
// A configured preset or material kind replaces the initial standard material.
func New(cfg *config.Config, r Renderer, lib *texture.Library) (*Viewer, error) {
	if lib == nil {
		lib = &texture.Library{}
	}
	params := material.DefaultParams()
	v := &Viewer{
		cfg:      cfg,
		params:   &params,
		textures: lib,
		renderer: r,
		clock:    scene.NewClock(),
		capture:  debug.NewScreenshotCapture(cfg.Capture.Dir, cfg.Capture.Prefix),
		log:      logger.Named("viewer"),
	}

	v.scene = scene.New(scene.Config{
		RotationSpeedX: cfg.Scene.RotationSpeedX,
		RotationSpeedY: cfg.Scene.RotationSpeedY,
		Background:     cfg.Scene.Background,
	})
	v.binder = material.NewBinder(v.params, lib)
	v.binder.Attach(v.scene.Targets()...)

	v.camera = camera.New(cfg.Scene.CameraFOV, mgl32.Vec3(cfg.Scene.CameraPosition))
	v.camera.EnableDamping = cfg.Scene.Damping
	v.camera.DampingFactor = cfg.Scene.DampingFactor

	if cfg.Material.Preset != "" {
		if err := v.LoadPreset(cfg.Material.Preset); err != nil {
			v.log.Warn("startup preset not applied", zap.String("path", cfg.Material.Preset), zap.Error(err))
		}
	}
	if cfg.Material.Kind != "" {
		kind, err := material.ParseKind(cfg.Material.Kind)
		if err != nil {
			return nil, fmt.Errorf("material kind: %w", err)
		}
		v.binder.SetKind(kind)
	}

	if err := r.Upload(v.scene.Meshes, lib); err != nil {
		return nil, fmt.Errorf("uploading scene: %w", err)
	}
	v.log.Info("viewer ready",
		zap.Stringer("material", v.binder.Current().Kind()),
		zap.Int("triangles", v.scene.Triangles()),
		zap.Int("missing_textures", lib.Missing()),
	)
	return v, nil
}

// Resize records a new viewport. It takes effect at the start of the next
// Frame, before anything is drawn.
func (v *Viewer) Resize(vp frame.Viewport) {
	if vp.MaxRatio <= 0 {
		vp.MaxRatio = v.cfg.Window.MaxPixelRatio
	}
	v.pending = &vp
}

// Frame advances one tick: applies a pending resize, applies preset
// reloads, animates the meshes, updates the camera and renders. Nothing is
// drawn while the viewport is empty.
func (v *Viewer) Frame() frame.Stats {
	if v.pending != nil {
		v.applyResize(*v.pending)
		v.pending = nil
	}
	v.drainPresets()

	v.scene.Animate(v.clock.Elapsed())
	v.camera.Update()

	if v.viewport.Empty() {
		return v.stats
	}
	v.stats = v.renderer.Render(v.scene, v.camera)
	v.frames++
	return v.stats
}

func (v *Viewer) applyResize(vp frame.Viewport) {
	v.viewport = vp
	if vp.Empty() {
		// Minimized; the render target keeps its last size.
		return
	}
	v.camera.Resize(vp.Width, vp.Height)
	v.renderer.Resize(vp)
	w, h := vp.Drawable()
	v.log.Debug("viewport resized",
		zap.Int("width", vp.Width), zap.Int("height", vp.Height),
		zap.Int32("drawable_width", w), zap.Int32("drawable_height", h))
}

func (v *Viewer) drainPresets() {
	if v.watcher == nil {
		return
	}
	for {
		select {
		case p, ok := <-v.watcher.Updates():
			if !ok {
				v.watcher = nil
				return
			}
			v.applyParams(p)
			v.log.Info("preset reloaded", zap.String("path", v.presetPath), zap.Stringer("kind", p.Kind))
		default:
			return
		}
	}
}

func (v *Viewer) applyParams(p material.Params) {
	*v.params = p
	v.binder.Reload()
}

// HandleDrag orbits the camera by a pointer delta in pixels.
func (v *Viewer) HandleDrag(dx, dy float32) { v.camera.HandleDrag(dx, dy) }

// HandleZoom dollies the camera by wheel steps.
func (v *Viewer) HandleZoom(delta float32) { v.camera.HandleZoom(delta) }

// ResetCamera returns the camera to its start pose.
func (v *Viewer) ResetCamera() { v.camera.Reset() }

// SetKind swaps the shared material.
func (v *Viewer) SetKind(kind material.Kind) { v.binder.SetKind(kind) }

// Apply pushes one edited parameter into the shared material.
func (v *Viewer) Apply(prop material.Property) bool { return v.binder.Apply(prop) }

// Nudge changes a numeric parameter by delta and applies it.
func (v *Viewer) Nudge(prop material.Property, delta float32) bool {
	return v.params.Nudge(prop, delta) && v.binder.Apply(prop)
}

// Toggle flips a boolean parameter and applies it.
func (v *Viewer) Toggle(prop material.Property) bool {
	return v.params.Toggle(prop) && v.binder.Apply(prop)
}

// LoadPreset replaces every parameter with the file's values and rebuilds
// the material.
func (v *Viewer) LoadPreset(path string) error {
	p, err := preset.Load(path)
	if err != nil {
		return err
	}
	v.applyParams(p)
	v.presetPath = path
	v.log.Info("preset loaded", zap.String("path", path), zap.Stringer("kind", p.Kind))
	return nil
}

// SavePreset writes the current parameters.
func (v *Viewer) SavePreset(path string) error {
	if err := preset.Save(path, *v.params); err != nil {
		return err
	}
	v.presetPath = path
	v.log.Info("preset saved", zap.String("path", path))
	return nil
}

// WatchPreset reloads path whenever it changes on disk. Reloads are applied
// inside Frame. A previous watch is replaced.
func (v *Viewer) WatchPreset(ctx context.Context, path string) error {
	w, err := preset.Watch(ctx, path)
	if err != nil {
		return err
	}
	if v.watcher != nil {
		v.watcher.Close()
	}
	v.watcher = w
	v.presetPath = path
	return nil
}

// Screenshot captures the scene at the configured size, or the current
// drawable size when none is set, and returns the written file.
func (v *Viewer) Screenshot() (string, error) {
	img, err := v.renderer.Capture(v.scene, v.camera, v.cfg.Capture.Width, v.cfg.Capture.Height)
	if err != nil {
		return "", fmt.Errorf("capturing frame: %w", err)
	}
	path, err := v.capture.CaptureFromImage(img)
	if err != nil {
		return "", err
	}
	v.log.Info("screenshot saved", zap.String("path", path))
	return path, nil
}

// Export writes the scene to path, or to the configured path when empty.
func (v *Viewer) Export(path string) (string, error) {
	if path == "" {
		path = v.cfg.Export.Path
	}
	if err := export.WriteGLTF(path, v.scene); err != nil {
		return "", err
	}
	v.log.Info("scene exported", zap.String("path", path), zap.Stringer("material", v.binder.Current().Kind()))
	return path, nil
}

// Params returns the live panel parameters. Edit them, then call Apply.
func (v *Viewer) Params() *material.Params { return v.params }

// Material returns the shared material.
func (v *Viewer) Material() material.Material { return v.binder.Current() }

// Scene returns the preview scene.
func (v *Viewer) Scene() *scene.Scene { return v.scene }

// Camera returns the orbit camera.
func (v *Viewer) Camera() *camera.OrbitCamera { return v.camera }

// Viewport returns the viewport in effect.
func (v *Viewer) Viewport() frame.Viewport { return v.viewport }

// Stats returns the last rendered frame's stats.
func (v *Viewer) Stats() frame.Stats { return v.stats }

// Frames returns the number of frames rendered.
func (v *Viewer) Frames() uint64 { return v.frames }

// PresetPath returns the last loaded, saved or watched preset.
func (v *Viewer) PresetPath() string { return v.presetPath }

// LastScreenshot returns the most recent screenshot path.
func (v *Viewer) LastScreenshot() string { return v.capture.Last() }

// Close stops the preset watcher and releases the renderer.
func (v *Viewer) Close() {
	if v.watcher != nil {
		v.watcher.Close()
		v.watcher = nil
	}
	v.renderer.Close()
}
