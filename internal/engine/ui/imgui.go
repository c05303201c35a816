// Package ui provides the ImGui window backend, the material panel and the
// stats overlay.
package ui

import (
	"fmt"
	"os"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/matview/internal/engine/frame"
	"github.com/Faultbox/matview/internal/logger"
)

// latinGlyphRanges covers Basic Latin and Latin-1 Supplement.
// Format: pairs of [start, end] values terminated by 0.
var latinGlyphRanges = []imgui.Wchar{
	0x0020, 0x00FF,
	0,
}

// Config describes the window the backend opens.
type Config struct {
	Title         string
	Width         int
	Height        int
	FontPath      string  // optional TTF; empty keeps the ImGui default font
	FontSize      float32 // 16 when zero
	MaxPixelRatio float32
	Background    [3]float32
	Fullscreen    bool
	VSync         bool
}

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	cfg     Config
}

// NewBackend creates the window and its OpenGL context.
func NewBackend(cfg Config) (*Backend, error) {
	b := &Backend{cfg: cfg}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	// Fonts must be added before the first frame builds the atlas.
	b.backend.SetAfterCreateContextHook(func() {
		b.loadFont()
	})

	bg := cfg.Background
	b.backend.SetBgColor(imgui.NewVec4(bg[0], bg[1], bg[2], 1.0))
	if cfg.Fullscreen {
		b.backend.SetWindowFlags(sdlbackend.SDLWindowFlagsFullScreen, 1)
	}
	b.backend.CreateWindow(cfg.Title, cfg.Width, cfg.Height)

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := b.backend.SetSwapInterval(sdlbackend.SDLWindowFlags(interval)); err != nil {
		logger.Named("ui").Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}
	return b, nil
}

func (b *Backend) loadFont() {
	path := b.cfg.FontPath
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		logger.Named("ui").Warn("panel font not found, using default", zap.String("path", path))
		return
	}
	size := b.cfg.FontSize
	if size <= 0 {
		size = 16
	}

	fontCfg := imgui.NewFontConfig()
	defer fontCfg.Destroy()

	fonts := imgui.CurrentIO().Fonts()
	fonts.AddFontFromFileTTFV(path, size, fontCfg, &latinGlyphRanges[0])
}

// Run starts the main render loop. It returns when the window closes.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// Viewport returns the display size in logical pixels and its framebuffer
// scale, capped by the configured maximum ratio.
func (b *Backend) Viewport() frame.Viewport {
	io := imgui.CurrentIO()
	size := io.DisplaySize()
	scale := io.DisplayFramebufferScale()
	return frame.Viewport{
		Width:      int(size.X),
		Height:     int(size.Y),
		PixelRatio: scale.X,
		MaxRatio:   b.cfg.MaxPixelRatio,
	}
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// Close asks the render loop to stop after the current frame.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// KeyPress reports whether key went down this frame and whether that press
// is an auto-repeat of a held key. Modifiers are ignored.
func KeyPress(key imgui.Key) (pressed, repeat bool) {
	if imgui.IsKeyPressedBoolV(key, false) {
		return true, false
	}
	if imgui.IsKeyPressedBool(key) {
		return true, true
	}
	return false, false
}

// ShiftHeld reports whether either shift key is down.
func ShiftHeld() bool {
	return imgui.CurrentIO().KeyShift()
}
