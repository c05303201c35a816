// Package frame holds the per-frame surface description shared by the
// window front ends, the renderer and the viewer.
package frame

// DefaultMaxPixelRatio caps the drawable size on very dense displays.
const DefaultMaxPixelRatio = 2

// Viewport is the window's logical size plus its device pixel ratio.
type Viewport struct {
	Width      int
	Height     int
	PixelRatio float32
	MaxRatio   float32 // 0 means DefaultMaxPixelRatio
}

// Ratio returns the pixel ratio actually used: min(PixelRatio, MaxRatio),
// defaulting to 1 when unknown.
func (v Viewport) Ratio() float32 {
	r := v.PixelRatio
	if r <= 0 {
		r = 1
	}
	limit := v.MaxRatio
	if limit <= 0 {
		limit = DefaultMaxPixelRatio
	}
	if r > limit {
		r = limit
	}
	return r
}

// Drawable returns the framebuffer size in pixels.
func (v Viewport) Drawable() (int32, int32) {
	r := v.Ratio()
	return int32(float32(v.Width)*r + 0.5), int32(float32(v.Height)*r + 0.5)
}

// Aspect returns width/height, or 1 for an empty viewport.
func (v Viewport) Aspect() float32 {
	if v.Empty() {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Empty reports a zero-area viewport, e.g. a minimized window.
func (v Viewport) Empty() bool { return v.Width <= 0 || v.Height <= 0 }

// Stats summarizes one rendered frame.
type Stats struct {
	DrawCalls int
	Triangles int
	Programs  int // compiled shader variants
	Textures  int // uploaded textures
}
