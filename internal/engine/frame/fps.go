package frame

import "time"

// FPSCounter averages the frame rate over a sliding window.
type FPSCounter struct {
	Window time.Duration // averaging period, 500ms when zero

	fps       float64
	frameTime time.Duration
	accum     time.Duration
	frames    int
}

// Tick records one frame that took dt.
func (c *FPSCounter) Tick(dt time.Duration) {
	window := c.Window
	if window <= 0 {
		window = 500 * time.Millisecond
	}
	c.frameTime = dt
	c.accum += dt
	c.frames++
	if c.accum >= window {
		c.fps = float64(c.frames) / c.accum.Seconds()
		c.accum = 0
		c.frames = 0
	}
}

// FPS returns the last averaged frame rate.
func (c *FPSCounter) FPS() float64 { return c.fps }

// FrameTime returns the duration of the last frame.
func (c *FPSCounter) FrameTime() time.Duration { return c.frameTime }
