package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDrawable(t *testing.T) {
	tests := []struct {
		name  string
		vp    Viewport
		wantW int32
		wantH int32
		ratio float32
	}{
		{"standard display", Viewport{Width: 1280, Height: 720, PixelRatio: 1}, 1280, 720, 1},
		{"retina", Viewport{Width: 1280, Height: 720, PixelRatio: 2}, 2560, 1440, 2},
		{"dense display capped", Viewport{Width: 1000, Height: 500, PixelRatio: 3}, 2000, 1000, 2},
		{"fractional scale", Viewport{Width: 1000, Height: 600, PixelRatio: 1.5}, 1500, 900, 1.5},
		{"unknown ratio", Viewport{Width: 640, Height: 480}, 640, 480, 1},
		{"custom cap", Viewport{Width: 100, Height: 100, PixelRatio: 2, MaxRatio: 1}, 100, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.vp.Drawable()
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
			assert.Equal(t, tt.ratio, tt.vp.Ratio())
		})
	}
}

func TestAspect(t *testing.T) {
	assert.InDelta(t, 16.0/9.0, Viewport{Width: 1920, Height: 1080}.Aspect(), 1e-6)
	assert.Equal(t, float32(1), Viewport{}.Aspect())
	assert.True(t, Viewport{Width: 10}.Empty())
}

func TestFPSCounter(t *testing.T) {
	var c FPSCounter
	for i := 0; i < 24; i++ {
		c.Tick(20 * time.Millisecond)
	}
	assert.Zero(t, c.FPS(), "no estimate before the window fills")

	c.Tick(20 * time.Millisecond)
	assert.InDelta(t, 50, c.FPS(), 1e-9)
	assert.Equal(t, 20*time.Millisecond, c.FrameTime())

	for i := 0; i < 13; i++ {
		c.Tick(40 * time.Millisecond)
	}
	assert.InDelta(t, 25, c.FPS(), 1e-9)
}
