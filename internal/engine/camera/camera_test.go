package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d", i)
	}
}

func TestNewPlacesCamera(t *testing.T) {
	c := New(75, mgl32.Vec3{1, 1, 2})

	assertVec(t, mgl32.Vec3{1, 1, 2}, c.Position())
	assert.Equal(t, float32(0.1), c.Near)
	assert.Equal(t, float32(100), c.Far)
	assert.True(t, c.EnableDamping)
	assert.Equal(t, float32(0.05), c.DampingFactor)
}

func TestViewLooksAtTarget(t *testing.T) {
	c := New(75, mgl32.Vec3{1, 1, 2})
	target := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})

	// the target sits straight ahead on the view -Z axis
	assert.InDelta(t, 0, target.X(), 1e-4)
	assert.InDelta(t, 0, target.Y(), 1e-4)
	assert.Less(t, target.Z(), float32(0))
}

func TestResize(t *testing.T) {
	c := New(75, mgl32.Vec3{0, 0, 3})
	c.Resize(1600, 900)
	assert.InDelta(t, 16.0/9.0, c.Aspect, 1e-6)

	c.Resize(0, 0)
	assert.InDelta(t, 16.0/9.0, c.Aspect, 1e-6, "minimized window keeps aspect")
}

func TestDampedDrag(t *testing.T) {
	c := New(75, mgl32.Vec3{0, 0, 3})
	start := c.RotationY

	c.HandleDrag(100, 0)
	assert.Equal(t, start, c.RotationY, "damped drag waits for Update")

	c.Update()
	first := start - c.RotationY
	assert.Greater(t, first, float32(0))

	c.Update()
	second := start - c.RotationY - first
	assert.Less(t, second, first, "each frame applies less than the last")

	for i := 0; i < 2000 && c.Moving(); i++ {
		c.Update()
	}
	assert.False(t, c.Moving())
	assert.InDelta(t, start-100*c.DragSensitivity, c.RotationY, 1e-3)
}

func TestUndampedDrag(t *testing.T) {
	c := New(75, mgl32.Vec3{0, 0, 3})
	c.EnableDamping = false

	c.HandleDrag(0, 100)
	assert.InDelta(t, 0.5, c.RotationX, 1e-5)
	assert.False(t, c.Moving())
}

func TestPitchClamp(t *testing.T) {
	c := New(75, mgl32.Vec3{0, 0, 3})
	c.EnableDamping = false
	c.HandleDrag(0, 100000)
	assert.Equal(t, c.MaxPitch, c.RotationX)
}

func TestZoomClamp(t *testing.T) {
	c := New(75, mgl32.Vec3{0, 0, 3})
	for i := 0; i < 100; i++ {
		c.HandleZoom(1)
	}
	assert.Equal(t, c.MinDistance, c.Distance)
	for i := 0; i < 200; i++ {
		c.HandleZoom(-1)
	}
	assert.Equal(t, c.MaxDistance, c.Distance)
}

func TestReset(t *testing.T) {
	c := New(75, mgl32.Vec3{1, 1, 2})
	c.Resize(800, 400)
	c.EnableDamping = false
	c.HandleDrag(300, -50)
	c.HandleZoom(3)

	c.Reset()
	assertVec(t, mgl32.Vec3{1, 1, 2}, c.Position())
	assert.Equal(t, float32(2), c.Aspect)
	assert.False(t, c.Moving())
}
