// Package camera provides the orbiting perspective camera.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera orbits around a target point, with optional damping so drags
// keep easing out over the following frames.
type OrbitCamera struct {
	Target mgl32.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from target
	RotationX float32 // Pitch above the XZ plane (radians)
	RotationY float32 // Yaw around the Y axis (radians)

	// Projection
	FOV    float32 // Vertical field of view (degrees)
	Aspect float32
	Near   float32
	Far    float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	EnableDamping bool
	DampingFactor float32

	// pending rotation not yet applied by Update
	deltaX, deltaY float32

	home pose
}

// pose is the part of the camera Reset restores.
type pose struct {
	target    mgl32.Vec3
	distance  float32
	rotationX float32
	rotationY float32
	fov       float32
}

// New creates a perspective camera at position looking at the origin.
func New(fov float32, position mgl32.Vec3) *OrbitCamera {
	c := &OrbitCamera{
		FOV:             fov,
		Aspect:          1,
		Near:            0.1,
		Far:             100,
		MinDistance:     0.5,
		MaxDistance:     50,
		MinPitch:        -math32.Pi/2 + 0.01,
		MaxPitch:        math32.Pi/2 - 0.01,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		EnableDamping:   true,
		DampingFactor:   0.05,
	}
	c.LookFrom(position)
	c.home = pose{c.Target, c.Distance, c.RotationX, c.RotationY, c.FOV}
	return c
}

// LookFrom places the camera at position, keeping the current target.
func (c *OrbitCamera) LookFrom(position mgl32.Vec3) {
	offset := position.Sub(c.Target)
	c.Distance = clamp(offset.Len(), c.MinDistance, c.MaxDistance)
	if d := offset.Len(); d > 0 {
		c.RotationX = clamp(math32.Asin(offset.Y()/d), c.MinPitch, c.MaxPitch)
	}
	c.RotationY = math32.Atan2(offset.X(), offset.Z())
	c.deltaX, c.deltaY = 0, 0
}

// Reset returns to the pose and field of view the camera was created with
// and drops any queued rotation.
func (c *OrbitCamera) Reset() {
	c.Target = c.home.target
	c.Distance = c.home.distance
	c.RotationX = c.home.rotationX
	c.RotationY = c.home.rotationY
	c.FOV = c.home.fov
	c.deltaX, c.deltaY = 0, 0
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	cosX := math32.Cos(c.RotationX)
	return c.Target.Add(mgl32.Vec3{
		c.Distance * cosX * math32.Sin(c.RotationY),
		c.Distance * math32.Sin(c.RotationX),
		c.Distance * cosX * math32.Cos(c.RotationY),
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection.
func (c *OrbitCamera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// Resize updates the aspect ratio. Zero sizes (minimized windows) are ignored.
func (c *OrbitCamera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// HandleDrag queues a rotation from a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.deltaY -= deltaX * c.DragSensitivity
	c.deltaX += deltaY * c.DragSensitivity
	if !c.EnableDamping {
		c.apply(1)
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// Update applies queued rotation. With damping, a fraction of the pending
// motion is applied each call and the rest decays, so it must run once per
// frame.
func (c *OrbitCamera) Update() {
	if !c.EnableDamping {
		c.apply(1)
		return
	}
	c.apply(c.DampingFactor)
}

// Moving reports whether queued rotation is still being applied.
func (c *OrbitCamera) Moving() bool {
	const eps = 1e-5
	return math32.Abs(c.deltaX) > eps || math32.Abs(c.deltaY) > eps
}

func (c *OrbitCamera) apply(fraction float32) {
	c.RotationY += c.deltaY * fraction
	c.RotationX = clamp(c.RotationX+c.deltaX*fraction, c.MinPitch, c.MaxPitch)
	c.deltaX *= 1 - fraction
	c.deltaY *= 1 - fraction
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
