// Package scene holds the three preview meshes, their lights and the
// per-frame animation.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/matview/internal/engine/lighting"
	"github.com/Faultbox/matview/internal/geometry"
	"github.com/Faultbox/matview/internal/material"
)

// Mesh places a geometry in the world and carries the material it is drawn
// with. It implements material.Target.
type Mesh struct {
	Name     string
	Geometry *geometry.Geometry
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler angles in radians, applied X then Y then Z
	Scale    mgl32.Vec3

	material material.Material
}

// NewMesh creates a mesh at position with unit scale.
func NewMesh(name string, geom *geometry.Geometry, position mgl32.Vec3) *Mesh {
	return &Mesh{Name: name, Geometry: geom, Position: position, Scale: mgl32.Vec3{1, 1, 1}}
}

// SetMaterial implements material.Target.
func (m *Mesh) SetMaterial(mat material.Material) { m.material = mat }

// Material returns the mesh's current material.
func (m *Mesh) Material() material.Material { return m.material }

// ModelMatrix returns translation * rotation * scale.
func (m *Mesh) ModelMatrix() mgl32.Mat4 {
	r := m.Rotation
	rot := mgl32.HomogRotate3DX(r.X()).Mul4(mgl32.HomogRotate3DY(r.Y())).Mul4(mgl32.HomogRotate3DZ(r.Z()))
	return mgl32.Translate3D(m.Position.X(), m.Position.Y(), m.Position.Z()).
		Mul4(rot).
		Mul4(mgl32.Scale3D(m.Scale.X(), m.Scale.Y(), m.Scale.Z()))
}

// NormalMatrix returns the inverse-transpose of the model matrix's upper 3x3.
func (m *Mesh) NormalMatrix() mgl32.Mat3 {
	return m.ModelMatrix().Mat3().Inv().Transpose()
}

// Quaternion returns the mesh rotation as a quaternion.
func (m *Mesh) Quaternion() mgl32.Quat {
	r := m.Rotation
	return mgl32.QuatRotate(r.X(), mgl32.Vec3{1, 0, 0}).
		Mul(mgl32.QuatRotate(r.Y(), mgl32.Vec3{0, 1, 0})).
		Mul(mgl32.QuatRotate(r.Z(), mgl32.Vec3{0, 0, 1}))
}

// Config controls animation speed.
type Config struct {
	RotationSpeedX float32 // radians per second
	RotationSpeedY float32
	Background     [3]float32
}

// DefaultConfig returns the standard slow tumble.
func DefaultConfig() Config {
	return Config{RotationSpeedX: 0.15, RotationSpeedY: 0.1}
}

// Scene is the set of meshes and lights the renderer draws.
type Scene struct {
	Sphere *Mesh
	Plane  *Mesh
	Torus  *Mesh
	Meshes []*Mesh

	Ambient    lighting.AmbientLight
	Point      lighting.PointLight
	Background [3]float32

	cfg Config
}

// New builds the sphere (left), plane (centre) and torus (right). Meshes have
// no material until a material.Binder attaches them.
func New(cfg Config) *Scene {
	s := &Scene{
		Sphere:     NewMesh("sphere", geometry.Sphere(0.5, 64, 64), mgl32.Vec3{-1.5, 0, 0}),
		Plane:      NewMesh("plane", geometry.Plane(1, 1, 100, 100), mgl32.Vec3{0, 0, 0}),
		Torus:      NewMesh("torus", geometry.Torus(0.3, 0.2, 64, 128), mgl32.Vec3{1.5, 0, 0}),
		Ambient:    lighting.DefaultAmbient(),
		Point:      lighting.DefaultPoint(),
		Background: cfg.Background,
		cfg:        cfg,
	}
	s.Meshes = []*Mesh{s.Sphere, s.Plane, s.Torus}
	return s
}

// Targets returns the meshes as material targets.
func (s *Scene) Targets() []material.Target {
	targets := make([]material.Target, len(s.Meshes))
	for i, m := range s.Meshes {
		targets[i] = m
	}
	return targets
}

// Animate sets every mesh's rotation from the elapsed time in seconds.
// Rotation is absolute, so dropped frames never accumulate drift.
func (s *Scene) Animate(elapsed float64) {
	rx := float32(elapsed) * s.cfg.RotationSpeedX
	ry := float32(elapsed) * s.cfg.RotationSpeedY
	for _, m := range s.Meshes {
		m.Rotation[0] = rx
		m.Rotation[1] = ry
	}
}

// Triangles returns the total triangle count.
func (s *Scene) Triangles() int {
	n := 0
	for _, m := range s.Meshes {
		n += m.Geometry.TriangleCount()
	}
	return n
}
