// Package lighting describes the scene's light sources for GPU upload.
package lighting

// AmbientLight lights every surface uniformly.
type AmbientLight struct {
	Color     [3]float32 // RGB color (0-1 range)
	Intensity float32
}

// PointLight emits from a single position in all directions.
type PointLight struct {
	Position  [3]float32 // World position
	Color     [3]float32 // RGB color (0-1 range)
	Intensity float32
	Range     float32 // 0 means no distance falloff
}

// DefaultAmbient returns a white ambient light at half intensity.
func DefaultAmbient() AmbientLight {
	return AmbientLight{Color: [3]float32{1, 1, 1}, Intensity: 0.5}
}

// DefaultPoint returns a white point light at half intensity above and in
// front of the objects.
func DefaultPoint() PointLight {
	return PointLight{
		Position:  [3]float32{2, 3, 4},
		Color:     [3]float32{1, 1, 1},
		Intensity: 0.5,
	}
}

// Radiance returns color premultiplied by intensity.
func (a AmbientLight) Radiance() [3]float32 {
	return scale(a.Color, a.Intensity)
}

// Radiance returns color premultiplied by intensity.
func (p PointLight) Radiance() [3]float32 {
	return scale(p.Color, p.Intensity)
}

func scale(c [3]float32, s float32) [3]float32 {
	return [3]float32{c[0] * s, c[1] * s, c[2] * s}
}
