// Package geometry generates the indexed triangle meshes the viewer shows.
package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved layout: position(3) normal(3) uv(2) uv2(2).
const FloatsPerVertex = 10

// Geometry holds per-vertex attributes and triangle indices.
type Geometry struct {
	Name      string
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	UV2s      []mgl32.Vec2 // second uv set for the ambient occlusion map
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int { return len(g.Positions) }

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int { return len(g.Indices) / 3 }

// Interleaved packs the attributes for a single vertex buffer.
func (g *Geometry) Interleaved() []float32 {
	out := make([]float32, 0, len(g.Positions)*FloatsPerVertex)
	for i, p := range g.Positions {
		n, uv, uv2 := g.Normals[i], g.UVs[i], g.UV2s[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1], uv2[0], uv2[1])
	}
	return out
}

// Bounds returns the axis-aligned bounding box.
func (g *Geometry) Bounds() (min, max mgl32.Vec3) {
	if len(g.Positions) == 0 {
		return
	}
	min, max = g.Positions[0], g.Positions[0]
	for _, p := range g.Positions[1:] {
		for a := 0; a < 3; a++ {
			min[a] = math32.Min(min[a], p[a])
			max[a] = math32.Max(max[a], p[a])
		}
	}
	return min, max
}

func (g *Geometry) finish() *Geometry {
	g.UV2s = make([]mgl32.Vec2, len(g.UVs))
	copy(g.UV2s, g.UVs)
	return g
}

// Sphere builds a UV sphere centred on the origin. The poles use shifted u
// coordinates so each pole triangle samples the middle of its texel column.
func Sphere(radius float32, widthSegments, heightSegments int) *Geometry {
	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)

	g := &Geometry{Name: "sphere"}
	grid := make([][]uint32, heightSegments+1)
	var index uint32

	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		var uOffset float32
		switch iy {
		case 0:
			uOffset = 0.5 / float32(widthSegments)
		case heightSegments:
			uOffset = -0.5 / float32(widthSegments)
		}

		row := make([]uint32, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			phi := u * 2 * math32.Pi
			theta := v * math32.Pi

			p := mgl32.Vec3{
				-radius * math32.Cos(phi) * math32.Sin(theta),
				radius * math32.Cos(theta),
				radius * math32.Sin(phi) * math32.Sin(theta),
			}
			g.Positions = append(g.Positions, p)
			g.Normals = append(g.Normals, p.Normalize())
			g.UVs = append(g.UVs, mgl32.Vec2{u + uOffset, 1 - v})
			row[ix] = index
			index++
		}
		grid[iy] = row
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}
	return g.finish()
}

// Plane builds a width x height plane in the XY plane facing +Z.
func Plane(width, height float32, widthSegments, heightSegments int) *Geometry {
	gridX := max(widthSegments, 1)
	gridY := max(heightSegments, 1)
	segW := width / float32(gridX)
	segH := height / float32(gridY)

	g := &Geometry{Name: "plane"}
	for iy := 0; iy <= gridY; iy++ {
		y := float32(iy)*segH - height/2
		for ix := 0; ix <= gridX; ix++ {
			x := float32(ix)*segW - width/2
			g.Positions = append(g.Positions, mgl32.Vec3{x, -y, 0})
			g.Normals = append(g.Normals, mgl32.Vec3{0, 0, 1})
			g.UVs = append(g.UVs, mgl32.Vec2{float32(ix) / float32(gridX), 1 - float32(iy)/float32(gridY)})
		}
	}

	stride := uint32(gridX + 1)
	for iy := uint32(0); iy < uint32(gridY); iy++ {
		for ix := uint32(0); ix < uint32(gridX); ix++ {
			a := ix + stride*iy
			b := ix + stride*(iy+1)
			c := ix + 1 + stride*(iy+1)
			d := ix + 1 + stride*iy
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	return g.finish()
}

// Torus builds a torus around the Z axis with ring radius and tube radius.
func Torus(radius, tube float32, radialSegments, tubularSegments int) *Geometry {
	radialSegments = max(radialSegments, 3)
	tubularSegments = max(tubularSegments, 3)

	g := &Geometry{Name: "torus"}
	for j := 0; j <= radialSegments; j++ {
		v := float32(j) / float32(radialSegments) * 2 * math32.Pi
		for i := 0; i <= tubularSegments; i++ {
			u := float32(i) / float32(tubularSegments) * 2 * math32.Pi

			ring := radius + tube*math32.Cos(v)
			p := mgl32.Vec3{ring * math32.Cos(u), ring * math32.Sin(u), tube * math32.Sin(v)}
			center := mgl32.Vec3{radius * math32.Cos(u), radius * math32.Sin(u), 0}

			g.Positions = append(g.Positions, p)
			g.Normals = append(g.Normals, p.Sub(center).Normalize())
			g.UVs = append(g.UVs, mgl32.Vec2{
				float32(i) / float32(tubularSegments),
				float32(j) / float32(radialSegments),
			})
		}
	}

	stride := uint32(tubularSegments + 1)
	for j := uint32(1); j <= uint32(radialSegments); j++ {
		for i := uint32(1); i <= uint32(tubularSegments); i++ {
			a := stride*j + i - 1
			b := stride*(j-1) + i - 1
			c := stride*(j-1) + i
			d := stride*j + i
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	return g.finish()
}
