package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/matview/internal/geometry"
)

// gpuMesh holds the buffers for one uploaded geometry.
type gpuMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	triangles  int
}

// attribute layout of geometry.Interleaved: position, normal, uv, uv2.
var attributes = []struct {
	location uint32
	size     int32
	offset   int
}{
	{0, 3, 0},
	{1, 3, 3},
	{2, 2, 6},
	{3, 2, 8},
}

func uploadMesh(g *geometry.Geometry) *gpuMesh {
	vertices := g.Interleaved()
	m := &gpuMesh{indexCount: int32(len(g.Indices)), triangles: g.TriangleCount()}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)

	stride := int32(geometry.FloatsPerVertex * 4)
	for _, a := range attributes {
		gl.VertexAttribPointer(a.location, a.size, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(a.offset*4)))
		gl.EnableVertexAttribArray(a.location)
	}

	gl.BindVertexArray(0)
	return m
}

func (m *gpuMesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (m *gpuMesh) destroy() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}
