// Package renderer draws the preview scene with OpenGL into an offscreen
// framebuffer.
package renderer

import (
	"fmt"
	"image"
	"sort"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/matview/internal/engine/camera"
	"github.com/Faultbox/matview/internal/engine/debug"
	"github.com/Faultbox/matview/internal/engine/frame"
	"github.com/Faultbox/matview/internal/engine/framebuffer"
	"github.com/Faultbox/matview/internal/engine/shader"
	"github.com/Faultbox/matview/internal/engine/shader/glsl"
	"github.com/Faultbox/matview/internal/engine/texture"
	"github.com/Faultbox/matview/internal/logger"
	"github.com/Faultbox/matview/internal/material"
	"github.com/Faultbox/matview/internal/scene"
)

// mapUnits assigns each map property its sampler unit.
var mapUnits = map[material.Property]int32{
	material.PropMap:             glsl.UnitMap,
	material.PropAlphaMap:        glsl.UnitAlphaMap,
	material.PropAOMap:           glsl.UnitAOMap,
	material.PropDisplacementMap: glsl.UnitDisplacementMap,
	material.PropNormalMap:       glsl.UnitNormalMap,
	material.PropMetalnessMap:    glsl.UnitMetalnessMap,
	material.PropRoughnessMap:    glsl.UnitRoughnessMap,
	material.PropGradientMap:     glsl.UnitGradientMap,
	material.PropMatcap:          glsl.UnitMatcap,
	material.PropEnvMap:          glsl.UnitEnvMap,
}

// meshState is the program chosen for a mesh's material, valid while the
// snapshot is current.
type meshState struct {
	snapshot material.Snapshot
	program  *shader.Program
}

// Renderer owns every GPU resource of the viewer.
// IMPORTANT: Must be created AFTER the OpenGL context is current.
type Renderer struct {
	fb       *framebuffer.Framebuffer
	programs *shader.Cache
	meshes   map[*scene.Mesh]*gpuMesh
	textures map[*texture.Texture]*gpuTexture
	states   map[*scene.Mesh]*meshState
	viewport frame.Viewport
	log      *zap.Logger
}

// New initializes OpenGL and creates a renderer drawing at vp's drawable size.
func New(vp frame.Viewport) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r := &Renderer{
		programs: shader.NewCache(),
		meshes:   make(map[*scene.Mesh]*gpuMesh),
		textures: make(map[*texture.Texture]*gpuTexture),
		states:   make(map[*scene.Mesh]*meshState),
		viewport: vp,
		log:      logger.Named("renderer"),
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	w, h := vp.Drawable()
	fb, err := framebuffer.New(w, h)
	if err != nil {
		return nil, err
	}
	r.fb = fb

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	return r, nil
}

// Upload creates the buffers for meshes and uploads every library texture.
func (r *Renderer) Upload(meshes []*scene.Mesh, lib *texture.Library) error {
	for _, m := range meshes {
		if _, ok := r.meshes[m]; ok {
			continue
		}
		r.meshes[m] = uploadMesh(m.Geometry)
		r.log.Debug("mesh uploaded",
			zap.String("mesh", m.Name),
			zap.Int("vertices", m.Geometry.VertexCount()),
			zap.Int("triangles", m.Geometry.TriangleCount()),
		)
	}
	if lib != nil {
		for _, t := range lib.All() {
			if t != nil {
				r.texture(t)
			}
		}
	}
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("upload: GL error 0x%x", code)
	}
	return nil
}

func (r *Renderer) texture(t *texture.Texture) *gpuTexture {
	if tex, ok := r.textures[t]; ok {
		return tex
	}
	tex := uploadTexture(t)
	r.textures[t] = tex
	w, h := t.Size()
	r.log.Debug("texture uploaded", zap.String("name", t.Name), zap.Int("width", w), zap.Int("height", h), zap.Bool("cube", t.Cube))
	return tex
}

// Resize reallocates the render target for a new viewport. Empty viewports
// keep the previous target.
func (r *Renderer) Resize(vp frame.Viewport) {
	if vp.Empty() {
		return
	}
	r.viewport = vp
	w, h := vp.Drawable()
	r.fb.Resize(w, h)
	r.log.Debug("renderer resized", zap.Int32("width", w), zap.Int32("height", h), zap.Float32("ratio", vp.Ratio()))
}

// ColorTexture returns the texture the scene is rendered into.
func (r *Renderer) ColorTexture() uint32 { return r.fb.ColorTexture() }

// Present blits the last rendered frame onto the window framebuffer.
func (r *Renderer) Present(width, height int32) {
	r.fb.BlitToDefault(width, height)
}

// Render draws s into the offscreen target.
func (r *Renderer) Render(s *scene.Scene, cam *camera.OrbitCamera) frame.Stats {
	return r.renderInto(r.fb, s, cam)
}

// Capture renders s at width x height into a temporary target and returns
// the pixels top row first. Zero sizes use the current drawable size.
func (r *Renderer) Capture(s *scene.Scene, cam *camera.OrbitCamera, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		w, h := r.fb.Size()
		width, height = int(w), int(h)
	}
	fb, err := framebuffer.New(int32(width), int32(height))
	if err != nil {
		return nil, fmt.Errorf("capture target: %w", err)
	}
	defer fb.Destroy()

	shot := *cam
	shot.Resize(width, height)
	r.renderInto(fb, s, &shot)
	return debug.FlipRows(fb.ReadPixels(), width, height)
}

func (r *Renderer) renderInto(fb *framebuffer.Framebuffer, s *scene.Scene, cam *camera.OrbitCamera) frame.Stats {
	restore := fb.BindWithViewport()
	defer restore()

	bg := s.Background
	fb.Clear(bg[0], bg[1], bg[2], 1)

	var stats frame.Stats
	for _, m := range r.drawOrder(s, cam) {
		if r.drawMesh(m, s, cam) {
			stats.DrawCalls++
			stats.Triangles += r.meshes[m].triangles
		}
	}
	r.resetState()

	stats.Programs = r.programs.Len()
	stats.Textures = len(r.textures)
	return stats
}

// drawOrder sorts transparent meshes back to front; opaque meshes keep
// scene order.
func (r *Renderer) drawOrder(s *scene.Scene, cam *camera.OrbitCamera) []*scene.Mesh {
	order := append([]*scene.Mesh(nil), s.Meshes...)
	eye := cam.Position()
	sort.SliceStable(order, func(i, j int) bool {
		ti, tj := transparent(order[i]), transparent(order[j])
		if ti != tj {
			return !ti
		}
		if !ti {
			return false
		}
		return order[i].Position.Sub(eye).Len() > order[j].Position.Sub(eye).Len()
	})
	return order
}

func transparent(m *scene.Mesh) bool {
	mat := m.Material()
	return mat != nil && mat.Common().Transparent
}

func (r *Renderer) drawMesh(m *scene.Mesh, s *scene.Scene, cam *camera.OrbitCamera) bool {
	gm, ok := r.meshes[m]
	mat := m.Material()
	if !ok || mat == nil {
		return false
	}
	prog, d := r.program(m, mat)
	if prog == nil {
		return false
	}

	r.applyState(d)
	prog.Use()

	prog.SetMat4("uModel", m.ModelMatrix())
	prog.SetMat3("uNormalMatrix", m.NormalMatrix())
	prog.SetMat4("uView", cam.ViewMatrix())
	prog.SetMat4("uProjection", cam.ProjectionMatrix())
	prog.SetVec3("uCameraPosition", cam.Position())

	prog.SetVec3("uColor", d.Color.RGB())
	prog.SetFloat("uOpacity", d.Opacity)
	prog.SetVec3("uSpecular", d.Specular.RGB())
	prog.SetFloat("uShininess", d.Shininess)
	prog.SetFloat("uAOMapIntensity", d.AOMapIntensity)
	prog.SetFloat("uDisplacementScale", d.DisplacementScale)
	prog.SetFloat("uNormalScale", d.NormalScale)
	prog.SetFloat("uMetalness", d.Metalness)
	prog.SetFloat("uRoughness", d.Roughness)
	prog.SetFloat("uClearcoat", d.Clearcoat)
	prog.SetFloat("uClearcoatRoughness", d.ClearcoatRoughness)

	prog.SetVec3("uAmbientLight", s.Ambient.Radiance())
	prog.SetVec3("uPointLightPosition", s.Point.Position)
	prog.SetVec3("uPointLightColor", s.Point.Radiance())
	prog.SetFloat("uPointLightRange", s.Point.Range)

	for prop, t := range d.Maps {
		tex := r.texture(t)
		tex.bind(mapUnits[prop])
		if prop == material.PropEnvMap {
			prog.SetFloat("uEnvMapMaxLod", tex.maxLod)
		}
	}

	gm.draw()
	return true
}

// program returns the shader and description for mat, selecting a program
// again only when the material was replaced or modified. A variant that
// fails to compile leaves the previous program in place.
func (r *Renderer) program(m *scene.Mesh, mat material.Material) (*shader.Program, material.Description) {
	st, ok := r.states[m]
	if !ok {
		st = &meshState{}
		r.states[m] = st
	}
	if st.snapshot.Refresh(mat) {
		if prog, err := r.programs.Get(st.snapshot.Defines()); err == nil {
			st.program = prog
		}
	}
	return st.program, st.snapshot.Description()
}

func (r *Renderer) applyState(d material.Description) {
	switch d.Side {
	case material.FrontSide:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	case material.BackSide:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	default:
		gl.Disable(gl.CULL_FACE)
	}

	if d.Transparent {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}

	if d.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// resetState leaves the GL state the UI layer expects.
func (r *Renderer) resetState() {
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.UseProgram(0)
}

// Close releases every GPU resource.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for m, gm := range r.meshes {
		gm.destroy()
		delete(r.meshes, m)
	}
	for t, tex := range r.textures {
		tex.destroy()
		delete(r.textures, t)
	}
	clear(r.states)
	r.programs.Close()
	r.fb.Destroy()
}
