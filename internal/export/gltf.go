// Package export writes the preview scene to glTF.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/matview/internal/material"
	"github.com/Faultbox/matview/internal/scene"
)

// Document builds a glTF document with one node and mesh per scene mesh,
// all sharing a single PBR material derived from the current material.
func Document(s *scene.Scene) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "matview"

	matIndex := -1
	if len(s.Meshes) > 0 && s.Meshes[0].Material() != nil {
		doc.Materials = append(doc.Materials, pbrMaterial(material.Describe(s.Meshes[0].Material())))
		matIndex = 0
	}

	for _, m := range s.Meshes {
		g := m.Geometry
		attrs := gltf.PrimitiveAttributes{
			gltf.POSITION:   modeler.WritePosition(doc, vec3s(g.Positions)),
			gltf.NORMAL:     modeler.WriteNormal(doc, vec3s(g.Normals)),
			gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, vec2s(g.UVs)),
			gltf.TEXCOORD_1: modeler.WriteTextureCoord(doc, vec2s(g.UV2s)),
		}
		prim := &gltf.Primitive{
			Indices:    gltf.Index(modeler.WriteIndices(doc, g.Indices)),
			Attributes: attrs,
		}
		if matIndex >= 0 {
			prim.Material = gltf.Index(matIndex)
		}
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: m.Name, Primitives: []*gltf.Primitive{prim}})

		q := m.Quaternion()
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:        m.Name,
			Mesh:        gltf.Index(len(doc.Meshes) - 1),
			Translation: vec3d(m.Position),
			Rotation:    [4]float64{float64(q.V.X()), float64(q.V.Y()), float64(q.V.Z()), float64(q.W)},
			Scale:       vec3d(m.Scale),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}
	return doc
}

func pbrMaterial(d material.Description) *gltf.Material {
	rgb := d.Color.RGB()
	m := &gltf.Material{
		Name: d.Kind.String(),
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{float64(rgb[0]), float64(rgb[1]), float64(rgb[2]), float64(d.Opacity)},
			MetallicFactor:  gltf.Float(float64(d.Metalness)),
			RoughnessFactor: gltf.Float(float64(d.Roughness)),
		},
		DoubleSided: d.Side != material.FrontSide,
	}
	if d.Transparent {
		m.AlphaMode = gltf.AlphaBlend
	}
	return m
}

// WriteGLTF writes s to path. A .glb extension selects the binary container;
// anything else writes JSON with embedded buffers.
func WriteGLTF(path string, s *scene.Scene) error {
	doc := Document(s)

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}

	if strings.EqualFold(filepath.Ext(path), ".glb") {
		if err := gltf.SaveBinary(doc, path); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return nil
	}
	for _, b := range doc.Buffers {
		b.EmbeddedResource()
	}
	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func vec3s(vs []mgl32.Vec3) [][3]float32 {
	out := make([][3]float32, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

func vec2s(vs []mgl32.Vec2) [][2]float32 {
	out := make([][2]float32, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

func vec3d(v mgl32.Vec3) [3]float64 {
	return [3]float64{float64(v.X()), float64(v.Y()), float64(v.Z())}
}
