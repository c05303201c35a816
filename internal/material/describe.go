package material

import (
	"sort"
	"strings"

	"github.com/Faultbox/matview/internal/engine/texture"
)

// Description is a flat, read-only snapshot of a material. Fields the kind
// does not support hold neutral values (white, zero, no map).
type Description struct {
	Kind        Kind
	Side        Side
	Opacity     float32
	Transparent bool
	Version     uint64

	Color              Color
	Specular           Color
	Shininess          float32
	AOMapIntensity     float32
	DisplacementScale  float32
	NormalScale        float32
	Metalness          float32
	Roughness          float32
	Clearcoat          float32
	ClearcoatRoughness float32
	Wireframe          bool
	FlatShading        bool

	Maps map[Property]*texture.Texture
}

// Describe snapshots m.
func Describe(m Material) Description {
	base := m.Common()
	bd := m.bindings()

	d := Description{
		Kind:        m.Kind(),
		Side:        base.Side,
		Opacity:     base.Opacity,
		Transparent: base.Transparent,
		Version:     base.Version(),
		Color:       White,
		Roughness:   1,
		Maps:        make(map[Property]*texture.Texture),
	}
	if c := bd.colors[PropColor]; c != nil {
		d.Color = *c
	}
	if c := bd.colors[PropSpecular]; c != nil {
		d.Specular = *c
	}
	scalars := map[Property]*float32{
		PropShininess:          &d.Shininess,
		PropAOMapIntensity:     &d.AOMapIntensity,
		PropDisplacementScale:  &d.DisplacementScale,
		PropNormalScale:        &d.NormalScale,
		PropMetalness:          &d.Metalness,
		PropRoughness:          &d.Roughness,
		PropClearcoat:          &d.Clearcoat,
		PropClearcoatRoughness: &d.ClearcoatRoughness,
	}
	for p, dst := range scalars {
		if src := bd.scalars[p]; src != nil {
			*dst = *src
		}
	}
	if f := bd.flags[PropWireframe]; f != nil {
		d.Wireframe = *f
	}
	if f := bd.flags[PropFlatShading]; f != nil {
		d.FlatShading = *f
	}
	for p, slot := range bd.maps {
		if *slot != nil {
			d.Maps[p] = *slot
		}
	}
	return d
}

// Map returns the texture bound to a map property, or nil.
func (d Description) Map(p Property) *texture.Texture { return d.Maps[p] }

var mapDefines = map[Property]string{
	PropMap:             "USE_MAP",
	PropAlphaMap:        "USE_ALPHAMAP",
	PropAOMap:           "USE_AOMAP",
	PropDisplacementMap: "USE_DISPLACEMENTMAP",
	PropNormalMap:       "USE_NORMALMAP",
	PropMetalnessMap:    "USE_METALNESSMAP",
	PropRoughnessMap:    "USE_ROUGHNESSMAP",
	PropGradientMap:     "USE_GRADIENTMAP",
	PropMatcap:          "USE_MATCAP",
	PropEnvMap:          "USE_ENVMAP",
}

// Defines returns the sorted preprocessor symbols selecting the shader
// variant for d. Two descriptions with equal defines share a program.
func (d Description) Defines() []string {
	defs := []string{"KIND_" + strings.ToUpper(d.Kind.String())}
	for p, def := range mapDefines {
		if d.Maps[p] != nil {
			defs = append(defs, def)
		}
	}
	if d.FlatShading {
		defs = append(defs, "FLAT_SHADED")
	}
	switch d.Side {
	case DoubleSide:
		defs = append(defs, "DOUBLE_SIDED")
	case BackSide:
		defs = append(defs, "BACK_SIDED")
	}
	sort.Strings(defs)
	return defs
}


// Snapshot holds the Description and defines of one material until the
// material is replaced or modified.
type Snapshot struct {
	mat     Material
	version uint64
	desc    Description
	defines []string
}

// Refresh rebuilds the snapshot when m is a different material or its
// version moved since the last call. It reports whether it rebuilt.
func (s *Snapshot) Refresh(m Material) bool {
	if m == nil {
		changed := s.mat != nil
		*s = Snapshot{}
		return changed
	}
	if s.mat == m && s.version == m.Common().Version() {
		return false
	}
	s.mat = m
	s.version = m.Common().Version()
	s.desc = Describe(m)
	s.defines = s.desc.Defines()
	return true
}

// Description returns the cached description.
func (s *Snapshot) Description() Description { return s.desc }

// Defines returns the cached shader defines.
func (s *Snapshot) Defines() []string { return s.defines }
