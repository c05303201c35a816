package material

import "github.com/Faultbox/matview/internal/engine/texture"

// Material is the shared surface description. The set of implementations is
// closed: Basic, Normal, Matcap, Depth, Lambert, Phong, Toon, Standard and
// Physical.
type Material interface {
	Kind() Kind
	// Common returns the fields every variant carries.
	Common() *Base
	bindings() bindings
}

// Base holds the fields shared by all variants.
type Base struct {
	Side        Side
	Opacity     float32
	Transparent bool
	version     uint64
}

// Version increases every time the material is modified. Renderers compare
// it against the last value they saw to decide whether to rebuild state.
func (b *Base) Version() uint64 { return b.version }

func (b *Base) touch() { b.version++ }

func newBase() Base { return Base{Side: FrontSide, Opacity: 1} }

// Common implements Material.
func (b *Base) Common() *Base { return b }

// bindings addresses a variant's own fields by property.
type bindings struct {
	colors  map[Property]*Color
	scalars map[Property]*float32
	flags   map[Property]*bool
	maps    map[Property]**texture.Texture
}

// supported lists the properties the variant can store, plus the common ones.
func (b bindings) supported() PropertySet {
	s := common
	for p := range b.colors {
		s |= Props(p)
	}
	for p := range b.scalars {
		s |= Props(p)
	}
	for p := range b.flags {
		s |= Props(p)
	}
	for p := range b.maps {
		s |= Props(p)
	}
	return s
}

// Basic is unlit.
type Basic struct {
	Base
	Color          Color
	Map            *texture.Texture
	AlphaMap       *texture.Texture
	AOMap          *texture.Texture
	AOMapIntensity float32
	EnvMap         *texture.Texture
	Wireframe      bool
}

func (*Basic) Kind() Kind { return KindBasic }

func (m *Basic) bindings() bindings {
	return bindings{
		colors:  map[Property]*Color{PropColor: &m.Color},
		scalars: map[Property]*float32{PropAOMapIntensity: &m.AOMapIntensity},
		flags:   map[Property]*bool{PropWireframe: &m.Wireframe},
		maps: map[Property]**texture.Texture{
			PropMap: &m.Map, PropAlphaMap: &m.AlphaMap, PropAOMap: &m.AOMap, PropEnvMap: &m.EnvMap,
		},
	}
}

// Normal colours surfaces by their view-space normal.
type Normal struct {
	Base
	Wireframe         bool
	FlatShading       bool
	DisplacementMap   *texture.Texture
	DisplacementScale float32
	NormalMap         *texture.Texture
	NormalScale       float32
}

func (*Normal) Kind() Kind { return KindNormal }

func (m *Normal) bindings() bindings {
	return bindings{
		scalars: map[Property]*float32{
			PropDisplacementScale: &m.DisplacementScale, PropNormalScale: &m.NormalScale,
		},
		flags: map[Property]*bool{PropWireframe: &m.Wireframe, PropFlatShading: &m.FlatShading},
		maps: map[Property]**texture.Texture{
			PropDisplacementMap: &m.DisplacementMap, PropNormalMap: &m.NormalMap,
		},
	}
}

// Matcap shades from a captured-material sphere image.
type Matcap struct {
	Base
	Color             Color
	Matcap            *texture.Texture
	Map               *texture.Texture
	AlphaMap          *texture.Texture
	DisplacementMap   *texture.Texture
	DisplacementScale float32
	NormalMap         *texture.Texture
	NormalScale       float32
	FlatShading       bool
}

func (*Matcap) Kind() Kind { return KindMatcap }

func (m *Matcap) bindings() bindings {
	return bindings{
		colors: map[Property]*Color{PropColor: &m.Color},
		scalars: map[Property]*float32{
			PropDisplacementScale: &m.DisplacementScale, PropNormalScale: &m.NormalScale,
		},
		flags: map[Property]*bool{PropFlatShading: &m.FlatShading},
		maps: map[Property]**texture.Texture{
			PropMatcap: &m.Matcap, PropMap: &m.Map, PropAlphaMap: &m.AlphaMap,
			PropDisplacementMap: &m.DisplacementMap, PropNormalMap: &m.NormalMap,
		},
	}
}

// Depth renders camera distance as grey levels.
type Depth struct {
	Base
	Map               *texture.Texture
	AlphaMap          *texture.Texture
	DisplacementMap   *texture.Texture
	DisplacementScale float32
	Wireframe         bool
}

func (*Depth) Kind() Kind { return KindDepth }

func (m *Depth) bindings() bindings {
	return bindings{
		scalars: map[Property]*float32{PropDisplacementScale: &m.DisplacementScale},
		flags:   map[Property]*bool{PropWireframe: &m.Wireframe},
		maps: map[Property]**texture.Texture{
			PropMap: &m.Map, PropAlphaMap: &m.AlphaMap, PropDisplacementMap: &m.DisplacementMap,
		},
	}
}

// Lambert is diffuse-only lighting.
type Lambert struct {
	Base
	Color             Color
	Map               *texture.Texture
	AlphaMap          *texture.Texture
	AOMap             *texture.Texture
	AOMapIntensity    float32
	EnvMap            *texture.Texture
	NormalMap         *texture.Texture
	NormalScale       float32
	DisplacementMap   *texture.Texture
	DisplacementScale float32
	Wireframe         bool
	FlatShading       bool
}

func (*Lambert) Kind() Kind { return KindLambert }

func (m *Lambert) bindings() bindings {
	return bindings{
		colors: map[Property]*Color{PropColor: &m.Color},
		scalars: map[Property]*float32{
			PropAOMapIntensity: &m.AOMapIntensity, PropNormalScale: &m.NormalScale,
			PropDisplacementScale: &m.DisplacementScale,
		},
		flags: map[Property]*bool{PropWireframe: &m.Wireframe, PropFlatShading: &m.FlatShading},
		maps: map[Property]**texture.Texture{
			PropMap: &m.Map, PropAlphaMap: &m.AlphaMap, PropAOMap: &m.AOMap, PropEnvMap: &m.EnvMap,
			PropNormalMap: &m.NormalMap, PropDisplacementMap: &m.DisplacementMap,
		},
	}
}

// Phong adds a Blinn-Phong specular highlight to Lambert.
type Phong struct {
	Lambert
	Specular  Color
	Shininess float32
}

func (*Phong) Kind() Kind { return KindPhong }

func (m *Phong) bindings() bindings {
	b := m.Lambert.bindings()
	b.colors[PropSpecular] = &m.Specular
	b.scalars[PropShininess] = &m.Shininess
	return b
}

// Toon quantizes diffuse lighting through a gradient ramp.
type Toon struct {
	Base
	Color             Color
	GradientMap       *texture.Texture
	Map               *texture.Texture
	AlphaMap          *texture.Texture
	AOMap             *texture.Texture
	AOMapIntensity    float32
	DisplacementMap   *texture.Texture
	DisplacementScale float32
	NormalMap         *texture.Texture
	NormalScale       float32
	Wireframe         bool
}

func (*Toon) Kind() Kind { return KindToon }

func (m *Toon) bindings() bindings {
	return bindings{
		colors: map[Property]*Color{PropColor: &m.Color},
		scalars: map[Property]*float32{
			PropAOMapIntensity: &m.AOMapIntensity, PropDisplacementScale: &m.DisplacementScale,
			PropNormalScale: &m.NormalScale,
		},
		flags: map[Property]*bool{PropWireframe: &m.Wireframe},
		maps: map[Property]**texture.Texture{
			PropGradientMap: &m.GradientMap, PropMap: &m.Map, PropAlphaMap: &m.AlphaMap,
			PropAOMap: &m.AOMap, PropDisplacementMap: &m.DisplacementMap, PropNormalMap: &m.NormalMap,
		},
	}
}

// Standard is metallic-roughness PBR.
type Standard struct {
	Base
	Color             Color
	Map               *texture.Texture
	AlphaMap          *texture.Texture
	AOMap             *texture.Texture
	AOMapIntensity    float32
	DisplacementMap   *texture.Texture
	DisplacementScale float32
	NormalMap         *texture.Texture
	NormalScale       float32
	Metalness         float32
	MetalnessMap      *texture.Texture
	Roughness         float32
	RoughnessMap      *texture.Texture
	EnvMap            *texture.Texture
	Wireframe         bool
	FlatShading       bool
}

func (*Standard) Kind() Kind { return KindStandard }

func (m *Standard) bindings() bindings {
	return bindings{
		colors: map[Property]*Color{PropColor: &m.Color},
		scalars: map[Property]*float32{
			PropAOMapIntensity: &m.AOMapIntensity, PropDisplacementScale: &m.DisplacementScale,
			PropNormalScale: &m.NormalScale, PropMetalness: &m.Metalness, PropRoughness: &m.Roughness,
		},
		flags: map[Property]*bool{PropWireframe: &m.Wireframe, PropFlatShading: &m.FlatShading},
		maps: map[Property]**texture.Texture{
			PropMap: &m.Map, PropAlphaMap: &m.AlphaMap, PropAOMap: &m.AOMap,
			PropDisplacementMap: &m.DisplacementMap, PropNormalMap: &m.NormalMap,
			PropMetalnessMap: &m.MetalnessMap, PropRoughnessMap: &m.RoughnessMap, PropEnvMap: &m.EnvMap,
		},
	}
}

// Physical extends Standard with a clearcoat layer.
type Physical struct {
	Standard
	Clearcoat          float32
	ClearcoatRoughness float32
}

func (*Physical) Kind() Kind { return KindPhysical }

func (m *Physical) bindings() bindings {
	b := m.Standard.bindings()
	b.scalars[PropClearcoat] = &m.Clearcoat
	b.scalars[PropClearcoatRoughness] = &m.ClearcoatRoughness
	return b
}

// New returns a variant of kind with renderer defaults and no maps attached.
func New(kind Kind) Material {
	switch kind {
	case KindBasic:
		return &Basic{Base: newBase(), Color: White, AOMapIntensity: 1}
	case KindNormal:
		return &Normal{Base: newBase(), DisplacementScale: 1, NormalScale: 1}
	case KindMatcap:
		return &Matcap{Base: newBase(), Color: White, DisplacementScale: 1, NormalScale: 1}
	case KindDepth:
		return &Depth{Base: newBase(), DisplacementScale: 1}
	case KindLambert:
		return &Lambert{Base: newBase(), Color: White, AOMapIntensity: 1, DisplacementScale: 1, NormalScale: 1}
	case KindPhong:
		return &Phong{
			Lambert:   Lambert{Base: newBase(), Color: White, AOMapIntensity: 1, DisplacementScale: 1, NormalScale: 1},
			Specular:  0x111111,
			Shininess: 30,
		}
	case KindToon:
		return &Toon{Base: newBase(), Color: White, AOMapIntensity: 1, DisplacementScale: 1, NormalScale: 1}
	case KindPhysical:
		return &Physical{Standard: *newStandard()}
	default:
		return newStandard()
	}
}

func newStandard() *Standard {
	return &Standard{
		Base:              newBase(),
		Color:             White,
		AOMapIntensity:    1,
		DisplacementScale: 1,
		NormalScale:       1,
		Metalness:         0,
		Roughness:         1,
	}
}
