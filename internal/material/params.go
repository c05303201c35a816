package material

// Params is the panel's configuration record. It always reflects the last
// value chosen for each control, whether or not the current kind uses it.
type Params struct {
	Kind               Kind    `yaml:"material"`
	Wireframe          bool    `yaml:"wireframe"`
	FlatShading        bool    `yaml:"flat_shading"`
	Side               Side    `yaml:"side"`
	Opacity            float32 `yaml:"opacity"`
	Color              Color   `yaml:"color"`
	Specular           Color   `yaml:"specular"`
	Shininess          float32 `yaml:"shininess"`
	Map                bool    `yaml:"map"`
	AlphaMap           bool    `yaml:"alpha_map"`
	AOMap              bool    `yaml:"ao_map"`
	AOMapIntensity     float32 `yaml:"ao_map_intensity"`
	DisplacementMap    bool    `yaml:"displacement_map"`
	DisplacementScale  float32 `yaml:"displacement_scale"`
	Metalness          float32 `yaml:"metalness"`
	MetalnessMap       bool    `yaml:"metalness_map"`
	Roughness          float32 `yaml:"roughness"`
	RoughnessMap       bool    `yaml:"roughness_map"`
	NormalMap          bool    `yaml:"normal_map"`
	NormalScale        float32 `yaml:"normal_scale"`
	Clearcoat          float32 `yaml:"clearcoat"`
	ClearcoatRoughness float32 `yaml:"clearcoat_roughness"`
	GradientMap        bool    `yaml:"gradient_map"`
}

// DefaultParams returns the panel's startup values.
func DefaultParams() Params {
	return Params{
		Kind:               KindStandard,
		Side:               DoubleSide,
		Opacity:            1,
		Color:              White,
		Specular:           0x111111,
		Shininess:          30,
		AOMapIntensity:     1,
		DisplacementScale:  0,
		Metalness:          0.5,
		Roughness:          0.5,
		NormalScale:        0.5,
		Clearcoat:          0,
		ClearcoatRoughness: 0,
	}
}

// FloatField returns the record field backing a numeric property, or nil.
func (p *Params) FloatField(prop Property) *float32 {
	switch prop {
	case PropOpacity:
		return &p.Opacity
	case PropShininess:
		return &p.Shininess
	case PropAOMapIntensity:
		return &p.AOMapIntensity
	case PropDisplacementScale:
		return &p.DisplacementScale
	case PropMetalness:
		return &p.Metalness
	case PropRoughness:
		return &p.Roughness
	case PropNormalScale:
		return &p.NormalScale
	case PropClearcoat:
		return &p.Clearcoat
	case PropClearcoatRoughness:
		return &p.ClearcoatRoughness
	}
	return nil
}

// FlagField returns the record field backing a boolean property or map
// toggle, or nil. Matcap and env map have no toggle; they are always attached.
func (p *Params) FlagField(prop Property) *bool {
	switch prop {
	case PropWireframe:
		return &p.Wireframe
	case PropFlatShading:
		return &p.FlatShading
	case PropMap:
		return &p.Map
	case PropAlphaMap:
		return &p.AlphaMap
	case PropAOMap:
		return &p.AOMap
	case PropDisplacementMap:
		return &p.DisplacementMap
	case PropMetalnessMap:
		return &p.MetalnessMap
	case PropRoughnessMap:
		return &p.RoughnessMap
	case PropNormalMap:
		return &p.NormalMap
	case PropGradientMap:
		return &p.GradientMap
	}
	return nil
}

// ColorField returns the record field backing a colour property, or nil.
func (p *Params) ColorField(prop Property) *Color {
	switch prop {
	case PropColor:
		return &p.Color
	case PropSpecular:
		return &p.Specular
	}
	return nil
}

// Nudge adds delta to a numeric property, clamped to its range. It reports
// false for non-numeric properties.
func (p *Params) Nudge(prop Property, delta float32) bool {
	f := p.FloatField(prop)
	r, ok := RangeOf(prop)
	if f == nil || !ok {
		return false
	}
	*f = r.Clamp(*f + delta)
	return true
}

// Toggle flips a boolean property. It reports false when prop has no toggle.
func (p *Params) Toggle(prop Property) bool {
	f := p.FlagField(prop)
	if f == nil {
		return false
	}
	*f = !*f
	return true
}

// Clamp pulls every numeric field into its range and repairs invalid enums.
func (p *Params) Clamp() {
	for prop := range ranges {
		if f := p.FloatField(prop); f != nil {
			*f = ranges[prop].Clamp(*f)
		}
	}
	if !p.Kind.Valid() {
		p.Kind = KindStandard
	}
	if p.Side < FrontSide || p.Side > DoubleSide {
		p.Side = DoubleSide
	}
	p.Color &= 0xffffff
	p.Specular &= 0xffffff
}
