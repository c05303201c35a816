package material

import (
	"fmt"
	"math/bits"
)

// Property names one tunable aspect of a material.
type Property int

const (
	PropColor Property = iota
	PropSpecular
	PropShininess
	PropWireframe
	PropFlatShading
	PropMap
	PropAlphaMap
	PropAOMap
	PropAOMapIntensity
	PropDisplacementMap
	PropDisplacementScale
	PropMetalness
	PropMetalnessMap
	PropRoughness
	PropRoughnessMap
	PropNormalMap
	PropNormalScale
	PropClearcoat
	PropClearcoatRoughness
	PropGradientMap
	PropMatcap
	PropEnvMap
	PropOpacity
	PropSide
	numProperties
)

var propertyNames = [numProperties]string{
	PropColor:              "color",
	PropSpecular:           "specular",
	PropShininess:          "shininess",
	PropWireframe:          "wireframe",
	PropFlatShading:        "flatShading",
	PropMap:                "map",
	PropAlphaMap:           "alphaMap",
	PropAOMap:              "aoMap",
	PropAOMapIntensity:     "aoMapIntensity",
	PropDisplacementMap:    "displacementMap",
	PropDisplacementScale:  "displacementScale",
	PropMetalness:          "metalness",
	PropMetalnessMap:       "metalnessMap",
	PropRoughness:          "roughness",
	PropRoughnessMap:       "roughnessMap",
	PropNormalMap:          "normalMap",
	PropNormalScale:        "normalScale",
	PropClearcoat:          "clearcoat",
	PropClearcoatRoughness: "clearcoatRoughness",
	PropGradientMap:        "gradientMap",
	PropMatcap:             "matcap",
	PropEnvMap:             "envMap",
	PropOpacity:            "opacity",
	PropSide:               "side",
}

func (p Property) String() string {
	if p < 0 || p >= numProperties {
		return fmt.Sprintf("Property(%d)", int(p))
	}
	return propertyNames[p]
}

// PropertySet is a bit set of properties.
type PropertySet uint32

// Props builds a set from its members.
func Props(props ...Property) PropertySet {
	var s PropertySet
	for _, p := range props {
		s |= 1 << uint(p)
	}
	return s
}

// Has reports whether p is in the set.
func (s PropertySet) Has(p Property) bool {
	return p >= 0 && p < numProperties && s&(1<<uint(p)) != 0
}

// Len returns the number of members.
func (s PropertySet) Len() int { return bits.OnesCount32(uint32(s)) }

// Properties lists the members in declaration order.
func (s PropertySet) Properties() []Property {
	out := make([]Property, 0, s.Len())
	for p := Property(0); p < numProperties; p++ {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

var common = Props(PropOpacity, PropSide)

var standardProps = Props(
	PropColor, PropMap, PropAlphaMap, PropAOMap, PropAOMapIntensity,
	PropDisplacementMap, PropDisplacementScale, PropNormalMap, PropNormalScale,
	PropMetalness, PropMetalnessMap, PropRoughness, PropRoughnessMap,
	PropEnvMap, PropWireframe, PropFlatShading,
)

// capabilities is the single source of truth for which controls a kind shows
// and which properties the binder may write.
var capabilities = [numKinds]PropertySet{
	KindBasic: common | Props(
		PropColor, PropMap, PropAlphaMap, PropAOMap, PropAOMapIntensity,
		PropEnvMap, PropWireframe,
	),
	KindNormal: common | Props(
		PropWireframe, PropFlatShading, PropDisplacementMap, PropDisplacementScale,
		PropNormalMap, PropNormalScale,
	),
	KindMatcap: common | Props(
		PropColor, PropMatcap, PropMap, PropAlphaMap, PropDisplacementMap,
		PropDisplacementScale, PropNormalMap, PropNormalScale, PropFlatShading,
	),
	KindDepth: common | Props(
		PropMap, PropAlphaMap, PropDisplacementMap, PropDisplacementScale, PropWireframe,
	),
	KindLambert: common | Props(
		PropColor, PropMap, PropAlphaMap, PropAOMap, PropAOMapIntensity, PropEnvMap,
		PropWireframe, PropNormalMap, PropNormalScale, PropDisplacementMap,
		PropDisplacementScale, PropFlatShading,
	),
	KindPhong: common | Props(
		PropColor, PropSpecular, PropShininess, PropMap, PropAlphaMap, PropAOMap,
		PropAOMapIntensity, PropDisplacementMap, PropDisplacementScale, PropNormalMap,
		PropNormalScale, PropEnvMap, PropWireframe, PropFlatShading,
	),
	KindToon: common | Props(
		PropColor, PropGradientMap, PropMap, PropAlphaMap, PropAOMap, PropAOMapIntensity,
		PropDisplacementMap, PropDisplacementScale, PropNormalMap, PropNormalScale,
		PropWireframe,
	),
	KindStandard: common | standardProps,
	KindPhysical: common | standardProps | Props(PropClearcoat, PropClearcoatRoughness),
}

// Capabilities returns the properties kind supports.
func Capabilities(kind Kind) PropertySet {
	if !kind.Valid() {
		return 0
	}
	return capabilities[kind]
}

// Supports reports whether kind exposes prop.
func Supports(kind Kind, prop Property) bool {
	return Capabilities(kind).Has(prop)
}

// Range is the inclusive slider range of a numeric property.
type Range struct {
	Min, Max float32
}

// Clamp limits v to the range.
func (r Range) Clamp(v float32) float32 { return clamp(v, r.Min, r.Max) }

var ranges = map[Property]Range{
	PropShininess:          {0, 100},
	PropOpacity:            {0, 1},
	PropAOMapIntensity:     {0, 1},
	PropDisplacementScale:  {0, 1},
	PropMetalness:          {0, 1},
	PropRoughness:          {0, 1},
	PropNormalScale:        {0, 1},
	PropClearcoat:          {0, 1},
	PropClearcoatRoughness: {0, 1},
}

// RangeOf returns the slider range of a numeric property.
func RangeOf(p Property) (Range, bool) {
	r, ok := ranges[p]
	return r, ok
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
