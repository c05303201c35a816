package material

// Widget is the kind of panel control a property uses.
type Widget int

const (
	WidgetSlider Widget = iota
	WidgetCheckbox
	WidgetColor
	WidgetSide
)

// Control describes one panel row.
type Control struct {
	Prop   Property
	Label  string
	Widget Widget
	Range  Range
}

// panelOrder is the top-to-bottom order of the panel rows.
var panelOrder = []Control{
	{Prop: PropMetalness, Label: "metalness", Widget: WidgetSlider},
	{Prop: PropRoughness, Label: "roughness", Widget: WidgetSlider},
	{Prop: PropColor, Label: "color", Widget: WidgetColor},
	{Prop: PropSpecular, Label: "specular", Widget: WidgetColor},
	{Prop: PropShininess, Label: "shininess", Widget: WidgetSlider},
	{Prop: PropWireframe, Label: "wireframe", Widget: WidgetCheckbox},
	{Prop: PropFlatShading, Label: "flat shading", Widget: WidgetCheckbox},
	{Prop: PropAOMap, Label: "ao map", Widget: WidgetCheckbox},
	{Prop: PropAOMapIntensity, Label: "ao map intensity", Widget: WidgetSlider},
	{Prop: PropDisplacementMap, Label: "displacement map", Widget: WidgetCheckbox},
	{Prop: PropDisplacementScale, Label: "displacement scale", Widget: WidgetSlider},
	{Prop: PropMetalnessMap, Label: "metalness map", Widget: WidgetCheckbox},
	{Prop: PropRoughnessMap, Label: "roughness map", Widget: WidgetCheckbox},
	{Prop: PropNormalMap, Label: "normal map", Widget: WidgetCheckbox},
	{Prop: PropNormalScale, Label: "normal scale", Widget: WidgetSlider},
	{Prop: PropClearcoat, Label: "clearcoat", Widget: WidgetSlider},
	{Prop: PropClearcoatRoughness, Label: "clearcoat roughness", Widget: WidgetSlider},
	{Prop: PropAlphaMap, Label: "alpha map", Widget: WidgetCheckbox},
	{Prop: PropMap, Label: "map", Widget: WidgetCheckbox},
	{Prop: PropGradientMap, Label: "gradient map", Widget: WidgetCheckbox},
	{Prop: PropOpacity, Label: "opacity", Widget: WidgetSlider},
	{Prop: PropSide, Label: "side", Widget: WidgetSide},
}

// Controls returns the panel rows visible for kind, in panel order. Matcap
// and env map are attached automatically and have no row.
func Controls(kind Kind) []Control {
	caps := Capabilities(kind)
	out := make([]Control, 0, len(panelOrder))
	for _, c := range panelOrder {
		if !caps.Has(c.Prop) {
			continue
		}
		if r, ok := RangeOf(c.Prop); ok {
			c.Range = r
		}
		out = append(out, c)
	}
	return out
}

// Controllable is the set of properties that have a panel row.
func Controllable() PropertySet {
	var s PropertySet
	for _, c := range panelOrder {
		s |= Props(c.Prop)
	}
	return s
}
