package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/matview/internal/material"
)

// KeyResult tells the front end what a key press did.
type KeyResult int

const (
	KeyIgnored KeyResult = iota
	KeyHandled
	KeyQuit
)

// DefaultPresetPath is used by the save shortcut before any preset was
// loaded or saved.
const DefaultPresetPath = "matview-preset.yaml"

// Parameter step per key press; shift multiplies it by four.
const nudgeStep = 0.05

var toggleKeys = map[string]material.Property{
	"W": material.PropWireframe,
	"F": material.PropFlatShading,
	"M": material.PropMap,
	"A": material.PropAlphaMap,
	"O": material.PropAOMap,
	"H": material.PropDisplacementMap,
	"N": material.PropNormalMap,
	"G": material.PropGradientMap,
}

var nudgeKeys = map[string]struct {
	prop material.Property
	sign float32
}{
	"Up":    {material.PropMetalness, 1},
	"Down":  {material.PropMetalness, -1},
	"Right": {material.PropRoughness, 1},
	"Left":  {material.PropRoughness, -1},
	"]":     {material.PropOpacity, 1},
	"[":     {material.PropOpacity, -1},
}

// HandleKey runs the shortcut bound to a key name (SDL key names: "1",
// "W", "F12", "Escape", "Up"). Keys 1-9 pick the material kind in selector
// order. Auto-repeat only drives the nudge keys; repeats of any other key
// are ignored.
func (v *Viewer) HandleKey(key string, shift, repeat bool) KeyResult {
	if _, nudge := nudgeKeys[key]; repeat && !nudge {
		return KeyIgnored
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		kinds := material.Kinds()
		if i := int(key[0] - '1'); i < len(kinds) {
			v.SetKind(kinds[i])
			return KeyHandled
		}
		return KeyIgnored
	}
	if prop, ok := toggleKeys[key]; ok {
		v.Toggle(prop)
		return KeyHandled
	}
	if n, ok := nudgeKeys[key]; ok {
		step := float32(nudgeStep)
		if shift {
			step *= 4
		}
		v.Nudge(n.prop, n.sign*step)
		return KeyHandled
	}

	switch key {
	case "S":
		v.params.Side = (v.params.Side + 1) % 3
		v.Apply(material.PropSide)
	case "R":
		v.ResetCamera()
	case "F12":
		if _, err := v.Screenshot(); err != nil {
			v.log.Error("screenshot failed", zap.Error(err))
		}
	case "P":
		if err := v.SavePreset(v.presetOrDefault()); err != nil {
			v.log.Error("saving preset failed", zap.Error(err))
		}
	case "L":
		if err := v.LoadPreset(v.presetOrDefault()); err != nil {
			v.log.Error("loading preset failed", zap.Error(err))
		}
	case "X":
		if _, err := v.Export(""); err != nil {
			v.log.Error("export failed", zap.Error(err))
		}
	case "Escape":
		return KeyQuit
	default:
		return KeyIgnored
	}
	return KeyHandled
}

func (v *Viewer) presetOrDefault() string {
	if v.presetPath != "" {
		return v.presetPath
	}
	return DefaultPresetPath
}
