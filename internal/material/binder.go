package material

import (
	"go.uber.org/zap"

	"github.com/Faultbox/matview/internal/engine/texture"
	"github.com/Faultbox/matview/internal/logger"
)

// Target receives the shared material. Meshes implement it.
type Target interface {
	SetMaterial(Material)
}

// Binder owns the single current material and keeps it in step with Params.
// It is not safe for concurrent use; the frame loop drives it.
type Binder struct {
	params   *Params
	textures *texture.Library
	current  Material
	targets  []Target
	log      *zap.Logger
}

// NewBinder builds the initial material: standard, metalness 0.7, roughness
// 0.2, the side from params and the environment map attached. Other fields
// keep renderer defaults until a control is touched.
func NewBinder(params *Params, textures *texture.Library) *Binder {
	if textures == nil {
		textures = &texture.Library{}
	}
	b := &Binder{
		params:   params,
		textures: textures,
		log:      logger.Named("material"),
	}

	m := newStandard()
	m.Metalness = 0.7
	m.Roughness = 0.2
	m.Side = params.Side
	m.EnvMap = textures.Environment
	b.current = m
	return b
}

// Current returns the shared material.
func (b *Binder) Current() Material { return b.current }

// Params returns the bound configuration record.
func (b *Binder) Params() *Params { return b.params }

// Attach registers targets and hands them the current material.
func (b *Binder) Attach(targets ...Target) {
	for _, t := range targets {
		b.targets = append(b.targets, t)
		t.SetMaterial(b.current)
	}
}

// SetKind replaces the shared material with a new one of kind. Every property
// the kind supports is copied from Params; always-on textures (matcap, env
// map) are attached. All targets receive the new material.
func (b *Binder) SetKind(kind Kind) {
	if !kind.Valid() {
		b.log.Warn("ignoring unknown material kind", zap.Int("kind", int(kind)))
		return
	}
	b.params.Kind = kind

	m := New(kind)
	b.current = m
	for _, prop := range Capabilities(kind).Properties() {
		b.write(prop)
	}
	m.Common().touch()

	for _, t := range b.targets {
		t.SetMaterial(m)
	}
	b.log.Debug("material kind changed",
		zap.Stringer("kind", kind),
		zap.Int("properties", Capabilities(kind).Len()))
}

// Reload rebuilds the material from Params, e.g. after a preset load.
func (b *Binder) Reload() {
	b.SetKind(b.params.Kind)
}

// Apply writes one property from Params into the current material. It does
// nothing and returns false when the current kind does not support prop.
func (b *Binder) Apply(prop Property) bool {
	if !Supports(b.current.Kind(), prop) {
		return false
	}
	if !b.write(prop) {
		return false
	}
	b.current.Common().touch()
	return true
}

func (b *Binder) write(prop Property) bool {
	base := b.current.Common()
	bd := b.current.bindings()

	switch {
	case prop == PropOpacity:
		base.Opacity = ranges[PropOpacity].Clamp(b.params.Opacity)
	case prop == PropSide:
		base.Side = b.params.Side
	case bd.maps[prop] != nil:
		slot := bd.maps[prop]
		if on := b.params.FlagField(prop); on == nil || *on {
			*slot = b.textureFor(prop)
		} else {
			*slot = nil
		}
	case bd.scalars[prop] != nil:
		v := *b.params.FloatField(prop)
		if r, ok := RangeOf(prop); ok {
			v = r.Clamp(v)
		}
		*bd.scalars[prop] = v
	case bd.flags[prop] != nil:
		*bd.flags[prop] = *b.params.FlagField(prop)
	case bd.colors[prop] != nil:
		*bd.colors[prop] = *b.params.ColorField(prop) & 0xffffff
	default:
		return false
	}

	if prop == PropOpacity || prop == PropAlphaMap {
		alpha := bd.maps[PropAlphaMap]
		base.Transparent = base.Opacity < 1 || (alpha != nil && *alpha != nil)
	}
	return true
}

func (b *Binder) textureFor(prop Property) *texture.Texture {
	t := b.textures
	switch prop {
	case PropMap:
		return t.DoorColor
	case PropAlphaMap:
		return t.DoorAlpha
	case PropAOMap:
		return t.DoorAmbientOcclusion
	case PropDisplacementMap:
		return t.DoorHeight
	case PropNormalMap:
		return t.DoorNormal
	case PropMetalnessMap:
		return t.DoorMetalness
	case PropRoughnessMap:
		return t.DoorRoughness
	case PropGradientMap:
		return t.Gradient
	case PropMatcap:
		return t.Matcap
	case PropEnvMap:
		return t.Environment
	}
	return nil
}
