// Package glsl provides the embedded mesh shader sources and assembles
// per-variant sources from a define set.
package glsl

import (
	_ "embed"
	"strings"
)

// Version is the GLSL version line for an OpenGL 4.1 core context.
const Version = "#version 410 core"

// MeshVertexShader is the vertex stage shared by every material kind.
//
//go:embed mesh.vert
var MeshVertexShader string

// MeshFragmentShader is the fragment stage; kind and feature defines select
// the shading path.
//
//go:embed mesh.frag
var MeshFragmentShader string

// Texture units, shared by the sampler uniforms and the renderer's binds.
const (
	UnitMap = iota
	UnitAlphaMap
	UnitAOMap
	UnitDisplacementMap
	UnitNormalMap
	UnitMetalnessMap
	UnitRoughnessMap
	UnitGradientMap
	UnitMatcap
	UnitEnvMap
)

// Samplers maps each sampler uniform to its texture unit.
var Samplers = map[string]int32{
	"uMap":             UnitMap,
	"uAlphaMap":        UnitAlphaMap,
	"uAOMap":           UnitAOMap,
	"uDisplacementMap": UnitDisplacementMap,
	"uNormalMap":       UnitNormalMap,
	"uMetalnessMap":    UnitMetalnessMap,
	"uRoughnessMap":    UnitRoughnessMap,
	"uGradientMap":     UnitGradientMap,
	"uMatcap":          UnitMatcap,
	"uEnvMap":          UnitEnvMap,
}

// Key joins defines into a cache key.
func Key(defines []string) string {
	return strings.Join(defines, "|")
}

// Preamble returns the version line followed by one #define per symbol.
func Preamble(defines []string) string {
	var b strings.Builder
	b.WriteString(Version)
	b.WriteByte('\n')
	for _, d := range defines {
		b.WriteString("#define ")
		b.WriteString(d)
		b.WriteByte('\n')
	}
	return b.String()
}

// Sources returns the vertex and fragment sources for a define set.
func Sources(defines []string) (vertex, fragment string) {
	pre := Preamble(defines)
	return pre + MeshVertexShader, pre + MeshFragmentShader
}
