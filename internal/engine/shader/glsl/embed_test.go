package glsl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreamble(t *testing.T) {
	pre := Preamble([]string{"KIND_TOON", "USE_MAP"})
	assert.Equal(t, "#version 410 core\n#define KIND_TOON\n#define USE_MAP\n", pre)
}

func TestSourcesStartWithVersion(t *testing.T) {
	vert, frag := Sources([]string{"KIND_STANDARD"})
	assert.True(t, strings.HasPrefix(vert, Version+"\n"))
	assert.True(t, strings.HasPrefix(frag, Version+"\n"))
	assert.Contains(t, vert, "void main()")
	assert.Contains(t, frag, "FragColor")
}

func TestEmbeddedSourcesHaveNoVersion(t *testing.T) {
	// the version line must come first, so it is only added by Preamble
	assert.NotContains(t, MeshVertexShader, "#version")
	assert.NotContains(t, MeshFragmentShader, "#version")
}

func TestEverySamplerDeclared(t *testing.T) {
	all := MeshVertexShader + MeshFragmentShader
	for name := range Samplers {
		assert.Contains(t, all, name)
	}
}

func TestKindBranchesPresent(t *testing.T) {
	for _, kind := range []string{"NORMAL", "DEPTH", "MATCAP", "BASIC", "STANDARD", "PHYSICAL", "PHONG", "TOON"} {
		assert.Contains(t, MeshFragmentShader, "KIND_"+kind)
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "A|B", Key([]string{"A", "B"}))
	assert.NotEqual(t, Key([]string{"AB"}), Key([]string{"A", "B"}))
}
