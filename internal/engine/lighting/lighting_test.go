package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	a := DefaultAmbient()
	assert.Equal(t, [3]float32{0.5, 0.5, 0.5}, a.Radiance())

	p := DefaultPoint()
	assert.Equal(t, [3]float32{2, 3, 4}, p.Position)
	assert.Equal(t, [3]float32{0.5, 0.5, 0.5}, p.Radiance())
	assert.Zero(t, p.Range, "no distance falloff by default")
}
