package renderer

import (
	"image"
	"math/bits"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/matview/internal/engine/texture"
)

// gpuTexture is an uploaded 2D texture or cube map.
type gpuTexture struct {
	id     uint32
	cube   bool
	maxLod float32
}

func uploadTexture(t *texture.Texture) *gpuTexture {
	if t.Cube {
		return uploadCube(t)
	}

	tex := &gpuTexture{}
	gl.GenTextures(1, &tex.id)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	texImage(gl.TEXTURE_2D, t.Image)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	if t.Nearest {
		// Toon gradients must stay banded.
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	} else {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

func uploadCube(t *texture.Texture) *gpuTexture {
	tex := &gpuTexture{cube: true}
	gl.GenTextures(1, &tex.id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, tex.id)
	for i, face := range t.Faces {
		texImage(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), face)
	}
	gl.GenerateMipmap(gl.TEXTURE_CUBE_MAP)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	w, _ := t.Size()
	tex.maxLod = float32(mipLevels(w) - 1)
	return tex
}

func texImage(target uint32, img *image.RGBA) {
	w, h := int32(img.Bounds().Dx()), int32(img.Bounds().Dy())
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(target, 0, gl.RGBA8, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
}

// mipLevels returns the length of the full mip chain for a size.
func mipLevels(size int) int {
	if size <= 0 {
		return 1
	}
	return bits.Len(uint(size))
}

func (t *gpuTexture) bind(unit int32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	if t.cube {
		gl.BindTexture(gl.TEXTURE_CUBE_MAP, t.id)
	} else {
		gl.BindTexture(gl.TEXTURE_2D, t.id)
	}
}

func (t *gpuTexture) destroy() {
	gl.DeleteTextures(1, &t.id)
}
