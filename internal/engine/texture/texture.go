// Package texture decodes the viewer's image assets into CPU-side RGBA
// textures. GPU upload is the renderer's job.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Cube face order, matching GL_TEXTURE_CUBE_MAP_POSITIVE_X onwards.
var CubeFaces = [6]string{"px", "nx", "py", "ny", "pz", "nz"}

// Texture is a decoded 2D image or a six-face cube map.
type Texture struct {
	Name     string
	Image    *image.RGBA    // 2D textures
	Faces    [6]*image.RGBA // cube maps, in CubeFaces order
	Cube     bool
	Nearest  bool // nearest filtering without mipmaps
	Fallback bool // the asset could not be loaded
}

// Size returns the pixel dimensions (of the first face for cube maps).
func (t *Texture) Size() (int, int) {
	img := t.Image
	if t.Cube {
		img = t.Faces[0]
	}
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// Decode reads any registered image format (jpeg, png, bmp) into RGBA.
func Decode(r io.Reader) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return ToRGBA(img), nil
}

// DecodeFile decodes the image at path.
func DecodeFile(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// ToRGBA converts img to a tightly packed *image.RGBA anchored at (0,0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) && rgba.Stride == 4*rgba.Bounds().Dx() {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// Solid returns a 1x1 texture of a single colour.
func Solid(name string, c color.RGBA) *Texture {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, c)
	return &Texture{Name: name, Image: img}
}

// White returns the 1x1 white texture used in place of missing assets.
func White(name string) *Texture {
	t := Solid(name, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	t.Fallback = true
	return t
}

// WhiteCube returns a cube map with six 1x1 white faces.
func WhiteCube(name string) *Texture {
	t := &Texture{Name: name, Cube: true, Fallback: true}
	for i := range t.Faces {
		t.Faces[i] = White(name).Image
	}
	return t
}

func displayName(path string) string {
	return strings.TrimSuffix(filepath.ToSlash(path), filepath.Ext(path))
}
