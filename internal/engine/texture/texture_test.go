package texture

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.NRGBA{R: 255, A: 255})
			} else {
				img.Set(x, y, color.NRGBA{B: 255, A: 255})
			}
		}
	}
	return img
}

func writeImage(t *testing.T, root, rel string, img image.Image) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))

	var buf bytes.Buffer
	if filepath.Ext(rel) == ".png" {
		require.NoError(t, png.Encode(&buf, img))
	} else {
		require.NoError(t, jpeg.Encode(&buf, img, nil))
	}
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, checker(4, 2)))

	img, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(1, 0))
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not an image")))
	assert.Error(t, err)
}

func TestToRGBARebasesSubImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	src.SetRGBA(5, 5, color.RGBA{G: 200, A: 255})
	sub := src.SubImage(image.Rect(4, 4, 8, 8))

	rgba := ToRGBA(sub)
	assert.Equal(t, image.Rect(0, 0, 4, 4), rgba.Bounds())
	assert.Equal(t, color.RGBA{G: 200, A: 255}, rgba.RGBAAt(1, 1))
	assert.Len(t, rgba.Pix, 4*4*4)
}

func TestFallbacks(t *testing.T) {
	w := White("missing")
	assert.True(t, w.Fallback)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, w.Image.RGBAAt(0, 0))

	cube := WhiteCube("env")
	assert.True(t, cube.Cube)
	for _, face := range cube.Faces {
		require.NotNil(t, face)
	}
	width, height := cube.Size()
	assert.Equal(t, 1, width)
	assert.Equal(t, 1, height)
}

func TestLoadLibrary(t *testing.T) {
	root := t.TempDir()
	writeImage(t, root, DoorColorPath, checker(8, 8))
	writeImage(t, root, MatcapPath, checker(16, 16))
	writeImage(t, root, GradientPath, checker(5, 1))
	for _, face := range CubeFaces {
		writeImage(t, root, EnvironmentDir+"/"+face+".jpg", checker(4, 4))
	}

	lib, err := Load(context.Background(), root)
	require.NoError(t, err)

	assert.False(t, lib.DoorColor.Fallback)
	w, h := lib.DoorColor.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)

	assert.False(t, lib.Matcap.Fallback)
	assert.True(t, lib.Gradient.Nearest, "gradient ramp must sample without filtering")
	assert.True(t, lib.Environment.Cube)
	assert.False(t, lib.Environment.Fallback)

	// alpha, ao, height, normal, metalness, roughness were not written
	assert.Equal(t, 6, lib.Missing())
	assert.True(t, lib.DoorNormal.Fallback)
	assert.NotNil(t, lib.DoorNormal.Image)
}

func TestLoadPartialCubeFallsBack(t *testing.T) {
	root := t.TempDir()
	writeImage(t, root, EnvironmentDir+"/px.jpg", checker(4, 4))

	lib, err := Load(context.Background(), root)
	require.NoError(t, err)
	assert.True(t, lib.Environment.Fallback)
	assert.True(t, lib.Environment.Cube)
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}
