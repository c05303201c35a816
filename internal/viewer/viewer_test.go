package viewer

import (
	"context"
	"errors"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/matview/internal/config"
	"github.com/Faultbox/matview/internal/engine/camera"
	"github.com/Faultbox/matview/internal/engine/frame"
	"github.com/Faultbox/matview/internal/engine/texture"
	"github.com/Faultbox/matview/internal/material"
	"github.com/Faultbox/matview/internal/preset"
	"github.com/Faultbox/matview/internal/scene"
)

// fakeRenderer records calls instead of drawing.
type fakeRenderer struct {
	uploaded  []*scene.Mesh
	resizes   []frame.Viewport
	renders   int
	aspects   []float32
	captures  int
	closed    bool
	uploadErr error
}

func (f *fakeRenderer) Upload(meshes []*scene.Mesh, _ *texture.Library) error {
	f.uploaded = meshes
	return f.uploadErr
}

func (f *fakeRenderer) Resize(vp frame.Viewport) { f.resizes = append(f.resizes, vp) }

func (f *fakeRenderer) Render(s *scene.Scene, cam *camera.OrbitCamera) frame.Stats {
	f.renders++
	f.aspects = append(f.aspects, cam.Aspect)
	return frame.Stats{DrawCalls: len(s.Meshes), Triangles: s.Triangles(), Programs: 1}
}

func (f *fakeRenderer) Capture(_ *scene.Scene, _ *camera.OrbitCamera, w, h int) (*image.RGBA, error) {
	f.captures++
	if w <= 0 || h <= 0 {
		w, h = 4, 2
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	return img, nil
}

func (f *fakeRenderer) Close() { f.closed = true }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Capture.Dir = filepath.Join(t.TempDir(), "shots")
	cfg.Export.Path = filepath.Join(t.TempDir(), "scene.gltf")
	return cfg
}

func newViewer(t *testing.T, cfg *config.Config) (*Viewer, *fakeRenderer) {
	t.Helper()
	r := &fakeRenderer{}
	v, err := New(cfg, r, nil)
	require.NoError(t, err)
	t.Cleanup(v.Close)
	return v, r
}

func assertShared(t *testing.T, v *Viewer) {
	t.Helper()
	for _, m := range v.Scene().Meshes {
		assert.Same(t, v.Material(), m.Material(), m.Name)
	}
}

func TestNewUploadsAndBindsSharedMaterial(t *testing.T) {
	v, r := newViewer(t, testConfig(t))

	assert.Len(t, r.uploaded, 3)
	assertShared(t, v)

	std, ok := v.Material().(*material.Standard)
	require.True(t, ok)
	assert.Equal(t, float32(0.7), std.Metalness)
	assert.Equal(t, float32(0.2), std.Roughness)
}

func TestNewUploadError(t *testing.T) {
	r := &fakeRenderer{uploadErr: errors.New("no context")}
	_, err := New(testConfig(t), r, nil)
	assert.ErrorContains(t, err, "no context")
}

func TestNewWithKind(t *testing.T) {
	cfg := testConfig(t)
	cfg.Material.Kind = "toon"
	v, _ := newViewer(t, cfg)

	assert.Equal(t, material.KindToon, v.Material().Kind())
	assert.Equal(t, material.KindToon, v.Params().Kind)
	assertShared(t, v)
}

func TestNewWithBadKind(t *testing.T) {
	cfg := testConfig(t)
	cfg.Material.Kind = "glass"
	_, err := New(cfg, &fakeRenderer{}, nil)
	assert.Error(t, err)
}

func TestNewWithPreset(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "phong.yaml")
	p := material.DefaultParams()
	p.Kind = material.KindPhong
	p.Shininess = 90
	require.NoError(t, preset.Save(path, p))
	cfg.Material.Preset = path

	v, _ := newViewer(t, cfg)

	phong, ok := v.Material().(*material.Phong)
	require.True(t, ok)
	assert.Equal(t, float32(90), phong.Shininess)
	assert.Equal(t, path, v.PresetPath())
}

func TestMissingStartupPresetKeepsDefaults(t *testing.T) {
	cfg := testConfig(t)
	cfg.Material.Preset = filepath.Join(t.TempDir(), "missing.yaml")

	v, _ := newViewer(t, cfg)
	assert.Equal(t, material.KindStandard, v.Material().Kind())
}

func TestResizeAppliedBeforeNextRender(t *testing.T) {
	v, r := newViewer(t, testConfig(t))

	v.Resize(frame.Viewport{Width: 800, Height: 400, PixelRatio: 3})
	assert.Empty(t, r.resizes, "resize must wait for the next frame")

	v.Frame()
	require.Len(t, r.resizes, 1)
	require.Equal(t, 1, r.renders)
	assert.Equal(t, float32(2), r.aspects[0], "camera aspect updated before drawing")

	w, h := r.resizes[0].Drawable()
	assert.Equal(t, int32(1600), w, "pixel ratio capped at 2")
	assert.Equal(t, int32(800), h)
}

func TestNoRenderWhileEmpty(t *testing.T) {
	v, r := newViewer(t, testConfig(t))

	v.Frame()
	assert.Zero(t, r.renders)

	v.Resize(frame.Viewport{Width: 640, Height: 480, PixelRatio: 1})
	v.Frame()
	v.Resize(frame.Viewport{})
	v.Frame()
	v.Frame()

	assert.Equal(t, 1, r.renders)
	assert.Len(t, r.resizes, 1)
	assert.Equal(t, uint64(1), v.Frames())
}

func TestFrameAnimatesFromClock(t *testing.T) {
	v, _ := newViewer(t, testConfig(t))
	now := time.Unix(100, 0)
	v.clock = scene.NewClockAt(func() time.Time { return now })
	v.Resize(frame.Viewport{Width: 100, Height: 100})

	now = now.Add(10 * time.Second)
	stats := v.Frame()

	assert.Equal(t, 3, stats.DrawCalls)
	for _, m := range v.Scene().Meshes {
		assert.InDelta(t, 1.5, m.Rotation.X(), 1e-5)
		assert.InDelta(t, 1.0, m.Rotation.Y(), 1e-5)
	}
	assert.Equal(t, stats, v.Stats())
}

func TestKindChangesKeepOneMaterial(t *testing.T) {
	v, _ := newViewer(t, testConfig(t))

	for _, k := range []material.Kind{material.KindBasic, material.KindPhysical, material.KindDepth, material.KindToon} {
		v.SetKind(k)
		assertShared(t, v)
		assert.Equal(t, k, v.Material().Kind())
	}
}

func TestNudgeAndToggleApply(t *testing.T) {
	v, _ := newViewer(t, testConfig(t))
	v.SetKind(material.KindStandard)

	require.True(t, v.Nudge(material.PropRoughness, 0.25))
	assert.Equal(t, float32(0.75), v.Material().(*material.Standard).Roughness)

	require.True(t, v.Toggle(material.PropWireframe))
	assert.True(t, v.Material().(*material.Standard).Wireframe)

	v.SetKind(material.KindNormal)
	assert.False(t, v.Nudge(material.PropRoughness, 0.1), "normal material has no roughness")
}

func TestPresetSaveLoad(t *testing.T) {
	v, _ := newViewer(t, testConfig(t))
	path := filepath.Join(t.TempDir(), "mine.yaml")

	v.Params().Color = 0x336699
	v.SetKind(material.KindLambert)
	require.NoError(t, v.SavePreset(path))

	v.SetKind(material.KindBasic)
	v.Params().Color = material.White
	require.NoError(t, v.LoadPreset(path))

	assert.Equal(t, material.KindLambert, v.Material().Kind())
	assert.Equal(t, material.Color(0x336699), v.Material().(*material.Lambert).Color)
	assertShared(t, v)
}

func TestWatchPresetAppliedInFrame(t *testing.T) {
	v, _ := newViewer(t, testConfig(t))
	path := filepath.Join(t.TempDir(), "live.yaml")
	require.NoError(t, preset.Save(path, material.DefaultParams()))
	require.NoError(t, v.WatchPreset(context.Background(), path))

	p := material.DefaultParams()
	p.Kind = material.KindMatcap
	require.NoError(t, preset.Save(path, p))

	require.Eventually(t, func() bool {
		v.Frame()
		return v.Material().Kind() == material.KindMatcap
	}, 5*time.Second, 10*time.Millisecond)
	assertShared(t, v)
}

func TestScreenshot(t *testing.T) {
	cfg := testConfig(t)
	cfg.Capture.Width, cfg.Capture.Height = 8, 6
	v, r := newViewer(t, cfg)

	path, err := v.Screenshot()
	require.NoError(t, err)
	assert.Equal(t, 1, r.captures)
	assert.Equal(t, path, v.LastScreenshot())
	assert.Equal(t, cfg.Capture.Dir, filepath.Dir(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfgImg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 8, cfgImg.Width)
	assert.Equal(t, 6, cfgImg.Height)
}

func TestExport(t *testing.T) {
	cfg := testConfig(t)
	v, _ := newViewer(t, cfg)

	path, err := v.Export("")
	require.NoError(t, err)
	assert.Equal(t, cfg.Export.Path, path)
	assert.FileExists(t, path)
}

func TestCloseReleasesRenderer(t *testing.T) {
	r := &fakeRenderer{}
	v, err := New(testConfig(t), r, nil)
	require.NoError(t, err)

	v.Close()
	assert.True(t, r.closed)
}
