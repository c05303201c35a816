package preset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/matview/internal/material"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets", "toon.yaml")

	p := material.DefaultParams()
	p.Kind = material.KindToon
	p.Color = 0xff8800
	p.GradientMap = true
	p.Side = material.FrontSide
	require.NoError(t, Save(path, p))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "material: toon")
	assert.Contains(t, text, "#ff8800")
	assert.Contains(t, text, "side: front")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestParseKeepsDefaultsForMissingFields(t *testing.T) {
	p, err := Parse([]byte("material: phong\nshininess: 80\n"))
	require.NoError(t, err)

	want := material.DefaultParams()
	want.Kind = material.KindPhong
	want.Shininess = 80
	assert.Equal(t, want, p)
}

func TestParseClamps(t *testing.T) {
	p, err := Parse([]byte("metalness: 4\nroughness: -1\nshininess: 500\n"))
	require.NoError(t, err)

	assert.Equal(t, float32(1), p.Metalness)
	assert.Equal(t, float32(0), p.Roughness)
	assert.Equal(t, float32(100), p.Shininess)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "material: [toon"},
		{"unknown kind", "material: glass"},
		{"bad color", "color: '#zzzzzz'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func waitUpdate(t *testing.T, w *Watcher) material.Params {
	t.Helper()
	select {
	case p, ok := <-w.Updates():
		require.True(t, ok, "updates closed")
		return p
	case <-time.After(5 * time.Second):
		t.Fatal("no preset update")
	}
	return material.Params{}
}

func TestWatchDeliversReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live.yaml")
	require.NoError(t, Save(path, material.DefaultParams()))

	w, err := Watch(context.Background(), path)
	require.NoError(t, err)
	defer w.Close()

	p := material.DefaultParams()
	p.Kind = material.KindMatcap
	p.Wireframe = true
	require.NoError(t, Save(path, p))

	// A save can arrive as several write events; wait for the final content.
	got := waitUpdate(t, w)
	for got.Kind != material.KindMatcap {
		got = waitUpdate(t, w)
	}
	assert.True(t, got.Wireframe)
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.yaml")
	require.NoError(t, Save(path, material.DefaultParams()))

	w, err := Watch(context.Background(), path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("material: toon\n"), 0644))

	select {
	case p := <-w.Updates():
		t.Fatalf("unexpected update %+v", p)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live.yaml")
	require.NoError(t, Save(path, material.DefaultParams()))

	ctx, cancel := context.WithCancel(context.Background())
	w, err := Watch(ctx, path)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-w.Updates():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.NoError(t, w.Close())
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "live.yaml"))
	assert.Error(t, err)
}
