package texture

import (
	"context"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/matview/internal/logger"
)

// Asset paths relative to the asset root.
const (
	DoorColorPath            = "textures/door/color.jpg"
	DoorAlphaPath            = "textures/door/alpha.jpg"
	DoorAmbientOcclusionPath = "textures/door/ambientOcclusion.jpg"
	DoorHeightPath           = "textures/door/height.jpg"
	DoorNormalPath           = "textures/door/normal.jpg"
	DoorMetalnessPath        = "textures/door/metalness.jpg"
	DoorRoughnessPath        = "textures/door/roughness.jpg"
	MatcapPath               = "textures/matcaps/8.png"
	GradientPath             = "textures/gradients/5.jpg"
	EnvironmentDir           = "textures/environmentMaps/0"
)

// Library holds every texture the material panel can attach.
type Library struct {
	DoorColor            *Texture
	DoorAlpha            *Texture
	DoorAmbientOcclusion *Texture
	DoorHeight           *Texture
	DoorNormal           *Texture
	DoorMetalness        *Texture
	DoorRoughness        *Texture
	Matcap               *Texture
	Gradient             *Texture
	Environment          *Texture
}

// All returns the library's textures in a stable order.
func (l *Library) All() []*Texture {
	return []*Texture{
		l.DoorColor, l.DoorAlpha, l.DoorAmbientOcclusion, l.DoorHeight,
		l.DoorNormal, l.DoorMetalness, l.DoorRoughness,
		l.Matcap, l.Gradient, l.Environment,
	}
}

// Missing counts textures that fell back to white.
func (l *Library) Missing() int {
	n := 0
	for _, t := range l.All() {
		if t == nil || t.Fallback {
			n++
		}
	}
	return n
}

// Load decodes the texture set under root in parallel. A missing or corrupt
// file is logged and replaced by a white fallback; only cancellation of ctx
// makes Load fail.
func Load(ctx context.Context, root string) (*Library, error) {
	log := logger.Named("texture")
	lib := &Library{}

	type job struct {
		path string
		dst  **Texture
	}
	jobs := []job{
		{DoorColorPath, &lib.DoorColor},
		{DoorAlphaPath, &lib.DoorAlpha},
		{DoorAmbientOcclusionPath, &lib.DoorAmbientOcclusion},
		{DoorHeightPath, &lib.DoorHeight},
		{DoorNormalPath, &lib.DoorNormal},
		{DoorMetalnessPath, &lib.DoorMetalness},
		{DoorRoughnessPath, &lib.DoorRoughness},
		{MatcapPath, &lib.Matcap},
		{GradientPath, &lib.Gradient},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			*j.dst = load2D(log, root, j.path)
			return nil
		})
	}
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		lib.Environment = loadCube(gctx, log, root, EnvironmentDir)
		return gctx.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	lib.Gradient.Nearest = true

	log.Info("textures loaded",
		zap.String("root", root),
		zap.Int("count", len(lib.All())),
		zap.Int("missing", lib.Missing()))
	return lib, nil
}

func load2D(log *zap.Logger, root, rel string) *Texture {
	name := displayName(rel)
	img, err := DecodeFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		log.Warn("texture unavailable, using fallback", zap.String("texture", rel), zap.Error(err))
		return White(name)
	}
	return &Texture{Name: name, Image: img}
}

func loadCube(ctx context.Context, log *zap.Logger, root, dir string) *Texture {
	t := &Texture{Name: dir, Cube: true}
	for i, face := range CubeFaces {
		if ctx.Err() != nil {
			return WhiteCube(dir)
		}
		rel := dir + "/" + face + ".jpg"
		img, err := DecodeFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			log.Warn("environment face unavailable, using fallback", zap.String("texture", rel), zap.Error(err))
			return WhiteCube(dir)
		}
		t.Faces[i] = img
	}
	return t
}
