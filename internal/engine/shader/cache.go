package shader

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/matview/internal/engine/shader/glsl"
	"github.com/Faultbox/matview/internal/logger"
)

// Cache compiles the mesh shader once per define set. Failed define sets
// are remembered so a broken variant is not recompiled every frame.
type Cache struct {
	programs map[string]*Program
	failed   map[string]error
	log      *zap.Logger
}

// NewCache creates an empty program cache.
func NewCache() *Cache {
	return &Cache{
		programs: make(map[string]*Program),
		failed:   make(map[string]error),
		log:      logger.Named("shader"),
	}
}

// Get returns the program for defines, compiling it on first use.
func (c *Cache) Get(defines []string) (*Program, error) {
	key := glsl.Key(defines)
	if p, ok := c.programs[key]; ok {
		return p, nil
	}
	if err, ok := c.failed[key]; ok {
		return nil, err
	}

	vert, frag := glsl.Sources(defines)
	id, err := CompileProgram(vert, frag)
	if err != nil {
		err = fmt.Errorf("compiling variant [%s]: %w", key, err)
		c.failed[key] = err
		c.log.Error("shader variant failed", zap.Strings("defines", defines), zap.Error(err))
		return nil, err
	}

	p := newProgram(id, defines)
	p.Use()
	for name, unit := range glsl.Samplers {
		p.SetInt(name, unit)
	}
	c.programs[key] = p
	c.log.Debug("compiled shader variant", zap.Strings("defines", defines), zap.Int("variants", len(c.programs)))
	return p, nil
}

// Len returns the number of compiled programs.
func (c *Cache) Len() int { return len(c.programs) }

// Close deletes every compiled program.
func (c *Cache) Close() {
	for key, p := range c.programs {
		p.Delete()
		delete(c.programs, key)
	}
	clear(c.failed)
}
