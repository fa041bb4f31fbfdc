package cuberunner

import (
	"math/rand"

	"github.com/vovakirdan/retrovault/internal/config"
	"github.com/vovakirdan/retrovault/internal/core"
)

// Cube is a point in front of the camera; Z is the distance from it.
type Cube struct {
	X, Y, Z float64
	Size    float64
}

// Field is the cloud of cubes rushing toward the player.
type Field struct {
	cfg   config.CubeField
	rng   *rand.Rand
	cubes []Cube
}

// NewField scatters cfg.Cubes cubes at random depths.
func NewField(rng *rand.Rand, cfg config.CubeField) *Field {
	f := &Field{cfg: cfg, rng: rng, cubes: make([]Cube, cfg.Cubes)}
	for i := range f.cubes {
		f.cubes[i] = Cube{
			X:    f.spread(WorldW),
			Y:    f.spread(WorldH),
			Z:    rng.Float64() * cfg.Depth,
			Size: rng.Float64()*(cfg.MaxSize-cfg.MinSize) + cfg.MinSize,
		}
	}
	return f
}

// spread returns a coordinate in [-2*extent, 2*extent).
func (f *Field) spread(extent float64) float64 {
	return f.rng.Float64()*extent*4 - extent*2
}

// Cubes returns the cubes in update order.
func (f *Field) Cubes() []Cube { return f.cubes }

// Advance moves every cube speed units closer. Cubes that pass the camera
// respawn far away at a new position.
func (f *Field) Advance(speed float64) {
	for i := range f.cubes {
		c := &f.cubes[i]
		c.Z -= speed
		if c.Z < 1 {
			c.X = f.spread(WorldW)
			c.Y = f.spread(WorldH)
			c.Z = f.cfg.Depth + f.rng.Float64()*f.cfg.RespawnDepth
		}
	}
}

// Project maps a cube to its on-screen square in world units.
func (f *Field) Project(c Cube) core.RectF {
	scale := f.cfg.FOV / (f.cfg.FOV + c.Z)
	x := (c.X-WorldW/2)*scale + WorldW/2
	y := (c.Y-WorldH/2)*scale + WorldH/2
	w := c.Size * scale
	return core.RectF{X: x - w/2, Y: y - w/2, W: w, H: w}
}

// Hits reports whether a cube inside the near band overlaps player.
func (f *Field) Hits(player core.RectF) bool {
	for _, c := range f.cubes {
		if c.Z <= f.cfg.HitNear || c.Z >= f.cfg.HitFar {
			continue
		}
		if f.Project(c).Intersects(player) {
			return true
		}
	}
	return false
}
