package geodash

import (
	"math/rand"

	"github.com/vovakirdan/retrovault/internal/config"
	"github.com/vovakirdan/retrovault/internal/core"
)

// Spike is a block standing on the floor that the player must jump.
type Spike struct {
	X      float64 // Left edge
	Width  float64
	Height float64
}

// Rect returns the collision rectangle for a spike standing on floorY.
func (s Spike) Rect(floorY float64) core.RectF {
	return core.RectF{X: s.X, Y: floorY - s.Height, W: s.Width, H: s.Height}
}

// ObstacleManager scrolls a fixed set of spikes and recycles the ones that
// leave the left edge.
type ObstacleManager struct {
	spikes []Spike
	rng    *rand.Rand
	cfg    config.GeoDashObstacles
}

// NewObstacleManager lays out cfg.Count spikes starting at the right edge.
func NewObstacleManager(rng *rand.Rand, cfg config.GeoDashObstacles) *ObstacleManager {
	om := &ObstacleManager{rng: rng, cfg: cfg}
	om.spikes = make([]Spike, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		om.spikes = append(om.spikes, om.newSpike(WorldW+float64(i)*cfg.Spacing))
	}
	return om
}

func (om *ObstacleManager) newSpike(x float64) Spike {
	c := om.cfg
	return Spike{
		X:      x,
		Width:  c.MinWidth + om.rng.Float64()*(c.MaxWidth-c.MinWidth),
		Height: c.MinHeight + om.rng.Float64()*(c.MaxHeight-c.MinHeight),
	}
}

// Update scrolls spikes left by speed and returns how many were passed and
// recycled this tick.
func (om *ObstacleManager) Update(speed float64) int {
	passed := 0
	for i := range om.spikes {
		om.spikes[i].X -= speed
	}
	for i := range om.spikes {
		if om.spikes[i].X+om.spikes[i].Width < 0 {
			x := max(WorldW, om.rightmost()+om.cfg.Spacing) + om.rng.Float64()*om.cfg.Jitter
			om.spikes[i] = om.newSpike(x)
			passed++
		}
	}
	return passed
}

func (om *ObstacleManager) rightmost() float64 {
	x := 0.0
	for _, s := range om.spikes {
		x = max(x, s.X)
	}
	return x
}

// Spikes returns the live spikes.
func (om *ObstacleManager) Spikes() []Spike {
	return om.spikes
}

// CheckCollision tests whether a rectangle overlaps any spike.
func (om *ObstacleManager) CheckCollision(r core.RectF, floorY float64) bool {
	for _, s := range om.spikes {
		if r.Intersects(s.Rect(floorY)) {
			return true
		}
	}
	return false
}
