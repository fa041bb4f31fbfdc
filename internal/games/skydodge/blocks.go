package skydodge

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/retrovault/internal/config"
	"github.com/vovakirdan/retrovault/internal/core"
)

// Block is a falling square, positioned by its center.
type Block struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// Rect returns the block's bounds.
func (b Block) Rect() core.RectF {
	h := b.Size / 2
	return core.RectF{X: b.X - h, Y: b.Y - h, W: b.Size, H: b.Size}
}

// Spawner drops blocks on a timer that shortens as the multiplier grows.
type Spawner struct {
	cfg        config.SkyDodgeSpawn
	rng        *rand.Rand
	timer      int
	multiplier float64
	blocks     []Block
}

// NewSpawner creates a spawner with an empty sky.
func NewSpawner(rng *rand.Rand, cfg config.SkyDodgeSpawn) *Spawner {
	return &Spawner{cfg: cfg, rng: rng, multiplier: 1}
}

// Interval returns the current number of ticks between spawns.
func (s *Spawner) Interval() int {
	iv := float64(s.cfg.Interval) - s.multiplier*float64(s.cfg.IntervalStep)
	return max(s.cfg.MinInterval, int(math.Round(iv)))
}

// Multiplier returns the current speed multiplier.
func (s *Spawner) Multiplier() float64 { return s.multiplier }

// Blocks returns the blocks in the air.
func (s *Spawner) Blocks() []Block { return s.blocks }

// Update spawns when the timer runs out, moves every block by its speed
// scaled with scale, and returns how many blocks left the bottom edge.
func (s *Spawner) Update(scale, worldW, worldH float64) int {
	s.timer++
	if s.timer > s.Interval() {
		s.timer = 0
		size := s.rng.Float64()*(s.cfg.MaxSize-s.cfg.MinSize) + s.cfg.MinSize
		speed := s.rng.Float64()*(s.cfg.MaxSpeed-s.cfg.MinSpeed) + s.cfg.MinSpeed
		s.blocks = append(s.blocks, Block{
			X:     s.rng.Float64() * worldW,
			Y:     -size,
			Size:  size,
			Speed: speed * s.multiplier,
		})
	}

	dodged := 0
	kept := s.blocks[:0]
	for _, b := range s.blocks {
		b.Y += b.Speed * scale
		if b.Y-b.Size/2 > worldH {
			dodged++
			continue
		}
		kept = append(kept, b)
	}
	s.blocks = kept
	return dodged
}

// Dodged raises the multiplier each time score crosses a multiple of
// PointsPerStep.
func (s *Spawner) Dodged(score int) {
	if s.cfg.PointsPerStep > 0 && score > 0 && score%s.cfg.PointsPerStep == 0 {
		s.multiplier += s.cfg.MultiplierStep
	}
}

// CheckCollision reports whether r overlaps any block.
func (s *Spawner) CheckCollision(r core.RectF) bool {
	for _, b := range s.blocks {
		if r.Intersects(b.Rect()) {
			return true
		}
	}
	return false
}
