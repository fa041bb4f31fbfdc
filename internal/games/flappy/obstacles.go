package flappy

import (
	"math/rand"

	"github.com/vovakirdan/retrovault/internal/config"
	"github.com/vovakirdan/retrovault/internal/core"
)

// Pipe is a pair of columns with a gap for the player to fly through.
type Pipe struct {
	X         float64 // Left edge
	GapY      float64 // Top of the gap
	GapHeight float64
}

// TopRect returns the collision rectangle above the gap.
func (p Pipe) TopRect(width float64) core.RectF {
	return core.RectF{X: p.X, Y: 0, W: width, H: p.GapY}
}

// BottomRect returns the collision rectangle below the gap.
func (p Pipe) BottomRect(width, worldH float64) core.RectF {
	y := p.GapY + p.GapHeight
	return core.RectF{X: p.X, Y: y, W: width, H: worldH - y}
}

// PipeManager owns a fixed set of pipes. A pipe that scrolls off the left
// edge is recycled behind the rightmost one with a fresh gap.
type PipeManager struct {
	pipes      []Pipe
	rng        *rand.Rand
	cfg        config.FlappyPipes
	difficulty *config.DifficultyManager
}

// NewPipeManager lays out cfg.Count pipes starting just past the right edge.
func NewPipeManager(rng *rand.Rand, cfg config.FlappyPipes, diff *config.DifficultyManager) *PipeManager {
	pm := &PipeManager{rng: rng, cfg: cfg, difficulty: diff}
	pm.pipes = make([]Pipe, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		pm.pipes = append(pm.pipes, pm.newPipe(WorldW+float64(i)*cfg.Spacing, 0, 0))
	}
	return pm
}

func (pm *PipeManager) newPipe(x float64, score, ticks int) Pipe {
	gap := pm.difficulty.Gap(pm.cfg.Gap, pm.cfg.MinGap, score, ticks)
	span := WorldH - gap - 2*pm.cfg.Margin
	if span < 0 {
		span = 0
	}
	return Pipe{
		X:         x,
		GapY:      pm.rng.Float64()*span + pm.cfg.Margin,
		GapHeight: gap,
	}
}

// Update scrolls every pipe left by speed and recycles the ones that left
// the playfield.
func (pm *PipeManager) Update(speed float64, score, ticks int) {
	for i := range pm.pipes {
		pm.pipes[i].X -= speed
	}
	for i := range pm.pipes {
		if pm.pipes[i].X+pm.cfg.Width < 0 {
			pm.pipes[i] = pm.newPipe(pm.rightmost()+pm.cfg.Spacing, score, ticks)
		}
	}
}

func (pm *PipeManager) rightmost() float64 {
	x := 0.0
	for _, p := range pm.pipes {
		if p.X > x {
			x = p.X
		}
	}
	return x
}

// Pipes returns the live pipes.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// CheckCollision tests whether a rectangle overlaps any pipe.
func (pm *PipeManager) CheckCollision(r core.RectF) bool {
	for _, p := range pm.pipes {
		if r.Intersects(p.TopRect(pm.cfg.Width)) || r.Intersects(p.BottomRect(pm.cfg.Width, WorldH)) {
			return true
		}
	}
	return false
}
