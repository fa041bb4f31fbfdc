package breakout

import (
	"math"

	"github.com/vovakirdan/retrovault/internal/config"
	"github.com/vovakirdan/retrovault/internal/core"
)

// Ball is the ball in playfield pixels, center position.
type Ball struct {
	X, Y   float64
	VX, VY float64 // Velocity per tick before difficulty scaling
	R      float64
}

// Paddle is the player's paddle. X is the left edge.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// CenterX returns the paddle's horizontal center.
func (p Paddle) CenterX() float64 { return p.X + p.Width/2 }

// Brick is one cell of the wall.
type Brick struct {
	Rect  core.RectF
	Row   int
	Alive bool
}

// buildWall lays out the brick grid from the tuning.
func buildWall(cfg config.BreakoutBricks) []Brick {
	bricks := make([]Brick, 0, cfg.Rows*cfg.Cols)
	for r := 0; r < cfg.Rows; r++ {
		for c := 0; c < cfg.Cols; c++ {
			bricks = append(bricks, Brick{
				Rect: core.RectF{
					X: cfg.OffsetLeft + float64(c)*(cfg.Width+cfg.Padding),
					Y: cfg.OffsetTop + float64(r)*cfg.RowPitch,
					W: cfg.Width,
					H: cfg.Height,
				},
				Row:   r,
				Alive: true,
			})
		}
	}
	return bricks
}

// CheckWallCollision bounces the ball off the side and top walls, looking
// one step ahead. It reports whether the ball left through the bottom.
func CheckWallCollision(b *Ball, scale, worldW, worldH float64) (fellOff bool) {
	nx := b.X + b.VX*scale
	if nx > worldW-b.R || nx < b.R {
		b.VX = -b.VX
	}
	ny := b.Y + b.VY*scale
	if ny < b.R {
		b.VY = -b.VY
	}
	return b.Y > worldH-b.R
}

// CheckPaddleCollision bounces a falling ball off the paddle. The hit
// offset from the paddle's center, in [-1, 1], sets the new horizontal
// speed so the player can steer.
func CheckPaddleCollision(b *Ball, p Paddle, scale, steer float64) bool {
	if b.VY <= 0 {
		return false
	}
	if b.Y+b.VY*scale < p.Y-b.R || b.Y > p.Y+p.Height {
		return false
	}
	if b.X < p.X || b.X > p.X+p.Width {
		return false
	}

	hit := (b.X - p.CenterX()) / (p.Width / 2)
	b.VY = -math.Abs(b.VY)
	b.VX = hit * steer
	b.Y = p.Y - b.R
	return true
}

// CheckBrickCollision kills the first live brick containing the ball's
// center and reverses the vertical velocity. It returns the brick index
// or -1.
func CheckBrickCollision(b *Ball, bricks []Brick) int {
	for i := range bricks {
		br := &bricks[i]
		if !br.Alive {
			continue
		}
		if b.X > br.Rect.X && b.X < br.Rect.Right() && b.Y > br.Rect.Y && b.Y < br.Rect.Bottom() {
			br.Alive = false
			b.VY = -b.VY
			return i
		}
	}
	return -1
}
