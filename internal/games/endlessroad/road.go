package endlessroad

import (
	"math/rand"

	"github.com/vovakirdan/retrovault/internal/config"
	"github.com/vovakirdan/retrovault/internal/core"
)

// Segment is one horizontal slice of road; Y is its top edge and Offset
// shifts its center from the middle of the field.
type Segment struct {
	Y      float64
	Offset float64
}

// Road is a column of segments ordered bottom first.
type Road struct {
	cfg      config.RoadConfig
	rng      *rand.Rand
	segments []Segment
}

// NewRoad lays a straight road covering the field plus one segment.
func NewRoad(rng *rand.Rand, cfg config.RoadConfig) *Road {
	r := &Road{cfg: cfg, rng: rng}
	n := int(WorldH/cfg.SegmentHeight) + 1
	for i := 0; i < n; i++ {
		r.segments = append(r.segments, Segment{Y: WorldH - float64(i+1)*cfg.SegmentHeight})
	}
	return r
}

// Segments returns the road, bottom segment first.
func (r *Road) Segments() []Segment { return r.segments }

// Advance scrolls the road down by speed and returns how many segments left
// the bottom edge. Each one is replaced at the top with a drifted offset.
func (r *Road) Advance(speed float64) int {
	for i := range r.segments {
		r.segments[i].Y += speed
	}
	passed := 0
	for len(r.segments) > 0 && r.segments[0].Y > WorldH {
		r.segments = r.segments[1:]
		last := r.segments[len(r.segments)-1]
		drift := (r.rng.Float64() - 0.5) * 2 * r.cfg.Drift
		r.segments = append(r.segments, Segment{
			Y:      last.Y - r.cfg.SegmentHeight,
			Offset: core.ClampF(last.Offset+drift, -r.cfg.MaxOffset, r.cfg.MaxOffset),
		})
		passed++
	}
	return passed
}

// Top returns the highest segment.
func (r *Road) Top() Segment { return r.segments[len(r.segments)-1] }

// CenterAt returns the road's center x at world height y.
func (r *Road) CenterAt(y float64) float64 {
	for _, s := range r.segments {
		if y >= s.Y && y < s.Y+r.cfg.SegmentHeight {
			return WorldW/2 + s.Offset
		}
	}
	return WorldW/2 + r.Top().Offset
}

// Rect returns the bounds of segment s.
func (r *Road) Rect(s Segment) core.RectF {
	return core.RectF{X: WorldW/2 + s.Offset - r.cfg.Width/2, Y: s.Y, W: r.cfg.Width, H: r.cfg.SegmentHeight}
}

// OnRoad reports whether box lies within the road at its vertical center.
func (r *Road) OnRoad(box core.RectF) bool {
	_, cy := box.Center()
	c := r.CenterAt(cy)
	return box.X >= c-r.cfg.Width/2 && box.Right() <= c+r.cfg.Width/2
}
