package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"apart vertically", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single cell overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right is exclusive", 30, 25, false},
		{"left of rect", 5, 15, false},
		{"below rect", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectFIntersects(t *testing.T) {
	a := RectF{X: 0, Y: 0, W: 10, H: 10}
	if !a.Intersects(RectF{X: 9.5, Y: 9.5, W: 1, H: 1}) {
		t.Error("fractional overlap should intersect")
	}
	if a.Intersects(RectF{X: 10, Y: 0, W: 5, H: 5}) {
		t.Error("touching edges should not intersect")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, size, expected float64
	}{
		{5, 10, 5},
		{12, 10, 2},
		{-3, 10, 7},
		{10, 10, 0},
	}
	for _, tc := range tests {
		if got := Wrap(tc.v, tc.size); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Wrap(%v, %v) = %v, expected %v", tc.v, tc.size, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF() = %v, expected 0", got)
	}
}

func TestViewportMapping(t *testing.T) {
	v := NewViewport(600, 400, 60, 20)

	if v.Col(0) != 0 || v.Col(599) != 59 || v.Row(399) != 19 {
		t.Errorf("corner mapping wrong: col(599)=%d row(399)=%d", v.Col(599), v.Row(399))
	}

	r := v.CellRect(RectF{X: 100, Y: 40, W: 30, H: 30})
	if r != NewRect(10, 2, 3, 2) {
		t.Errorf("CellRect() = %+v", r)
	}

	// Tiny objects still cover one cell.
	if r := v.CellRect(RectF{X: 5, Y: 5, W: 1, H: 1}); r.W != 1 || r.H != 1 {
		t.Errorf("tiny CellRect() = %+v", r)
	}
}

func TestViewportCentered(t *testing.T) {
	v := NewViewport(600, 400, 60, 20)

	if !v.Fits(62, 22) || v.Fits(61, 22) || v.Fits(62, 21) {
		t.Error("Fits() should require room for the frame")
	}

	c := v.Centered(80, 23)
	if c.OriginX != 10 || c.OriginY != 1 {
		t.Errorf("Centered() origin = (%d, %d)", c.OriginX, c.OriginY)
	}
	if f := c.Frame(); f.X != 9 || f.Y != 0 || f.W != 62 || f.H != 22 {
		t.Errorf("Frame() = %+v", f)
	}
}

func TestViewportFillClips(t *testing.T) {
	v := NewViewport(100, 100, 10, 10).Centered(12, 12)
	s := NewScreen(12, 12)
	v.Fill(s, RectF{X: -50, Y: -50, W: 70, H: 70}, '#', ColorRed)

	if s.Get(0, 0) != ' ' {
		t.Error("Fill should not paint outside the playfield")
	}
	if s.Get(1, 1) != '#' || s.Get(2, 2) != '#' {
		t.Errorf("Fill should paint the visible part, row1=%q", s.Row(1))
	}
}
