package core

import "math"

// Viewport maps a virtual playfield measured in pixels (the 600x400 style
// canvases the action games are tuned for) onto a block of terminal cells.
type Viewport struct {
	WorldW, WorldH   float64
	Cols, Rows       int
	OriginX, OriginY int // Screen position of the playfield's top-left cell
}

// NewViewport creates a viewport anchored at the screen origin.
func NewViewport(worldW, worldH float64, cols, rows int) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Cols: cols, Rows: rows}
}

// Fits reports whether the playfield plus a one-cell frame fits the screen.
func (v Viewport) Fits(screenW, screenH int) bool {
	return v.Cols+2 <= screenW && v.Rows+2 <= screenH
}

// Centered returns a copy of the viewport centered on a screen, leaving room
// for a frame around the playfield.
func (v Viewport) Centered(screenW, screenH int) Viewport {
	v.OriginX = max((screenW-v.Cols)/2, 1)
	v.OriginY = max((screenH-v.Rows)/2, 1)
	return v
}

// Frame returns the border rectangle around the playfield.
func (v Viewport) Frame() Rect {
	return NewRect(v.OriginX-1, v.OriginY-1, v.Cols+2, v.Rows+2)
}

// Col converts a playfield x coordinate to a screen column.
func (v Viewport) Col(x float64) int {
	return v.OriginX + int(math.Floor(x*float64(v.Cols)/v.WorldW))
}

// Row converts a playfield y coordinate to a screen row.
func (v Viewport) Row(y float64) int {
	return v.OriginY + int(math.Floor(y*float64(v.Rows)/v.WorldH))
}

// CellRect returns the cells covered by a playfield rectangle.
// Anything with a positive size covers at least one cell.
func (v Viewport) CellRect(r RectF) Rect {
	x0 := v.Col(r.X)
	y0 := v.Row(r.Y)
	x1 := v.OriginX + int(math.Ceil(r.Right()*float64(v.Cols)/v.WorldW))
	y1 := v.OriginY + int(math.Ceil(r.Bottom()*float64(v.Rows)/v.WorldH))
	return NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Contains reports whether a screen cell lies inside the playfield.
func (v Viewport) Contains(x, y int) bool {
	return x >= v.OriginX && x < v.OriginX+v.Cols && y >= v.OriginY && y < v.OriginY+v.Rows
}

// Fill paints a playfield rectangle, clipped to the playfield.
func (v Viewport) Fill(dst *Screen, r RectF, ch rune, c Color) {
	cr := v.CellRect(r)
	for y := cr.Y; y < cr.Bottom(); y++ {
		for x := cr.X; x < cr.Right(); x++ {
			if v.Contains(x, y) {
				dst.SetColor(x, y, ch, c)
			}
		}
	}
}

// Plot paints a single playfield point, clipped to the playfield.
func (v Viewport) Plot(dst *Screen, x, y float64, ch rune, c Color) {
	cx, cy := v.Col(x), v.Row(y)
	if v.Contains(cx, cy) {
		dst.SetColor(cx, cy, ch, c)
	}
}

// DrawFrame draws the border around the playfield.
func (v Viewport) DrawFrame(dst *Screen, c Color) {
	dst.DrawBoxColor(v.Frame(), c)
}
