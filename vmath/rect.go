package vmath

// Rect is an axis-aligned rectangle in grid cells
// Row/Column is the top-left cell; Rows/Columns is the size, empty when either is <= 0
type Rect struct {
	Row, Column   int
	Rows, Columns int
}

// Bottom returns the first row below the rectangle
func (r Rect) Bottom() int { return r.Row + r.Rows }

// Right returns the first column right of the rectangle
func (r Rect) Right() int { return r.Column + r.Columns }

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool { return r.Rows <= 0 || r.Columns <= 0 }

// Contains reports whether the cell (row, column) lies inside the rectangle
func (r Rect) Contains(row, column int) bool {
	return row >= r.Row && row < r.Bottom() && column >= r.Column && column < r.Right()
}

// Overlaps reports whether the two rectangles share at least one cell
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	if r.Column >= o.Right() || o.Column >= r.Right() {
		return false
	}
	if r.Row >= o.Bottom() || o.Row >= r.Bottom() {
		return false
	}
	return true
}

// Center returns the center cell, rounding towards the top-left
func (r Rect) Center() (row, column int) {
	return r.Row + r.Rows/2, r.Column + r.Columns/2
}

// ClipTo returns r moved and shrunk to fit inside bounds
// The origin is clamped into bounds first, then the size is cut at the bottom/right edge
// A non-empty input always yields at least one cell when bounds is non-empty
func (r Rect) ClipTo(bounds Rect) Rect {
	if bounds.Empty() {
		return Rect{Row: bounds.Row, Column: bounds.Column}
	}
	out := r
	out.Row = MedianInt(bounds.Row, r.Row, bounds.Bottom()-1)
	out.Column = MedianInt(bounds.Column, r.Column, bounds.Right()-1)
	out.Rows = MedianInt(1, r.Rows, bounds.Bottom()-out.Row)
	out.Columns = MedianInt(1, r.Columns, bounds.Right()-out.Column)
	return out
}
