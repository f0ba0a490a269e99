package world

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle of tiles: a BSP partition, a room or an
// overworld zone.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int
}

// Center returns the center coordinates of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}
