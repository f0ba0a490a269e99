package world

// BresenhamLine returns the integer line from (x0, y0) to (x1, y1),
// including both endpoints.
func BresenhamLine(x0, y0, x1, y1 int) []Point {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	points := make([]Point, 0, max(dx, -dy)+1)
	err := dx + dy
	x, y := x0, y0
	for {
		points = append(points, Point{X: x, Y: y})
		if x == x1 && y == y1 {
			return points
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// HasLineOfSight reports whether nothing opaque lies strictly between the
// two points. The endpoints themselves never block, so a wall can be seen
// from an adjacent cell. Intermediate cells off the map block sight.
func (m *Map) HasLineOfSight(x0, y0, x1, y1 int) bool {
	line := BresenhamLine(x0, y0, x1, y1)
	if len(line) <= 2 {
		return true
	}
	for _, p := range line[1 : len(line)-1] {
		if !m.InBounds(p.X, p.Y) || m.Get(p.X, p.Y).IsOpaque() {
			return false
		}
	}
	return true
}
