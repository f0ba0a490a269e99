package world

import "github.com/zyedidia/generic/mapset"

// Map is a rectangular tile grid with a parallel fog-of-war layer.
// Cells are stored row-major.
type Map struct {
	Width  int
	Height int

	tiles      []Tile
	visibility []Visibility
}

// NewMap creates a map with every cell set to fill and every cell Hidden.
func NewMap(width, height int, fill Tile) *Map {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = fill
	}
	return &Map{
		Width:      width,
		Height:     height,
		tiles:      tiles,
		visibility: make([]Visibility, width*height),
	}
}

func (m *Map) index(x, y int) int {
	return y*m.Width + x
}

// InBounds reports whether (x, y) lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Get returns the tile at the given position, or TileWall off the map.
func (m *Map) Get(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.tiles[m.index(x, y)]
}

// Set changes the tile at the given position. Off-map writes are ignored.
func (m *Map) Set(x, y int, t Tile) {
	if !m.InBounds(x, y) {
		return
	}
	m.tiles[m.index(x, y)] = t
}

// IsWalkable returns true if the given position can be walked on.
func (m *Map) IsWalkable(x, y int) bool {
	return m.Get(x, y).IsWalkable()
}

// Tiles returns a copy of the tile grid in row-major order.
func (m *Map) Tiles() []Tile {
	out := make([]Tile, len(m.tiles))
	copy(out, m.tiles)
	return out
}

// Count returns how many cells hold the given tile.
func (m *Map) Count(t Tile) int {
	n := 0
	for _, c := range m.tiles {
		if c == t {
			n++
		}
	}
	return n
}

// FindTile returns the first cell holding t, scanning rows top to bottom
// and each row left to right.
func (m *Map) FindTile(t Tile) (Point, bool) {
	for i, c := range m.tiles {
		if c == t {
			return Point{X: i % m.Width, Y: i / m.Width}, true
		}
	}
	return Point{}, false
}

// FindSpawn returns the walkable cell closest to the map center, searching
// square rings of growing radius. It returns the center when nothing on the
// map is walkable.
func (m *Map) FindSpawn() Point {
	if p, ok := m.spiralSearch(func(t Tile) bool { return t.IsWalkable() }); ok {
		return p
	}
	return Point{X: m.Width / 2, Y: m.Height / 2}
}

// FindRoadSpawn is FindSpawn restricted to road tiles, falling back to any
// walkable tile.
func (m *Map) FindRoadSpawn() Point {
	if p, ok := m.spiralSearch(func(t Tile) bool { return t == TileRoad }); ok {
		return p
	}
	return m.FindSpawn()
}

// spiralSearch walks the rings around the center, each ring top row then
// bottom row then the side columns, and returns the first match.
func (m *Map) spiralSearch(match func(Tile) bool) (Point, bool) {
	cx, cy := m.Width/2, m.Height/2
	maxR := max(m.Width, m.Height)

	check := func(x, y int) bool {
		return m.InBounds(x, y) && match(m.tiles[m.index(x, y)])
	}

	for r := 0; r <= maxR; r++ {
		for dx := -r; dx <= r; dx++ {
			if check(cx+dx, cy-r) {
				return Point{X: cx + dx, Y: cy - r}, true
			}
			if check(cx+dx, cy+r) {
				return Point{X: cx + dx, Y: cy + r}, true
			}
		}
		for dy := -r + 1; dy <= r-1; dy++ {
			if check(cx-r, cy+dy) {
				return Point{X: cx - r, Y: cy + dy}, true
			}
			if check(cx+r, cy+dy) {
				return Point{X: cx + r, Y: cy + dy}, true
			}
		}
	}
	return Point{}, false
}

// Reachable returns how many walkable cells can be reached from start when
// moving in 8 directions without cutting corners. It returns 0 when start
// is not walkable.
func (m *Map) Reachable(start Point) int {
	return m.reachableSet(start).Size()
}

// CanReach reports whether goal is reachable from start under the same
// movement rules as Reachable.
func (m *Map) CanReach(start, goal Point) bool {
	return m.reachableSet(start).Has(goal)
}

func (m *Map) reachableSet(start Point) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !m.IsWalkable(start.X, start.Y) {
		return visited
	}

	visited.Put(start)
	frontier := []Point{start}
	for len(frontier) > 0 {
		p := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		for _, d := range neighbors8 {
			n := Point{X: p.X + d.X, Y: p.Y + d.Y}
			if visited.Has(n) || !m.CanStep(p, d.X, d.Y) {
				continue
			}
			visited.Put(n)
			frontier = append(frontier, n)
		}
	}
	return visited
}

// neighbors8 lists the cardinal directions first, then the diagonals.
var neighbors8 = []Point{
	{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0},
	{X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1},
}

// CanStep reports whether a creature at p may move by (dx, dy). Diagonal
// steps need both orthogonal neighbours to be walkable.
func (m *Map) CanStep(p Point, dx, dy int) bool {
	if !m.IsWalkable(p.X+dx, p.Y+dy) {
		return false
	}
	if dx != 0 && dy != 0 {
		return m.IsWalkable(p.X+dx, p.Y) && m.IsWalkable(p.X, p.Y+dy)
	}
	return true
}
