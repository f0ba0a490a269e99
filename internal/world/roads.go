package world

import (
	"math"

	"github.com/samdwyer/wildrealm/internal/config"
)

// BuildRoads links every entrance into one network. Entrances are joined
// along a Euclidean minimum spanning tree and each tree edge is routed
// with a cost-weighted A*. Grass and trees on a route become road.
func (m *Map) BuildRoads(entrances []Point, cfg *config.MapGen) {
	if len(entrances) < 2 {
		return
	}

	for _, e := range primMST(entrances) {
		m.carveRoad(entrances[e[0]], entrances[e[1]], cfg)
	}
}

// carveRoad routes one road from a to b.
func (m *Map) carveRoad(a, b Point, cfg *config.MapGen) {
	for _, p := range m.roadPath(a, b, cfg) {
		if t := m.Get(p.X, p.Y); t == TileGrass || t == TileTree {
			m.Set(p.X, p.Y, TileRoad)
		}
	}
}

// primMST returns the spanning tree edges as index pairs, parent first,
// grown from entrance 0.
func primMST(points []Point) [][2]int {
	n := len(points)
	inTree := make([]bool, n)
	minCost := make([]float64, n)
	minEdge := make([]int, n)

	inTree[0] = true
	for i := 1; i < n; i++ {
		minCost[i] = distance(points[i], points[0])
	}

	edges := make([][2]int, 0, n-1)
	for range n - 1 {
		best := -1
		bestCost := math.MaxFloat64
		for i := range n {
			if !inTree[i] && minCost[i] < bestCost {
				best, bestCost = i, minCost[i]
			}
		}
		if best < 0 {
			break
		}
		inTree[best] = true
		edges = append(edges, [2]int{minEdge[best], best})

		for i := range n {
			if inTree[i] {
				continue
			}
			if d := distance(points[i], points[best]); d < minCost[i] {
				minCost[i] = d
				minEdge[i] = best
			}
		}
	}
	return edges
}

func distance(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// roadCost returns the cost of stepping onto t, or false if roads cannot
// cross it.
func roadCost(t Tile, cfg *config.MapGen) (int, bool) {
	switch t {
	case TileGrass:
		return cfg.RoadCostGrass, true
	case TileTree:
		return cfg.RoadCostTree, true
	case TileRoad:
		return cfg.RoadCostRoad, true
	case TileFloor:
		return cfg.RoadCostFloor, true
	case TileDungeonEntrance:
		return cfg.RoadCostEntrance, true
	default:
		return 0, false
	}
}

func manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// roadPath is a 4-directional weighted A* that never touches the border.
func (m *Map) roadPath(start, goal Point, cfg *config.MapGen) []Point {
	if !m.InBounds(start.X, start.Y) || !m.InBounds(goal.X, goal.Y) {
		return nil
	}

	s := newSearchState(m)
	s.gScore[m.index(start.X, start.Y)] = 0
	s.open.Push(searchNode{f: manhattan(start, goal), g: 0, p: start})

	for {
		cur, ok := s.open.Pop()
		if !ok {
			return nil
		}
		if cur.p == goal {
			return s.path(start, goal)
		}
		if cur.g > s.gScore[m.index(cur.p.X, cur.p.Y)] {
			continue
		}

		for _, d := range neighbors8[:4] {
			next := Point{X: cur.p.X + d.X, Y: cur.p.Y + d.Y}
			if next.X <= 0 || next.Y <= 0 || next.X >= m.Width-1 || next.Y >= m.Height-1 {
				continue
			}
			cost, ok := roadCost(m.Get(next.X, next.Y), cfg)
			if !ok {
				continue
			}
			s.relax(cur.p, next, cur.g+cost, manhattan(next, goal))
		}
	}
}
