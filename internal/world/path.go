package world

import (
	"math"

	"github.com/zyedidia/generic/heap"
)

const (
	costCardinal = 10
	costDiagonal = 14
)

// searchNode is an open-set entry. Entries are never updated in place; a
// cheaper route pushes a new entry and the old one is skipped when popped.
type searchNode struct {
	f, g int
	p    Point
}

// lessNode orders by f, then g, then x, then y so that searches are fully
// deterministic.
func lessNode(a, b searchNode) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}
	if a.p.X != b.p.X {
		return a.p.X < b.p.X
	}
	return a.p.Y < b.p.Y
}

// searchState holds per-cell bookkeeping for one A* run.
type searchState struct {
	m        *Map
	gScore   []int
	cameFrom []int
	open     *heap.Heap[searchNode]
}

func newSearchState(m *Map) *searchState {
	n := m.Width * m.Height
	s := &searchState{
		m:        m,
		gScore:   make([]int, n),
		cameFrom: make([]int, n),
		open:     heap.New[searchNode](lessNode),
	}
	for i := range s.gScore {
		s.gScore[i] = math.MaxInt
		s.cameFrom[i] = -1
	}
	return s
}

// relax records a cheaper route to p through from.
func (s *searchState) relax(from, p Point, g, h int) {
	i := s.m.index(p.X, p.Y)
	if g >= s.gScore[i] {
		return
	}
	s.gScore[i] = g
	s.cameFrom[i] = s.m.index(from.X, from.Y)
	s.open.Push(searchNode{f: g + h, g: g, p: p})
}

// path walks cameFrom back from goal and returns start..goal.
func (s *searchState) path(start, goal Point) []Point {
	path := []Point{goal}
	i := s.m.index(goal.X, goal.Y)
	startIdx := s.m.index(start.X, start.Y)
	for i != startIdx {
		i = s.cameFrom[i]
		path = append(path, Point{X: i % s.m.Width, Y: i / s.m.Width})
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

// octile is the admissible heuristic for 8-directional movement with
// cardinal cost 10 and diagonal cost 14.
func octile(a, b Point) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	return costCardinal*(dx+dy) + (costDiagonal-2*costCardinal)*min(dx, dy)
}

// FindPath returns the cheapest 8-directional walk from start to goal,
// including both endpoints. Diagonal steps may not cut corners. It returns
// nil when goal is not walkable or cannot be reached.
func (m *Map) FindPath(start, goal Point) []Point {
	if !m.IsWalkable(goal.X, goal.Y) || !m.InBounds(start.X, start.Y) {
		return nil
	}
	if start == goal {
		return []Point{start}
	}

	s := newSearchState(m)
	s.gScore[m.index(start.X, start.Y)] = 0
	s.open.Push(searchNode{f: octile(start, goal), g: 0, p: start})

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

		for _, d := range neighbors8 {
			if !m.CanStep(cur.p, d.X, d.Y) {
				continue
			}
			step := costCardinal
			if d.X != 0 && d.Y != 0 {
				step = costDiagonal
			}
			next := Point{X: cur.p.X + d.X, Y: cur.p.Y + d.Y}
			s.relax(cur.p, next, cur.g+step, octile(next, goal))
		}
	}
}
