package world

import "github.com/samdwyer/wildrealm/internal/config"

// automataParams describes one cellular-automata terrain pass.
type automataParams struct {
	densityPct int // chance (0-100) that an interior cell starts blocking
	passes     int
	threshold  int // blocking neighbours needed to become blocking
	open       Tile
	blocking   Tile
}

// automata runs random fill, smoothing and region pruning on a fresh map.
// Border cells stay blocking throughout.
func automata(width, height int, seed uint64, p automataParams) *Map {
	m := NewMap(width, height, p.blocking)
	rng := NewRNG(seed)

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			if rng.Percent() >= p.densityPct {
				m.tiles[m.index(x, y)] = p.open
			}
		}
	}

	prev := make([]Tile, len(m.tiles))
	for pass := 0; pass < p.passes; pass++ {
		copy(prev, m.tiles)
		for y := 1; y < height-1; y++ {
			for x := 1; x < width-1; x++ {
				if countNeighbors(prev, width, height, x, y, p.blocking) >= p.threshold {
					m.tiles[m.index(x, y)] = p.blocking
				} else {
					m.tiles[m.index(x, y)] = p.open
				}
			}
		}
	}

	m.KeepLargestRegion(p.open, p.blocking)
	return m
}

// countNeighbors counts cells equal to t among the 8 neighbours of (x, y).
// Out-of-bounds neighbours count as t.
func countNeighbors(tiles []Tile, width, height, x, y int, t Tile) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= width || ny >= height {
				count++
				continue
			}
			if tiles[ny*width+nx] == t {
				count++
			}
		}
	}
	return count
}

// KeepLargestRegion finds the 4-connected regions of open tiles and fills
// every region except the largest with fill. Ties keep the region found
// first in row-major order. It returns the size of the kept region.
func (m *Map) KeepLargestRegion(open, fill Tile) int {
	labels := make([]int, len(m.tiles))
	var sizes []int

	stack := make([]int, 0, 64)
	for start, t := range m.tiles {
		if t != open || labels[start] != 0 {
			continue
		}

		label := len(sizes) + 1
		size := 0
		labels[start] = label
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++

			x, y := i%m.Width, i/m.Width
			for _, d := range neighbors8[:4] {
				nx, ny := x+d.X, y+d.Y
				if !m.InBounds(nx, ny) {
					continue
				}
				n := m.index(nx, ny)
				if m.tiles[n] == open && labels[n] == 0 {
					labels[n] = label
					stack = append(stack, n)
				}
			}
		}
		sizes = append(sizes, size)
	}

	if len(sizes) == 0 {
		return 0
	}

	best := 0
	for i, s := range sizes {
		if s > sizes[best] {
			best = i
		}
	}
	keep := best + 1

	for i, l := range labels {
		if l != 0 && l != keep {
			m.tiles[i] = fill
		}
	}
	return sizes[best]
}

// GenerateForest builds a tree and grass overworld. Trees line the border
// and all grass forms one connected clearing network.
func GenerateForest(width, height int, seed uint64, cfg *config.MapGen) *Map {
	return automata(width, height, seed, automataParams{
		densityPct: cfg.ForestTreePct,
		passes:     cfg.ForestSmoothPasses,
		threshold:  cfg.ForestNeighborThreshold,
		open:       TileGrass,
		blocking:   TileTree,
	})
}

// GenerateCave builds a single connected cavern with stairs up at its first
// floor cell. Caves are always the bottom level, so they have no stairs down.
func GenerateCave(width, height int, seed uint64, cfg *config.MapGen) *Map {
	m := automata(width, height, seed, automataParams{
		densityPct: cfg.CaveWallPct,
		passes:     cfg.CaveSmoothPasses,
		threshold:  cfg.CaveNeighborThreshold,
		open:       TileFloor,
		blocking:   TileWall,
	})

	if p, ok := m.FindTile(TileFloor); ok {
		m.Set(p.X, p.Y, TileStairsUp)
	} else {
		// Nothing survived smoothing; leave a single cell to arrive on.
		m.Set(width/2, height/2, TileStairsUp)
	}
	return m
}
