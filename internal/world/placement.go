package world

import "github.com/samdwyer/wildrealm/internal/config"

const (
	// maxPlacementPasses bounds the retries made to reach the minimum
	// entrance count.
	maxPlacementPasses = 8
	// placementSpacing is the minimum Chebyshev distance between two
	// entrances placed by different passes.
	placementSpacing = 6
)

// PlaceDungeons stamps small stone entrance structures onto a forest map,
// one candidate per BSP zone, and returns the entrance tiles in placement
// order. Passes with shifted seeds are added until cfg.DungeonMinCount
// entrances exist or the pass limit is hit.
//
// Each structure looks like this, with a clearing carved beneath it:
//
//	###
//	#>#
//	...
func (m *Map) PlaceDungeons(seed uint64, cfg *config.MapGen) []Point {
	var entrances []Point
	for pass := 0; pass < maxPlacementPasses; pass++ {
		entrances = m.placementPass(seed+uint64(7*pass), cfg, entrances)
		if len(entrances) >= cfg.DungeonMinCount {
			break
		}
	}
	return entrances
}

func (m *Map) placementPass(seed uint64, cfg *config.MapGen, entrances []Point) []Point {
	rng := NewRNG(seed)
	zones := SubdivideZones(Rect{X: 2, Y: 2, Width: m.Width - 4, Height: m.Height - 4}, cfg.BSPMinZone, &rng)

	for _, zone := range zones {
		if rng.Percent() >= cfg.DungeonPlaceChancePct {
			continue
		}

		cx, cy := zone.Center()
		if cx < 2 || cy < 2 || cx >= m.Width-2 || cy+2 >= m.Height-1 {
			continue
		}
		entrance := Point{X: cx, Y: cy + 1}
		if tooClose(entrance, entrances) {
			continue
		}

		for dx := -1; dx <= 1; dx++ {
			m.Set(cx+dx, cy, TileWall)
		}
		m.Set(cx-1, cy+1, TileWall)
		m.Set(cx, cy+1, TileDungeonEntrance)
		m.Set(cx+1, cy+1, TileWall)

		for dx := -1; dx <= 1; dx++ {
			if m.Get(cx+dx, cy+2) == TileTree {
				m.Set(cx+dx, cy+2, TileGrass)
			}
		}

		entrances = append(entrances, entrance)
	}
	return entrances
}

func tooClose(p Point, others []Point) bool {
	for _, o := range others {
		if abs(p.X-o.X) < placementSpacing && abs(p.Y-o.Y) < placementSpacing {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
