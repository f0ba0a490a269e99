package world

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wildrealm/internal/config"
	"github.com/samdwyer/wildrealm/internal/telemetry"
)

// Dungeon is a stack of levels. Level 0 is entered from the overworld and
// the last level is the deepest.
type Dungeon struct {
	Levels []*Map
	Styles []DungeonStyle // One per level
	Biome  DungeonBiome
}

// Depth returns the number of levels.
func (d *Dungeon) Depth() int {
	return len(d.Levels)
}

// GenerateDungeon builds depth BSP levels and, when hasCave is set, a
// cellular-automata cave below them.
func GenerateDungeon(ctx context.Context, depth int, seed uint64, hasCave bool, biome DungeonBiome, cfg *config.MapGen) *Dungeon {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	total := depth
	if hasCave {
		total++
	}

	d := &Dungeon{
		Levels: make([]*Map, 0, total),
		Styles: make([]DungeonStyle, 0, total),
		Biome:  biome,
	}

	rng := NewRNG(seed)
	for level := 0; level < depth; level++ {
		w, h := cfg.LevelSize(level)
		d.Levels = append(d.Levels, GenerateBSPDungeon(w, h, rng.Next(), level, total, cfg))
		d.Styles = append(d.Styles, biome.StyleForLevel(level, false))
	}

	if hasCave {
		d.Levels = append(d.Levels, GenerateCave(cfg.CaveWidth, cfg.CaveHeight, rng.Next(), cfg))
		d.Styles = append(d.Styles, biome.StyleForLevel(depth, true))
	}

	span.SetAttributes(
		attribute.String("dungeon.biome", biome.String()),
		attribute.Int("dungeon.depth", depth),
		attribute.Bool("dungeon.has_cave", hasCave),
		attribute.Int("dungeon.level_count", len(d.Levels)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return d
}

// GenerateBSPDungeon builds one dungeon level: BSP rooms joined in order by
// L-shaped corridors, stairs up in the first room and stairs down in the
// last unless level is the deepest of totalLevels.
func GenerateBSPDungeon(width, height int, seed uint64, level, totalLevels int, cfg *config.MapGen) *Map {
	m := NewMap(width, height, TileWall)
	rng := NewRNG(seed)

	rooms := SplitRooms(m.interior(), cfg.BSPMinRoom, &rng)
	for _, room := range rooms {
		m.carveRoom(room)
	}
	for i := 1; i < len(rooms); i++ {
		m.carveCorridor(rooms[i-1], rooms[i])
	}
	m.placeStairs(rooms, level, totalLevels)

	return m
}

// carveRoom sets all interior tiles within the room to floor.
func (m *Map) carveRoom(room Rect) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			m.carveFloor(x, y)
		}
	}
}

// interior is the map without its one-tile border.
func (m *Map) interior() Rect {
	return Rect{X: 1, Y: 1, Width: m.Width - 2, Height: m.Height - 2}
}

// carveFloor sets a tile to floor unless it lies on the border.
func (m *Map) carveFloor(x, y int) {
	if m.interior().Contains(x, y) {
		m.Set(x, y, TileFloor)
	}
}

// carveCorridor runs horizontally from a's center, then vertically into
// b's center.
func (m *Map) carveCorridor(a, b Rect) {
	x1, y1 := a.Center()
	x2, y2 := b.Center()
	m.carveHorizontalTunnel(x1, x2, y1)
	m.carveVerticalTunnel(y1, y2, x2)
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (m *Map) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		m.carveFloor(x, y)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (m *Map) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		m.carveFloor(x, y)
	}
}

func (m *Map) placeStairs(rooms []Rect, level, totalLevels int) {
	if len(rooms) == 0 {
		return
	}

	first := rooms[0]
	ux, uy := first.Center()
	m.Set(ux, uy, TileStairsUp)

	if level >= totalLevels-1 {
		return
	}

	last := rooms[len(rooms)-1]
	dx, dy := last.Center()
	if len(rooms) == 1 {
		// Single room: keep the two stairs apart.
		dx, dy = last.X+last.Width-1, last.Y+last.Height-1
	}
	m.Set(dx, dy, TileStairsDown)
}
