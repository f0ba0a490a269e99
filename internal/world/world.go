package world

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wildrealm/internal/config"
	"github.com/samdwyer/wildrealm/internal/telemetry"
)

// lcgMultiplier advances the per-dungeon seed.
const lcgMultiplier = 6364136223846793005

// Location names the map a player is on.
type Location struct {
	InDungeon bool
	Dungeon   int // Index into World.Dungeons
	Level     int
}

// Overworld is the location of the forest map.
var Overworld = Location{}

func (l Location) String() string {
	if !l.InDungeon {
		return "overworld"
	}
	return fmt.Sprintf("dungeon %d level %d", l.Dungeon, l.Level)
}

// World is a generated overworld and every dungeon reachable from it.
// Dungeons[i] is entered through Entrances[i].
type World struct {
	Seed      uint64
	Overworld *Map
	Dungeons  []*Dungeon
	Entrances []Point
	Spawn     Point
}

// NewWorld generates a complete world from one seed. The only error is an
// invalid configuration; generation itself always succeeds.
func NewWorld(ctx context.Context, seed uint64, cfg *config.MapGen) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generate world: %w", err)
	}

	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()
	w := &World{Seed: seed}

	_, forestSpan := tracer.Start(ctx, "overworld.forest")
	w.Overworld = GenerateForest(cfg.OverworldWidth, cfg.OverworldHeight, seed, cfg)
	forestSpan.SetAttributes(attribute.Int("overworld.grass", w.Overworld.Count(TileGrass)))
	forestSpan.End()

	_, placeSpan := tracer.Start(ctx, "overworld.entrances")
	w.Entrances = w.Overworld.PlaceDungeons(seed+1, cfg)
	placeSpan.SetAttributes(attribute.Int("overworld.entrances", len(w.Entrances)))
	placeSpan.End()

	_, roadSpan := tracer.Start(ctx, "overworld.roads")
	w.Overworld.BuildRoads(w.Entrances, cfg)
	if len(w.Entrances) == 1 {
		// A lone entrance has no network to join, so link it to the open
		// ground nearest the centre where the spawn search starts.
		w.Overworld.carveRoad(w.Overworld.FindSpawn(), w.Entrances[0], cfg)
	}
	roadSpan.SetAttributes(attribute.Int("overworld.road_tiles", w.Overworld.Count(TileRoad)))
	roadSpan.End()

	w.Dungeons = generateDungeons(ctx, w.Entrances, seed+2, w.Overworld.Height, cfg)
	w.Spawn = w.Overworld.FindRoadSpawn()
	if !w.Overworld.IsWalkable(w.Spawn.X, w.Spawn.Y) {
		// Fully wooded with no entrances: clear a single tile to stand on.
		w.Overworld.Set(w.Spawn.X, w.Spawn.Y, TileGrass)
	}

	span.SetAttributes(
		attribute.String("world.seed", strconv.FormatUint(seed, 10)),
		attribute.Int("world.dungeons", len(w.Dungeons)),
		attribute.Int("world.spawn_x", w.Spawn.X),
		attribute.Int("world.spawn_y", w.Spawn.Y),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return w, nil
}

// generateDungeons builds one dungeon per entrance. Exactly one of them,
// chosen by seed, is the dragon's lair and ends in a cave.
func generateDungeons(ctx context.Context, entrances []Point, seed uint64, mapHeight int, cfg *config.MapGen) []*Dungeon {
	if len(entrances) == 0 {
		return nil
	}

	caveIndex := int(seed % uint64(len(entrances)))
	dungeons := make([]*Dungeon, 0, len(entrances))
	s := seed
	for i, e := range entrances {
		s = s*lcgMultiplier + 1
		hasCave := i == caveIndex
		biome := BiomeDragonLair
		if !hasCave {
			biome = ForDungeon(s, e.Y, mapHeight)
		}
		dungeons = append(dungeons, GenerateDungeon(ctx, cfg.DungeonDepth, s, hasCave, biome, cfg))
	}
	return dungeons
}

// FromMap wraps a single map in a world with no dungeons.
func FromMap(m *Map) *World {
	return &World{Overworld: m, Spawn: m.FindSpawn()}
}

// DungeonAt returns the index of the dungeon whose entrance is at p.
func (w *World) DungeonAt(p Point) (int, bool) {
	for i, e := range w.Entrances {
		if e == p {
			return i, true
		}
	}
	return -1, false
}

// MapAt returns the map for a location, or nil if it does not exist.
func (w *World) MapAt(loc Location) *Map {
	if !loc.InDungeon {
		return w.Overworld
	}
	if loc.Dungeon < 0 || loc.Dungeon >= len(w.Dungeons) {
		return nil
	}
	d := w.Dungeons[loc.Dungeon]
	if loc.Level < 0 || loc.Level >= len(d.Levels) {
		return nil
	}
	return d.Levels[loc.Level]
}

// StyleAt returns the visual style of a dungeon level. It reports false on
// the overworld.
func (w *World) StyleAt(loc Location) (DungeonStyle, bool) {
	if !loc.InDungeon || w.MapAt(loc) == nil {
		return 0, false
	}
	return w.Dungeons[loc.Dungeon].Styles[loc.Level], true
}
