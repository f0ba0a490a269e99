// Package config holds map generation knobs and runtime settings.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid map generation config")

// LevelSize is the width and height of one dungeon level.
type LevelSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MapGen tunes the overworld, cave, dungeon and road generators.
type MapGen struct {
	// Overworld
	OverworldWidth  int `yaml:"overworld_width"`
	OverworldHeight int `yaml:"overworld_height"`

	// Forest cellular automata. A cell becomes tree when at least
	// ForestNeighborThreshold of its neighbours are trees.
	ForestTreePct           int `yaml:"forest_tree_pct"`
	ForestSmoothPasses      int `yaml:"forest_smooth_passes"`
	ForestNeighborThreshold int `yaml:"forest_neighbor_threshold"`

	// Cave cellular automata
	CaveWallPct           int `yaml:"cave_wall_pct"`
	CaveSmoothPasses      int `yaml:"cave_smooth_passes"`
	CaveNeighborThreshold int `yaml:"cave_neighbor_threshold"`
	CaveWidth             int `yaml:"cave_width"`
	CaveHeight            int `yaml:"cave_height"`

	// Entrance placement on the overworld
	BSPMinZone            int `yaml:"bsp_min_zone"`
	DungeonPlaceChancePct int `yaml:"dungeon_place_chance_pct"`
	DungeonMinCount       int `yaml:"dungeon_min_count"`

	// Dungeon interiors. Levels past the end of DungeonLevelSizes reuse
	// the last entry.
	BSPMinRoom        int         `yaml:"bsp_min_room"`
	DungeonDepth      int         `yaml:"dungeon_depth"`
	DungeonLevelSizes []LevelSize `yaml:"dungeon_level_sizes"`

	// Road A* step costs
	RoadCostGrass    int `yaml:"road_cost_grass"`
	RoadCostTree     int `yaml:"road_cost_tree"`
	RoadCostRoad     int `yaml:"road_cost_road"`
	RoadCostFloor    int `yaml:"road_cost_floor"`
	RoadCostEntrance int `yaml:"road_cost_entrance"`
}

// Default returns the standard generation parameters.
func Default() *MapGen {
	return &MapGen{
		OverworldWidth:          200,
		OverworldHeight:         200,
		ForestTreePct:           55,
		ForestSmoothPasses:      4,
		ForestNeighborThreshold: 5,
		CaveWallPct:             45,
		CaveSmoothPasses:        5,
		CaveNeighborThreshold:   5,
		CaveWidth:               80,
		CaveHeight:              60,
		BSPMinZone:              30,
		DungeonPlaceChancePct:   60,
		DungeonMinCount:         3,
		BSPMinRoom:              5,
		DungeonDepth:            3,
		DungeonLevelSizes: []LevelSize{
			{Width: 40, Height: 30},
			{Width: 50, Height: 35},
			{Width: 60, Height: 40},
		},
		RoadCostGrass:    2,
		RoadCostTree:     6,
		RoadCostRoad:     1,
		RoadCostFloor:    2,
		RoadCostEntrance: 1,
	}
}

// LevelSize returns the dimensions of the given dungeon level.
func (c *MapGen) LevelSize(level int) (width, height int) {
	if len(c.DungeonLevelSizes) == 0 {
		return 0, 0
	}
	if level < 0 {
		level = 0
	}
	if level >= len(c.DungeonLevelSizes) {
		level = len(c.DungeonLevelSizes) - 1
	}
	s := c.DungeonLevelSizes[level]
	return s.Width, s.Height
}

// Validate checks that every generator can run to completion with these
// parameters.
func (c *MapGen) Validate() error {
	if c.OverworldWidth < 16 || c.OverworldHeight < 16 {
		return fmt.Errorf("%w: overworld must be at least 16x16, got %dx%d",
			ErrInvalid, c.OverworldWidth, c.OverworldHeight)
	}
	if c.CaveWidth < 3 || c.CaveHeight < 3 {
		return fmt.Errorf("%w: cave must be at least 3x3, got %dx%d",
			ErrInvalid, c.CaveWidth, c.CaveHeight)
	}

	pcts := map[string]int{
		"forest_tree_pct":          c.ForestTreePct,
		"cave_wall_pct":            c.CaveWallPct,
		"dungeon_place_chance_pct": c.DungeonPlaceChancePct,
	}
	for name, v := range pcts {
		if v < 0 || v > 100 {
			return fmt.Errorf("%w: %s must be within 0..100, got %d", ErrInvalid, name, v)
		}
	}
	if c.ForestTreePct == 100 {
		return fmt.Errorf("%w: forest_tree_pct of 100 leaves no open ground", ErrInvalid)
	}
	if c.ForestSmoothPasses < 0 || c.CaveSmoothPasses < 0 {
		return fmt.Errorf("%w: smoothing passes must not be negative", ErrInvalid)
	}

	if c.BSPMinZone < 1 {
		return fmt.Errorf("%w: bsp_min_zone must be positive, got %d", ErrInvalid, c.BSPMinZone)
	}
	if c.DungeonMinCount < 0 {
		return fmt.Errorf("%w: dungeon_min_count must not be negative", ErrInvalid)
	}
	if c.BSPMinRoom < 2 {
		return fmt.Errorf("%w: bsp_min_room must be at least 2, got %d", ErrInvalid, c.BSPMinRoom)
	}
	if c.DungeonDepth < 1 {
		return fmt.Errorf("%w: dungeon_depth must be at least 1, got %d", ErrInvalid, c.DungeonDepth)
	}
	if len(c.DungeonLevelSizes) == 0 {
		return fmt.Errorf("%w: dungeon_level_sizes is empty", ErrInvalid)
	}
	minSide := 2*c.BSPMinRoom + 3
	for i, s := range c.DungeonLevelSizes {
		if s.Width < minSide || s.Height < minSide {
			return fmt.Errorf("%w: dungeon level %d must be at least %dx%d, got %dx%d",
				ErrInvalid, i, minSide, minSide, s.Width, s.Height)
		}
	}

	costs := []int{c.RoadCostGrass, c.RoadCostTree, c.RoadCostRoad, c.RoadCostFloor, c.RoadCostEntrance}
	for _, v := range costs {
		if v < 1 {
			return fmt.Errorf("%w: road costs must be positive", ErrInvalid)
		}
	}
	return nil
}

// Load reads a YAML file and applies it over the defaults. Keys missing from
// the file keep their default value.
func Load(path string) (*MapGen, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse map config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads path, or returns the defaults when path is empty.
func LoadOrDefault(path string) (*MapGen, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
