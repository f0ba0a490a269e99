// Package world generates and queries tile-grid maps: the forest overworld,
// caves, multi-level dungeons and the roads between them.
package world

// Tile represents a single map tile.
type Tile uint8

const (
	// TileWall blocks movement and sight. Out-of-bounds reads return it.
	TileWall Tile = iota
	TileFloor
	TileTree
	TileGrass
	TileRoad
	TileDungeonEntrance
	TileStairsUp
	TileStairsDown
)

// IsWalkable returns true if the tile can be walked on.
func (t Tile) IsWalkable() bool {
	switch t {
	case TileFloor, TileGrass, TileRoad, TileDungeonEntrance, TileStairsUp, TileStairsDown:
		return true
	default:
		return false
	}
}

// IsOpaque returns true if the tile blocks line of sight.
func (t Tile) IsOpaque() bool {
	return t == TileWall || t == TileTree
}

// Glyph returns the tile's display character.
func (t Tile) Glyph() rune {
	switch t {
	case TileWall:
		return '#'
	case TileFloor, TileGrass:
		return '.'
	case TileTree:
		return 'T'
	case TileRoad:
		return '='
	case TileDungeonEntrance, TileStairsDown:
		return '>'
	case TileStairsUp:
		return '<'
	default:
		return '?'
	}
}

// Color returns the tile's display color as a "#rrggbb" string.
func (t Tile) Color() string {
	switch t {
	case TileWall:
		return "#333333"
	case TileFloor:
		return "#111111"
	case TileTree:
		return "#005500"
	case TileGrass:
		return "#114411"
	case TileRoad:
		return "#554433"
	case TileDungeonEntrance:
		return "#aa7700"
	case TileStairsUp, TileStairsDown:
		return "#8888ff"
	default:
		return "#ffffff"
	}
}

func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileTree:
		return "tree"
	case TileGrass:
		return "grass"
	case TileRoad:
		return "road"
	case TileDungeonEntrance:
		return "dungeon_entrance"
	case TileStairsUp:
		return "stairs_up"
	case TileStairsDown:
		return "stairs_down"
	default:
		return "unknown"
	}
}

// Visibility is the fog-of-war state of a cell.
type Visibility uint8

const (
	// VisibilityHidden cells have never been seen.
	VisibilityHidden Visibility = iota
	// VisibilitySeen cells were visible on an earlier turn.
	VisibilitySeen
	// VisibilityVisible cells are in the current field of view.
	VisibilityVisible
)

func (v Visibility) String() string {
	switch v {
	case VisibilityHidden:
		return "hidden"
	case VisibilitySeen:
		return "seen"
	case VisibilityVisible:
		return "visible"
	default:
		return "unknown"
	}
}
