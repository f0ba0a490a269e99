package world

import "testing"

func TestTileAttributes(t *testing.T) {
	tests := []struct {
		tile     Tile
		walkable bool
		opaque   bool
		glyph    rune
		color    string
	}{
		{TileWall, false, true, '#', "#333333"},
		{TileFloor, true, false, '.', "#111111"},
		{TileTree, false, true, 'T', "#005500"},
		{TileGrass, true, false, '.', "#114411"},
		{TileRoad, true, false, '=', "#554433"},
		{TileDungeonEntrance, true, false, '>', "#aa7700"},
		{TileStairsUp, true, false, '<', "#8888ff"},
		{TileStairsDown, true, false, '>', "#8888ff"},
	}

	for _, tt := range tests {
		t.Run(tt.tile.String(), func(t *testing.T) {
			if got := tt.tile.IsWalkable(); got != tt.walkable {
				t.Errorf("IsWalkable() = %v, want %v", got, tt.walkable)
			}
			if got := tt.tile.IsOpaque(); got != tt.opaque {
				t.Errorf("IsOpaque() = %v, want %v", got, tt.opaque)
			}
			if got := tt.tile.Glyph(); got != tt.glyph {
				t.Errorf("Glyph() = %q, want %q", got, tt.glyph)
			}
			if got := tt.tile.Color(); got != tt.color {
				t.Errorf("Color() = %q, want %q", got, tt.color)
			}
		})
	}
}

func TestVisibilityString(t *testing.T) {
	tests := []struct {
		v    Visibility
		want string
	}{
		{VisibilityHidden, "hidden"},
		{VisibilitySeen, "seen"},
		{VisibilityVisible, "visible"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Visibility(%d).String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}
