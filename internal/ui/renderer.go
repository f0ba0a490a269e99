package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wildrealm/internal/entity"
	"github.com/samdwyer/wildrealm/internal/gamedata"
	"github.com/samdwyer/wildrealm/internal/world"
)

// hudRows is the number of screen rows reserved below the map.
const hudRows = 2

// View is everything the renderer needs for one frame.
type View struct {
	Map    *world.Map
	Player *entity.Player
	// Style is the dungeon palette, or nil on the overworld.
	Style  *gamedata.StyleDef
	Status []string // HUD lines, top to bottom
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	styles *gamedata.StyleRegistry
	tiles  map[world.Tile]tcell.Color
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, styles *gamedata.StyleRegistry) *Renderer {
	return &Renderer{
		screen: screen,
		styles: styles,
		tiles:  tileColors(),
	}
}

func tileColors() map[world.Tile]tcell.Color {
	colors := make(map[world.Tile]tcell.Color)
	for t := world.TileWall; t <= world.TileStairsDown; t++ {
		colors[t] = gamedata.MustParseHexColor(t.Color())
	}
	return colors
}

// Render draws the visible part of the map around the player, then the HUD.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	screenW, screenH := r.screen.Size()
	viewH := max(screenH-hudRows, 1)
	ox := cameraOffset(screenW, v.Map.Width, v.Player.X)
	oy := cameraOffset(viewH, v.Map.Height, v.Player.Y)

	var wall, floor tcell.Color
	wallRune := world.TileWall.Glyph()
	if v.Style != nil {
		wall, floor, _ = r.styles.Colors(v.Style.ID)
		wallRune = v.Style.WallRune()
	}

	for sy := 0; sy < viewH; sy++ {
		for sx := 0; sx < screenW; sx++ {
			x, y := sx+ox, sy+oy
			if !v.Map.InBounds(x, y) {
				continue
			}
			vis := v.Map.Visibility(x, y)
			if vis == world.VisibilityHidden {
				continue
			}
			tile := v.Map.Get(x, y)
			glyph := tile.Glyph()
			if tile == world.TileWall {
				glyph = wallRune
			}
			r.screen.SetContent(sx, sy, glyph, r.tileStyle(tile, vis, v.Style != nil, wall, floor))
		}
	}

	playerStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(v.Player.X-ox, v.Player.Y-oy, v.Player.Symbol, playerStyle)

	for i, line := range v.Status {
		r.RenderMessage(line, viewH+i)
	}

	r.screen.Show()
}

// tileStyle picks the foreground for a revealed tile. Inside a dungeon the
// palette overrides walls and floors. Remembered tiles are dimmed.
func (r *Renderer) tileStyle(tile world.Tile, vis world.Visibility, palette bool, wall, floor tcell.Color) tcell.Style {
	fg := r.tiles[tile]
	if palette {
		switch tile {
		case world.TileWall:
			fg = wall
		case world.TileFloor:
			fg = floor
		}
	}
	style := tcell.StyleDefault.Foreground(fg)
	if vis == world.VisibilitySeen {
		style = style.Dim(true)
	}
	return style
}

// cameraOffset returns the first map coordinate shown on an axis so that
// the player stays centred, clamped to the map edges. Maps smaller than
// the view are drawn from zero.
func cameraOffset(view, size, player int) int {
	if size <= view {
		return 0
	}
	off := player - view/2
	return min(max(off, 0), size-view)
}

// RenderMessage displays a message at the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
