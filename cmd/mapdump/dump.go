package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gookit/color"

	"github.com/samdwyer/wildrealm/internal/gamedata"
	"github.com/samdwyer/wildrealm/internal/world"
)

// palette colors glyphs by tile, with an optional dungeon style
// overriding walls and floors.
type palette struct {
	styles *gamedata.StyleRegistry
	tiles  map[world.Tile]color.RGBColor
}

func newPalette(styles *gamedata.StyleRegistry) *palette {
	p := &palette{styles: styles, tiles: make(map[world.Tile]color.RGBColor)}
	for t := world.TileWall; t <= world.TileStairsDown; t++ {
		p.tiles[t] = color.HEX(t.Color())
	}
	return p
}

func (p *palette) useStyle(id string) {
	def := p.styles.ByID(id)
	if def == nil {
		return
	}
	p.tiles[world.TileWall] = color.HEX(gamedata.ExpandHex(def.Wall))
	p.tiles[world.TileFloor] = color.HEX(gamedata.ExpandHex(def.Floor))
}

func (p *palette) paint(t world.Tile) string {
	glyph := string(t.Glyph())
	if p == nil {
		return glyph
	}
	return p.tiles[t].Sprint(glyph)
}

// writeMap prints one row of glyphs per map row. A nil palette prints
// plain text.
func writeMap(out io.Writer, m *world.Map, p *palette) error {
	bw := bufio.NewWriter(out)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			bw.WriteString(p.paint(m.Get(x, y)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// writeSummary lists the seed, the spawn and every dungeon with its
// entrance, biome and per-level reachable floor count.
func writeSummary(out io.Writer, w *world.World) error {
	bw := bufio.NewWriter(out)
	fmt.Fprintf(bw, "seed %d\n", w.Seed)
	fmt.Fprintf(bw, "overworld %dx%d, spawn (%d,%d), %d tiles reachable\n",
		w.Overworld.Width, w.Overworld.Height, w.Spawn.X, w.Spawn.Y, w.Overworld.Reachable(w.Spawn))
	for i, d := range w.Dungeons {
		e := w.Entrances[i]
		fmt.Fprintf(bw, "dungeon %d at (%d,%d): %s, %d levels\n", i, e.X, e.Y, d.Biome.Name(), d.Depth())
		for lvl, m := range d.Levels {
			up, _ := m.FindTile(world.TileStairsUp)
			fmt.Fprintf(bw, "  level %d %dx%d %s: %d tiles reachable\n",
				lvl, m.Width, m.Height, d.Styles[lvl], m.Reachable(up))
		}
	}
	return bw.Flush()
}

// writeStyles lists every dungeon palette with a wall and floor swatch.
func writeStyles(out io.Writer, styles *gamedata.StyleRegistry, useColor bool) error {
	bw := bufio.NewWriter(out)
	for _, def := range styles.All() {
		wall, floor := string(def.WallRune()), "."
		if useColor {
			wall = color.HEX(gamedata.ExpandHex(def.Wall)).Sprint(wall)
			floor = color.HEX(gamedata.ExpandHex(def.Floor)).Sprint(floor)
		}
		fmt.Fprintf(bw, "%-13s %s%s %-14s wall %s floor %s\n", def.ID, wall, floor, def.Name, def.Wall, def.Floor)
	}
	return bw.Flush()
}
