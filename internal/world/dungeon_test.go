package world

import (
	"context"
	"testing"
)

func TestBSPDungeonReproducibility(t *testing.T) {
	cfg := testConfig()
	a := GenerateBSPDungeon(50, 35, 12345, 0, 3, cfg)
	b := GenerateBSPDungeon(50, 35, 12345, 0, 3, cfg)
	if !tilesEqual(a.Tiles(), b.Tiles()) {
		t.Error("GenerateBSPDungeon() with the same seed produced different levels")
	}

	c := GenerateBSPDungeon(50, 35, 54321, 0, 3, cfg)
	if tilesEqual(a.Tiles(), c.Tiles()) {
		t.Error("GenerateBSPDungeon() with different seeds produced identical levels")
	}
}

func TestBSPDungeonInvariants(t *testing.T) {
	cfg := testConfig()
	sizes := []struct{ w, h int }{{40, 30}, {50, 35}, {60, 40}, {13, 13}}

	for _, s := range sizes {
		for seed := uint64(1); seed <= 20; seed++ {
			m := GenerateBSPDungeon(s.w, s.h, seed, 0, 3, cfg)
			checkBorderBlocked(t, m)
			checkConnectedFromStairsUp(t, m)

			if got := m.Count(TileStairsUp); got != 1 {
				t.Errorf("%dx%d seed %d: stairs up = %d, want 1", s.w, s.h, seed, got)
			}
			if got := m.Count(TileStairsDown); got != 1 {
				t.Errorf("%dx%d seed %d: stairs down = %d, want 1", s.w, s.h, seed, got)
			}
		}
	}
}

func TestBSPDungeonDeepestLevelHasNoStairsDown(t *testing.T) {
	m := GenerateBSPDungeon(40, 30, 8, 2, 3, testConfig())
	if got := m.Count(TileStairsDown); got != 0 {
		t.Errorf("stairs down on deepest level = %d, want 0", got)
	}
	if got := m.Count(TileStairsUp); got != 1 {
		t.Errorf("stairs up on deepest level = %d, want 1", got)
	}
}

func TestPlaceStairsSingleRoom(t *testing.T) {
	m := NewMap(12, 12, TileWall)
	room := Rect{X: 2, Y: 2, Width: 6, Height: 6}
	m.carveRoom(room)
	m.placeStairs([]Rect{room}, 0, 2)

	if got := m.Get(5, 5); got != TileStairsUp {
		t.Errorf("Get(5, 5) = %v, want stairs up", got)
	}
	if got := m.Get(7, 7); got != TileStairsDown {
		t.Errorf("Get(7, 7) = %v, want stairs down", got)
	}
}

func TestGenerateDungeon(t *testing.T) {
	cfg := testConfig()
	ctx := context.Background()

	d := GenerateDungeon(ctx, 3, 99, false, BiomeUndeadCrypt, cfg)
	if d.Depth() != 3 {
		t.Fatalf("Depth() = %d, want 3", d.Depth())
	}
	if len(d.Styles) != 3 {
		t.Fatalf("len(Styles) = %d, want 3", len(d.Styles))
	}

	wantSizes := [][2]int{{40, 30}, {50, 35}, {60, 40}}
	for i, lvl := range d.Levels {
		if lvl.Width != wantSizes[i][0] || lvl.Height != wantSizes[i][1] {
			t.Errorf("level %d is %dx%d, want %dx%d", i, lvl.Width, lvl.Height, wantSizes[i][0], wantSizes[i][1])
		}
	}

	wantStyles := []DungeonStyle{StyleCatacombs, StyleCatacombs, StyleBoneCrypt}
	for i, s := range d.Styles {
		if s != wantStyles[i] {
			t.Errorf("Styles[%d] = %v, want %v", i, s, wantStyles[i])
		}
	}

	if got := d.Levels[0].Count(TileStairsDown); got != 1 {
		t.Errorf("level 0 stairs down = %d, want 1", got)
	}
	if got := d.Levels[2].Count(TileStairsDown); got != 0 {
		t.Errorf("deepest level stairs down = %d, want 0", got)
	}
}

func TestGenerateDungeonWithCave(t *testing.T) {
	cfg := testConfig()
	d := GenerateDungeon(context.Background(), 3, 7, true, BiomeDragonLair, cfg)

	if d.Depth() != 4 {
		t.Fatalf("Depth() = %d, want 4", d.Depth())
	}
	cave := d.Levels[3]
	if cave.Width != cfg.CaveWidth || cave.Height != cfg.CaveHeight {
		t.Errorf("cave is %dx%d, want %dx%d", cave.Width, cave.Height, cfg.CaveWidth, cfg.CaveHeight)
	}
	if d.Styles[3] != StyleRedCavern {
		t.Errorf("cave style = %v, want %v", d.Styles[3], StyleRedCavern)
	}
	// With a cave below, the last BSP level needs stairs down.
	if got := d.Levels[2].Count(TileStairsDown); got != 1 {
		t.Errorf("level 2 stairs down = %d, want 1", got)
	}
}

func TestGenerateDungeonReproducible(t *testing.T) {
	cfg := testConfig()
	ctx := context.Background()
	a := GenerateDungeon(ctx, 3, 31337, true, BiomeDragonLair, cfg)
	b := GenerateDungeon(ctx, 3, 31337, true, BiomeDragonLair, cfg)

	for i := range a.Levels {
		if !tilesEqual(a.Levels[i].Tiles(), b.Levels[i].Tiles()) {
			t.Errorf("level %d differs between identical seeds", i)
		}
	}
	// Levels of the same size are still distinct.
	if tilesEqual(a.Levels[1].Tiles(), a.Levels[2].Tiles()) {
		t.Error("levels 1 and 2 are identical")
	}
}

func TestGenerateDungeonReusesLastLevelSize(t *testing.T) {
	cfg := testConfig()
	d := GenerateDungeon(context.Background(), 5, 3, false, BiomeBeastDen, cfg)
	for _, i := range []int{3, 4} {
		if lvl := d.Levels[i]; lvl.Width != 60 || lvl.Height != 40 {
			t.Errorf("level %d is %dx%d, want 60x40", i, lvl.Width, lvl.Height)
		}
	}
}

func TestTunnelsStopAtBorder(t *testing.T) {
	m := NewMap(10, 6, TileWall)
	m.carveHorizontalTunnel(-3, 15, 2)
	m.carveVerticalTunnel(-1, 9, 4)

	checkBorderBlocked(t, m)
	if got := m.Get(1, 2); got != TileFloor {
		t.Errorf("Get(1, 2) = %v, want floor", got)
	}
	if got := m.Get(4, 4); got != TileFloor {
		t.Errorf("Get(4, 4) = %v, want floor", got)
	}
}
