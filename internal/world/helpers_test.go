package world

import (
	"testing"

	"github.com/samdwyer/wildrealm/internal/config"
)

// testConfig returns the default generation parameters.
func testConfig() *config.MapGen {
	return config.Default()
}

// checkBorderBlocked fails the test if any border tile is walkable.
func checkBorderBlocked(t *testing.T, m *Map) {
	t.Helper()
	for x := 0; x < m.Width; x++ {
		for _, y := range []int{0, m.Height - 1} {
			if m.IsWalkable(x, y) {
				t.Errorf("border tile (%d,%d) = %v, want non-walkable", x, y, m.Get(x, y))
			}
		}
	}
	for y := 0; y < m.Height; y++ {
		for _, x := range []int{0, m.Width - 1} {
			if m.IsWalkable(x, y) {
				t.Errorf("border tile (%d,%d) = %v, want non-walkable", x, y, m.Get(x, y))
			}
		}
	}
}

// countWalkable counts walkable tiles.
func countWalkable(m *Map) int {
	n := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.IsWalkable(x, y) {
				n++
			}
		}
	}
	return n
}

// checkConnectedFromStairsUp fails the test unless every walkable tile is
// reachable from the level's stairs up.
func checkConnectedFromStairsUp(t *testing.T, m *Map) {
	t.Helper()
	up, ok := m.FindTile(TileStairsUp)
	if !ok {
		t.Fatal("level has no stairs up")
	}
	if got, want := m.Reachable(up), countWalkable(m); got != want {
		t.Errorf("Reachable(stairs up) = %d, want all %d walkable tiles", got, want)
	}
}

func tilesEqual(a, b []Tile) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
