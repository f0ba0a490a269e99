package world

import "testing"

func TestMapGetSetBounds(t *testing.T) {
	m := NewMap(5, 4, TileFloor)

	if got := m.Get(-1, 0); got != TileWall {
		t.Errorf("Get(-1, 0) = %v, want wall", got)
	}
	if got := m.Get(5, 0); got != TileWall {
		t.Errorf("Get(5, 0) = %v, want wall", got)
	}
	if got := m.Get(0, 4); got != TileWall {
		t.Errorf("Get(0, 4) = %v, want wall", got)
	}

	m.Set(2, 2, TileTree)
	if got := m.Get(2, 2); got != TileTree {
		t.Errorf("Get(2, 2) = %v, want tree", got)
	}

	// Out-of-bounds writes are ignored.
	before := m.Tiles()
	m.Set(-1, -1, TileRoad)
	m.Set(5, 4, TileRoad)
	if !tilesEqual(before, m.Tiles()) {
		t.Error("out-of-bounds Set modified the map")
	}
}

func TestMapIsWalkable(t *testing.T) {
	m := NewMap(3, 3, TileFloor)
	m.Set(1, 1, TileWall)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{1, 1, false},
		{-1, 0, false},
		{3, 3, false},
	}
	for _, tt := range tests {
		if got := m.IsWalkable(tt.x, tt.y); got != tt.want {
			t.Errorf("IsWalkable(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestMapVisibilityStartsHidden(t *testing.T) {
	m := NewMap(4, 4, TileFloor)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if v := m.Visibility(x, y); v != VisibilityHidden {
				t.Fatalf("Visibility(%d, %d) = %v, want hidden", x, y, v)
			}
		}
	}
	if v := m.Visibility(-1, 9); v != VisibilityHidden {
		t.Errorf("out-of-bounds Visibility = %v, want hidden", v)
	}
}

func TestFindTile(t *testing.T) {
	m := NewMap(6, 6, TileWall)
	m.Set(4, 1, TileStairsUp)
	m.Set(1, 3, TileStairsUp)

	p, ok := m.FindTile(TileStairsUp)
	if !ok {
		t.Fatal("FindTile() found nothing")
	}
	if p != (Point{X: 4, Y: 1}) {
		t.Errorf("FindTile() = %v, want {4 1}", p)
	}

	if _, ok := m.FindTile(TileRoad); ok {
		t.Error("FindTile(road) found a tile on a map with no roads")
	}
}

func TestFindSpawnPrefersCenter(t *testing.T) {
	m := NewMap(11, 11, TileTree)
	m.Set(5, 5, TileGrass)
	m.Set(1, 1, TileGrass)

	if got := m.FindSpawn(); got != (Point{X: 5, Y: 5}) {
		t.Errorf("FindSpawn() = %v, want {5 5}", got)
	}
}

func TestFindSpawnNothingWalkable(t *testing.T) {
	m := NewMap(8, 6, TileWall)
	if got := m.FindSpawn(); got != (Point{X: 4, Y: 3}) {
		t.Errorf("FindSpawn() = %v, want center {4 3}", got)
	}
}

func TestFindRoadSpawn(t *testing.T) {
	m := NewMap(11, 11, TileGrass)
	m.Set(8, 5, TileRoad)

	if got := m.FindRoadSpawn(); got != (Point{X: 8, Y: 5}) {
		t.Errorf("FindRoadSpawn() = %v, want {8 5}", got)
	}

	noRoad := NewMap(11, 11, TileGrass)
	if got := noRoad.FindRoadSpawn(); got != (Point{X: 5, Y: 5}) {
		t.Errorf("FindRoadSpawn() without roads = %v, want {5 5}", got)
	}
}

func TestReachableRespectsCorners(t *testing.T) {
	// Two floor cells touching only diagonally, with walls on both
	// orthogonals, are not connected.
	m := NewMap(4, 4, TileWall)
	m.Set(1, 1, TileFloor)
	m.Set(2, 2, TileFloor)

	if got := m.Reachable(Point{X: 1, Y: 1}); got != 1 {
		t.Errorf("Reachable() = %d, want 1", got)
	}
	if m.CanReach(Point{X: 1, Y: 1}, Point{X: 2, Y: 2}) {
		t.Error("CanReach() crossed a blocked corner")
	}

	m.Set(2, 1, TileFloor)
	m.Set(1, 2, TileFloor)
	if got := m.Reachable(Point{X: 1, Y: 1}); got != 4 {
		t.Errorf("Reachable() after opening = %d, want 4", got)
	}
}

func TestReachableFromWall(t *testing.T) {
	m := NewMap(3, 3, TileWall)
	if got := m.Reachable(Point{X: 1, Y: 1}); got != 0 {
		t.Errorf("Reachable() from wall = %d, want 0", got)
	}
}

func TestCanStepDiagonal(t *testing.T) {
	m := NewMap(3, 3, TileFloor)
	m.Set(1, 0, TileWall)

	if m.CanStep(Point{X: 0, Y: 0}, 1, 1) {
		t.Error("CanStep() allowed a diagonal past a wall")
	}
	if !m.CanStep(Point{X: 0, Y: 1}, 1, 1) {
		t.Error("CanStep() rejected an open diagonal")
	}
	if m.CanStep(Point{X: 0, Y: 0}, 1, 0) {
		t.Error("CanStep() allowed a step into a wall")
	}
}
