package world

import "testing"

func TestBresenhamLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []Point
	}{
		{"horizontal", 0, 0, 3, 0, []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical", 2, 1, 2, 4, []Point{{2, 1}, {2, 2}, {2, 3}, {2, 4}}},
		{"diagonal", 0, 0, 3, 3, []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"single point", 5, 5, 5, 5, []Point{{5, 5}}},
		{"negative direction", 3, 0, 0, 0, []Point{{3, 0}, {2, 0}, {1, 0}, {0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BresenhamLine(tt.x0, tt.y0, tt.x1, tt.y1)
			if len(got) != len(tt.want) {
				t.Fatalf("BresenhamLine() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("BresenhamLine()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBresenhamLineSteep(t *testing.T) {
	line := BresenhamLine(1, 2, 4, 11)
	if line[0] != (Point{X: 1, Y: 2}) || line[len(line)-1] != (Point{X: 4, Y: 11}) {
		t.Errorf("line runs %v -> %v", line[0], line[len(line)-1])
	}
	if len(line) != 10 {
		t.Errorf("len(line) = %d, want 10", len(line))
	}
	for i := 1; i < len(line); i++ {
		if chebyshev(line[i-1], line[i]) != 1 {
			t.Errorf("gap between %v and %v", line[i-1], line[i])
		}
	}
}

func TestHasLineOfSight(t *testing.T) {
	m := NewMap(20, 20, TileFloor)
	m.Set(10, 5, TileWall)
	m.Set(8, 12, TileTree)

	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           bool
	}{
		{"blocked by wall", 5, 5, 15, 5, false},
		{"wall endpoint visible", 5, 5, 10, 5, true},
		{"same point", 5, 5, 5, 5, true},
		{"open diagonal", 5, 6, 15, 16, true},
		{"blocked by tree", 5, 12, 12, 12, false},
		{"adjacent", 5, 5, 6, 5, true},
		{"off map endpoint", 18, 5, 21, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.HasLineOfSight(tt.x0, tt.y0, tt.x1, tt.y1); got != tt.want {
				t.Errorf("HasLineOfSight(%d,%d,%d,%d) = %v, want %v",
					tt.x0, tt.y0, tt.x1, tt.y1, got, tt.want)
			}
		})
	}
}
