package game

import (
	"github.com/samdwyer/wildrealm/internal/entity"
	"github.com/samdwyer/wildrealm/internal/world"
)

// Session is the turn logic of one exploration run, independent of any
// screen. Every successful action ends the turn and refreshes the field
// of view on the current map.
type Session struct {
	World    *world.World
	Player   *entity.Player
	Location world.Location

	turn int
}

// NewSession places a new player at the world's spawn point.
func NewSession(w *world.World, sightRadius int) *Session {
	s := &Session{
		World:    w,
		Player:   entity.NewPlayer(w.Spawn.X, w.Spawn.Y, sightRadius),
		Location: world.Overworld,
	}
	s.refreshFOV()
	return s
}

// Map returns the map the player is on.
func (s *Session) Map() *world.Map {
	return s.World.MapAt(s.Location)
}

// Style returns the current dungeon style, or false on the overworld.
func (s *Session) Style() (world.DungeonStyle, bool) {
	return s.World.StyleAt(s.Location)
}

// Dungeon returns the dungeon the player is in, or nil on the overworld.
func (s *Session) Dungeon() *world.Dungeon {
	if !s.Location.InDungeon {
		return nil
	}
	return s.World.Dungeons[s.Location.Dungeon]
}

// Position returns the player's tile.
func (s *Session) Position() world.Point {
	x, y := s.Player.Position()
	return world.Point{X: x, Y: y}
}

// Turn returns the number of completed turns.
func (s *Session) Turn() int {
	return s.turn
}

// TryMove attempts to move the player by the given delta. Diagonal moves
// may not squeeze between two blocked tiles.
func (s *Session) TryMove(dx, dy int) bool {
	if !s.Map().CanStep(s.Position(), dx, dy) {
		return false
	}
	s.Player.Move(dx, dy)
	s.endTurn()
	return true
}

// Descend enters the dungeon under the player or takes the stairs down.
func (s *Session) Descend() bool {
	pos := s.Position()
	switch s.Map().Get(pos.X, pos.Y) {
	case world.TileDungeonEntrance:
		idx, ok := s.World.DungeonAt(pos)
		if !ok {
			return false
		}
		return s.arrive(world.Location{InDungeon: true, Dungeon: idx, Level: 0}, world.TileStairsUp)
	case world.TileStairsDown:
		next := s.Location
		next.Level++
		return s.arrive(next, world.TileStairsUp)
	default:
		return false
	}
}

// Ascend takes the stairs up, leaving the dungeon from its first level.
func (s *Session) Ascend() bool {
	pos := s.Position()
	if !s.Location.InDungeon || s.Map().Get(pos.X, pos.Y) != world.TileStairsUp {
		return false
	}

	if s.Location.Level == 0 {
		entrance := s.World.Entrances[s.Location.Dungeon]
		s.Location = world.Overworld
		s.Player.MoveTo(entrance.X, entrance.Y)
		s.endTurn()
		return true
	}

	prev := s.Location
	prev.Level--
	return s.arrive(prev, world.TileStairsDown)
}

// arrive moves the player onto the first tile of kind on the target level.
func (s *Session) arrive(loc world.Location, kind world.Tile) bool {
	m := s.World.MapAt(loc)
	if m == nil {
		return false
	}
	p, ok := m.FindTile(kind)
	if !ok {
		p = m.FindSpawn()
	}
	s.Location = loc
	s.Player.MoveTo(p.X, p.Y)
	s.endTurn()
	return true
}

// Destination returns the nearest remembered way onward: a seen dungeon
// entrance on the overworld, or seen stairs down inside a dungeon.
func (s *Session) Destination() (world.Point, bool) {
	m := s.Map()
	pos := s.Position()

	var candidates []world.Point
	if s.Location.InDungeon {
		if p, ok := m.FindTile(world.TileStairsDown); ok {
			candidates = append(candidates, p)
		}
	} else {
		candidates = s.World.Entrances
	}

	best, found := world.Point{}, false
	bestDist := 0
	for _, c := range candidates {
		if c == pos || m.Visibility(c.X, c.Y) == world.VisibilityHidden {
			continue
		}
		d := distanceSq(pos, c)
		if !found || d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}

// StepToward moves one step along the shortest path to goal.
func (s *Session) StepToward(goal world.Point) bool {
	path := s.Map().FindPath(s.Position(), goal)
	if len(path) < 2 {
		return false
	}
	next := path[1]
	return s.TryMove(next.X-s.Player.X, next.Y-s.Player.Y)
}

// InSight reports whether p is within the sight radius with nothing
// opaque in between.
func (s *Session) InSight(p world.Point) bool {
	r := s.Player.SightRadius
	if distanceSq(s.Position(), p) > r*r {
		return false
	}
	return s.Map().HasLineOfSight(s.Player.X, s.Player.Y, p.X, p.Y)
}

// EntrancesInSight lists the dungeon entrances the player can see from
// the overworld.
func (s *Session) EntrancesInSight() []world.Point {
	if s.Location.InDungeon {
		return nil
	}
	var out []world.Point
	for _, e := range s.World.Entrances {
		if s.InSight(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Session) endTurn() {
	s.turn++
	s.refreshFOV()
}

func (s *Session) refreshFOV() {
	m := s.Map()
	m.AgeVisibility()
	m.ComputeFOV(s.Player.X, s.Player.Y, s.Player.SightRadius)
}

func distanceSq(a, b world.Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}
