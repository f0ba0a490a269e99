package game

import (
	"github.com/leonelquinteros/gotext"

	"github.com/samdwyer/wildrealm/internal/world"
)

// statusLines builds the two HUD rows: where the player is, then the last
// message and turn counter.
func statusLines(s *Session, state State, message string) []string {
	var where string
	if d := s.Dungeon(); d != nil {
		where = gotext.Get("%s, level %d of %d", gotext.Get(d.Biome.Name()), s.Location.Level+1, d.Depth())
	} else {
		where = gotext.Get("Overworld, %s", overworldName(world.OverworldBiomeAt(s.Player.Y, s.Map().Height)))
		if n := len(s.EntrancesInSight()); n > 0 {
			where += " " + gotext.GetN("(%d dungeon in sight)", "(%d dungeons in sight)", n, n)
		}
	}

	status := gotext.Get("Turn %d", s.Turn())
	if state == StateTravel {
		status += " " + gotext.Get("[travelling]")
	}
	if message != "" {
		status = message + "  " + status
	}
	return []string{where, status}
}

func overworldName(b world.OverworldBiome) string {
	if b == world.OverworldJungle {
		return gotext.Get("Jungle")
	}
	return gotext.Get("Temperate Forest")
}
