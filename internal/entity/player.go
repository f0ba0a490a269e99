// Package entity provides the explorer that walks the generated world.
package entity

// Player is the explorer. Position is in tiles on whichever map the
// player is currently on.
type Player struct {
	X, Y        int  // Current position on the map
	Symbol      rune // Display symbol
	SightRadius int  // Field-of-view radius in tiles
}

// NewPlayer creates a player at the given position.
func NewPlayer(x, y, sightRadius int) *Player {
	return &Player{
		X:           x,
		Y:           y,
		Symbol:      '@',
		SightRadius: sightRadius,
	}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// MoveTo places the player at an absolute position.
func (p *Player) MoveTo(x, y int) {
	p.X = x
	p.Y = y
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}
