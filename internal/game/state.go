// Package game runs an exploration session over a generated world.
package game

// State represents the current input mode.
type State int

const (
	// StateExplore is the default mode where each key press is one action.
	StateExplore State = iota
	// StateTravel walks toward a known destination one step per frame
	// until it arrives or a key is pressed.
	StateTravel
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateTravel:
		return "travel"
	default:
		return "unknown"
	}
}
