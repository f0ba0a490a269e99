package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// StyleRegistry holds loaded dungeon palettes with their colors parsed.
type StyleRegistry struct {
	styles map[string]*StyleDef
	walls  map[string]tcell.Color
	floors map[string]tcell.Color
	all    []StyleDef
}

// NewStyleRegistry creates a registry from loaded style definitions. Every
// color must parse.
func NewStyleRegistry(styles []StyleDef) (*StyleRegistry, error) {
	registry := &StyleRegistry{
		styles: make(map[string]*StyleDef, len(styles)),
		walls:  make(map[string]tcell.Color, len(styles)),
		floors: make(map[string]tcell.Color, len(styles)),
		all:    styles,
	}
	for i := range styles {
		s := &styles[i]
		if _, dup := registry.styles[s.ID]; dup {
			return nil, fmt.Errorf("duplicate style %q", s.ID)
		}
		wall, err := ParseHexColor(s.Wall)
		if err != nil {
			return nil, fmt.Errorf("style %q wall: %w", s.ID, err)
		}
		floor, err := ParseHexColor(s.Floor)
		if err != nil {
			return nil, fmt.Errorf("style %q floor: %w", s.ID, err)
		}
		registry.styles[s.ID] = s
		registry.walls[s.ID] = wall
		registry.floors[s.ID] = floor
	}
	return registry, nil
}

// LoadStyleRegistry loads and creates a registry from the embedded styles.json.
func LoadStyleRegistry() (*StyleRegistry, error) {
	styles, err := LoadStyles()
	if err != nil {
		return nil, err
	}
	if len(styles) == 0 {
		return nil, errors.New("no styles loaded from styles.json")
	}
	return NewStyleRegistry(styles)
}

// ByID returns the style definition with the given ID, or nil if not found.
func (r *StyleRegistry) ByID(id string) *StyleDef {
	return r.styles[id]
}

// Colors returns the parsed wall and floor colors of a style.
func (r *StyleRegistry) Colors(id string) (wall, floor tcell.Color, ok bool) {
	if _, ok := r.styles[id]; !ok {
		return tcell.ColorDefault, tcell.ColorDefault, false
	}
	return r.walls[id], r.floors[id], true
}

// All returns all style definitions.
func (r *StyleRegistry) All() []StyleDef {
	return r.all
}
