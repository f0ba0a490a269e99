package gamedata

// StyleDef is the palette for one dungeon style, loaded from JSON. The ID
// matches world.DungeonStyle.String().
type StyleDef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Wall      string `json:"wall"`      // Hex color for walls
	Floor     string `json:"floor"`     // Hex color for floors
	WallGlyph string `json:"wallGlyph"` // Wall character, "#" when empty
}

// WallRune returns the wall glyph as a rune for rendering.
func (s *StyleDef) WallRune() rune {
	if len(s.WallGlyph) == 0 {
		return '#'
	}
	return rune(s.WallGlyph[0])
}

// StylesFile represents the structure of styles.json.
type StylesFile struct {
	Styles []StyleDef `json:"styles"`
}

// LoadStyles loads style definitions from the embedded styles.json file.
func LoadStyles() ([]StyleDef, error) {
	file, err := Load[StylesFile]("styles.json")
	if err != nil {
		return nil, err
	}
	return file.Styles, nil
}
