package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ExpandHex turns a three-digit hex color ("#a70") into its six-digit form
// ("#aa7700"). Other input is returned unchanged.
func ExpandHex(hex string) string {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 3 {
		return hex
	}
	var b strings.Builder
	b.WriteByte('#')
	for i := 0; i < 3; i++ {
		b.WriteByte(digits[i])
		b.WriteByte(digits[i])
	}
	return b.String()
}

// ParseHexColor converts a hex color string ("#FF0000", "FF0000" or the
// short "#F00") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(ExpandHex(hex), "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid red component in %s: %w", hex, err)
	}
	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid green component in %s: %w", hex, err)
	}
	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid blue component in %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}
