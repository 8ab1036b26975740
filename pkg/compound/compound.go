package compound

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	Hypersoft    = "HYPERSOFT"
	Ultrasoft    = "ULTRASOFT"
	Supersoft    = "SUPERSOFT"
	Soft         = "SOFT"
	Medium       = "MEDIUM"
	Hard         = "HARD"
	Intermediate = "INTERMEDIATE"
	Wet          = "WET"

	// Unknown is used for laps the provider could not attach to a stint.
	Unknown = "UNKNOWN"

	// Fallback is the colour name used for any compound missing from the table.
	Fallback = "purple"
)

// Pirelli compound colours.
var pirelliColors = map[string]string{
	Hypersoft:    "#F596C8",
	Ultrasoft:    "#A020F0",
	Supersoft:    "#FF0000",
	Soft:         "#FF3333",
	Medium:       "#FFCC33",
	Hard:         "#FFFFFF",
	Intermediate: "#39B54A",
	Wet:          "#0090FF",
}

var fallbackColor = drawing.Color{R: 0x80, G: 0x00, B: 0x80, A: 0xff}

// Hex returns the colour of the compound as it appears in the Pirelli table,
// or "purple" when the compound is not part of it.
func Hex(name string) string {
	if hex, ok := pirelliColors[name]; ok {
		return hex
	}
	return Fallback
}

// Color returns the drawable colour for the compound.
func Color(name string) drawing.Color {
	hex, ok := pirelliColors[name]
	if !ok {
		return fallbackColor
	}
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
