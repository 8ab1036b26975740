package compound

import (
	"testing"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

func TestHexTable(t *testing.T) {
	want := map[string]string{
		"HYPERSOFT":    "#F596C8",
		"ULTRASOFT":    "#A020F0",
		"SUPERSOFT":    "#FF0000",
		"SOFT":         "#FF3333",
		"MEDIUM":       "#FFCC33",
		"HARD":         "#FFFFFF",
		"INTERMEDIATE": "#39B54A",
		"WET":          "#0090FF",
	}
	for name, hex := range want {
		if got := Hex(name); got != hex {
			t.Errorf("Hex(%q) = %q, want %q", name, got, hex)
		}
	}
}

func TestHexFallback(t *testing.T) {
	for _, name := range []string{"SUPERHARD", "UNKNOWN", "soft", ""} {
		if got := Hex(name); got != "purple" {
			t.Errorf("Hex(%q) = %q, want purple", name, got)
		}
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		name string
		want drawing.Color
	}{
		{"SOFT", drawing.Color{R: 0xff, G: 0x33, B: 0x33, A: 0xff}},
		{"MEDIUM", drawing.Color{R: 0xff, G: 0xcc, B: 0x33, A: 0xff}},
		{"HARD", drawing.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"WET", drawing.Color{R: 0x00, G: 0x90, B: 0xff, A: 0xff}},
		{"SUPERHARD", drawing.Color{R: 0x80, G: 0x00, B: 0x80, A: 0xff}},
	}
	for _, tt := range tests {
		if got := Color(tt.name); got != tt.want {
			t.Errorf("Color(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}
