package catalog

import (
	"bytes"
	"testing"
)

func TestYearRangeContains(t *testing.T) {
	r := DefaultYears()
	for y := 1990; y <= 2050; y++ {
		want := y >= 2018 && y <= 2024
		if got := r.Contains(y); got != want {
			t.Errorf("Contains(%d) = %v, want %v", y, got, want)
		}
	}
}

func TestParseYear(t *testing.T) {
	r := DefaultYears()
	tests := []struct {
		in      string
		want    int
		wantErr error
	}{
		{"2023", 2023, nil},
		{" 2018 ", 2018, nil},
		{"2024", 2024, nil},
		{"2017", 0, ErrYearOutOfRange},
		{"2025", 0, ErrYearOutOfRange},
		{"twenty", 0, ErrYearNotNumeric},
		{"", 0, ErrYearNotNumeric},
	}
	for _, tt := range tests {
		got, err := r.ParseYear(tt.in)
		if err != tt.wantErr {
			t.Errorf("ParseYear(%q) err = %v, want %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseYear(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestResolveVenue(t *testing.T) {
	events := []string{"Bahrain Grand Prix", "Abu Dhabi Grand Prix"}
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"abu dhabi grand prix", "Abu Dhabi Grand Prix", true},
		{"  BAHRAIN GRAND PRIX ", "Bahrain Grand Prix", true},
		{"Abu Dhabi", "", false},
		{"Grand Prix", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ResolveVenue(events, tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ResolveVenue(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestResolveDriver(t *testing.T) {
	codes := []string{"VER", "HAM", "LEC"}
	if got, ok := ResolveDriver(codes, "ver"); !ok || got != "VER" {
		t.Errorf("ResolveDriver(ver) = %q, %v", got, ok)
	}
	if _, ok := ResolveDriver(codes, "VET"); ok {
		t.Error("ResolveDriver(VET) should not match")
	}
	if _, ok := ResolveDriver(codes, "VE"); ok {
		t.Error("ResolveDriver(VE) should not match")
	}
}

func TestWriteEvents(t *testing.T) {
	var b bytes.Buffer
	WriteEvents(&b, 2023, []string{"Bahrain Grand Prix", "Saudi Arabian Grand Prix"})
	want := "Venues in 2023:\n1. Bahrain Grand Prix\n2. Saudi Arabian Grand Prix\n"
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}

func TestWriteDriverCodes(t *testing.T) {
	var b bytes.Buffer
	WriteDriverCodes(&b, "Bahrain Grand Prix", 2023, []string{"VER", "PER"})
	want := "Driver codes in Bahrain Grand Prix 2023: VER, PER\n"
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}
