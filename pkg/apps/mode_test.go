package apps

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
		err   error
	}{
		{"one", ModeSingle, nil},
		{"  ONE ", ModeSingle, nil},
		{"1", ModeSingle, nil},
		{"two", ModeCompare, nil},
		{"Two", ModeCompare, nil},
		{"2", ModeCompare, nil},
		{"three", 0, ErrInvalidMode},
		{"", 0, ErrInvalidMode},
		{"one or two", 0, ErrInvalidMode},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if got != tt.want || err != tt.err {
			t.Errorf("ParseMode(%q) = %v, %v; want %v, %v", tt.input, got, err, tt.want, tt.err)
		}
	}
}
