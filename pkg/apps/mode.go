package apps

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode is the kind of figure the user asked for.
type Mode int

const (
	ModeSingle Mode = iota + 1
	ModeCompare
)

var ErrInvalidMode = errors.New("Please answer one or two.")

func ParseMode(input string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "one", "1":
		return ModeSingle, nil
	case "two", "2":
		return ModeCompare, nil
	}
	return 0, ErrInvalidMode
}

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeCompare:
		return "compare"
	}
	return "unknown"
}
