package provider

import (
	"context"

	"f1lapvisualiser/pkg/laps"
)

const SessionRace = "Race"

// Provider is the source of schedules and session timing data.
type Provider interface {
	// EventNames returns the names of the events of a season in calendar order.
	EventNames(ctx context.Context, year int) ([]string, error)
	// LoadSession returns drivers and laps of one session of an event.
	LoadSession(ctx context.Context, year int, event, session string) (*Session, error)
}

type Driver struct {
	Number       int
	Abbreviation string
	FirstName    string
	LastName     string
	Team         string
}

type Session struct {
	Year    int
	Event   string
	Name    string
	Drivers []Driver
	Laps    laps.Laps
}

func (s *Session) DriverCodes() []string {
	codes := make([]string, 0, len(s.Drivers))
	for _, d := range s.Drivers {
		codes = append(codes, d.Abbreviation)
	}
	return codes
}

func (s *Session) Driver(code string) (Driver, bool) {
	for _, d := range s.Drivers {
		if d.Abbreviation == code {
			return d, true
		}
	}
	return Driver{}, false
}
