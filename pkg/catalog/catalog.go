package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	DefaultFirstSeason = 2018
	DefaultLastSeason  = 2024
)

var (
	ErrYearOutOfRange = errors.New("Sorry out of range, try again.")
	ErrYearNotNumeric = errors.New("That is not a valid year, try again.")
	ErrUnknownVenue   = errors.New("That venue is not a valid venue in the provided year.")
	// ErrVenueNotInYear is the venue retry message of the two race dialogue.
	ErrVenueNotInYear = errors.New("Sorry, this venue is not valid for the selected year.")
	ErrUnknownDriver  = errors.New("Invalid driver code. Try again.")
)

// YearRange is the inclusive range of seasons that can be picked.
type YearRange struct {
	First int
	Last  int
}

func DefaultYears() YearRange {
	return YearRange{First: DefaultFirstSeason, Last: DefaultLastSeason}
}

func (r YearRange) Contains(year int) bool {
	return year >= r.First && year <= r.Last
}

func (r YearRange) ParseYear(input string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrYearNotNumeric
	}
	if !r.Contains(year) {
		return 0, ErrYearOutOfRange
	}
	return year, nil
}

// WriteEvents lists the events of a season numbered from 1.
func WriteEvents(w io.Writer, year int, events []string) {
	fmt.Fprintf(w, "Venues in %d:\n", year)
	for i, event := range events {
		fmt.Fprintf(w, "%d. %s\n", i+1, event)
	}
}

// ResolveVenue matches the full event name regardless of case and returns
// it as spelled in the schedule. Partial names are not accepted.
func ResolveVenue(events []string, input string) (string, bool) {
	input = strings.TrimSpace(input)
	for _, event := range events {
		if strings.EqualFold(event, input) {
			return event, true
		}
	}
	return "", false
}

func WriteDriverCodes(w io.Writer, venue string, year int, codes []string) {
	fmt.Fprintf(w, "Driver codes in %s %d: %s\n", venue, year, strings.Join(codes, ", "))
}

func ResolveDriver(codes []string, input string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(input))
	for _, c := range codes {
		if c == code {
			return c, true
		}
	}
	return "", false
}
