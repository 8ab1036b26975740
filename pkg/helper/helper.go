package helper

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// DurationToMinutes formats d as minutes:seconds.milliseconds. It works on
// whole milliseconds so 91.8s prints as 01:31.800 and not 01:31.799.
func DurationToMinutes(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	ms := d.Round(time.Millisecond).Milliseconds()
	return fmt.Sprintf("%02d:%02d.%03d", ms/60000, (ms/1000)%60, ms%1000)
}

func SecondsToDiff(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	diff := fmt.Sprintf("+%.3fs", seconds)
	chars := len(diff)
	if chars < 9 {
		// add spaces to the left
		diff = strings.Repeat(" ", 9-chars) + diff
	}
	return diff
}

// Slug lower-cases name and joins its words with underscores so it can be
// used as part of a file name.
func Slug(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.ToLower(strings.Join(words, "_"))
}
