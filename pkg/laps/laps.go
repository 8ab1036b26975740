package laps

import (
	"time"
)

// QuickLapThreshold is the provider's definition of a representative lap:
// anything slower than 107% of the fastest lap is discarded.
const QuickLapThreshold = 1.07

type Lap struct {
	Driver   string
	Number   int
	LapTime  time.Duration // zero when no time was recorded
	Compound string
}

func (l Lap) HasTime() bool {
	return l.LapTime > 0
}

// Seconds returns the lap time in fractional seconds.
func (l Lap) Seconds() float64 {
	return l.LapTime.Seconds()
}

type Laps []Lap

func (ls Laps) PickDriver(code string) Laps {
	picked := Laps{}
	for _, lap := range ls {
		if lap.Driver == code {
			picked = append(picked, lap)
		}
	}
	return picked
}

// PickQuickLaps keeps the laps faster than QuickLapThreshold times the
// fastest lap in ls. Laps without a time never qualify.
func (ls Laps) PickQuickLaps() Laps {
	picked := Laps{}
	fastest, ok := ls.Fastest()
	if !ok {
		return picked
	}
	limit := fastest.Seconds() * QuickLapThreshold
	for _, lap := range ls {
		if lap.HasTime() && lap.Seconds() < limit {
			picked = append(picked, lap)
		}
	}
	return picked
}

func (ls Laps) PickTimed() Laps {
	picked := Laps{}
	for _, lap := range ls {
		if lap.HasTime() {
			picked = append(picked, lap)
		}
	}
	return picked
}

// Clean returns the driver's quick laps that have a recorded time, in the
// order they appear in ls.
func (ls Laps) Clean(code string) Laps {
	return ls.PickDriver(code).PickQuickLaps().PickTimed()
}

func (ls Laps) PickCompound(name string) Laps {
	picked := Laps{}
	for _, lap := range ls {
		if lap.Compound == name {
			picked = append(picked, lap)
		}
	}
	return picked
}

// Compounds returns the distinct compounds in order of first appearance.
func (ls Laps) Compounds() []string {
	seen := map[string]bool{}
	compounds := []string{}
	for _, lap := range ls {
		if !seen[lap.Compound] {
			seen[lap.Compound] = true
			compounds = append(compounds, lap.Compound)
		}
	}
	return compounds
}

func (ls Laps) Fastest() (Lap, bool) {
	var fastest Lap
	found := false
	for _, lap := range ls {
		if !lap.HasTime() {
			continue
		}
		if !found || lap.LapTime < fastest.LapTime {
			fastest = lap
			found = true
		}
	}
	return fastest, found
}

func (ls Laps) LapNumbers() []float64 {
	numbers := make([]float64, len(ls))
	for i, lap := range ls {
		numbers[i] = float64(lap.Number)
	}
	return numbers
}

func (ls Laps) LapSeconds() []float64 {
	seconds := make([]float64, len(ls))
	for i, lap := range ls {
		seconds[i] = lap.Seconds()
	}
	return seconds
}

type CompoundSummary struct {
	Compound string
	Laps     int
	Best     time.Duration
	Mean     time.Duration
}

// Summarize aggregates the timed laps of ls per compound, keeping the order
// of Compounds.
func (ls Laps) Summarize() []CompoundSummary {
	timed := ls.PickTimed()
	summaries := []CompoundSummary{}
	for _, name := range timed.Compounds() {
		group := timed.PickCompound(name)
		best, _ := group.Fastest()
		var total time.Duration
		for _, lap := range group {
			total += lap.LapTime
		}
		summaries = append(summaries, CompoundSummary{
			Compound: name,
			Laps:     len(group),
			Best:     best.LapTime,
			Mean:     total / time.Duration(len(group)),
		})
	}
	return summaries
}
