package apps

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"f1lapvisualiser/pkg/helper"
)

const (
	tableCompound = "COMPOUND"
	tableLaps     = "LAPS"
	tableBest     = "BEST"
	tableAvg      = "AVG"
	tableDelta    = "DELTA"
)

// writeSummary prints one row per compound of the race's clean laps.
func writeSummary(w io.Writer, race Race) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(race.Title())
	t.AppendHeader(table.Row{tableCompound, tableLaps, tableBest, tableAvg, tableDelta})
	for _, s := range race.Laps.Summarize() {
		t.AppendRow([]interface{}{
			s.Compound,
			s.Laps,
			helper.DurationToMinutes(s.Best),
			helper.DurationToMinutes(s.Mean),
			helper.SecondsToDiff((s.Mean - s.Best).Seconds()),
		})
	}
	t.Render()
}
