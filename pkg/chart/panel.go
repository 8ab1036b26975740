package chart

import (
	"fmt"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"f1lapvisualiser/pkg/compound"
	"f1lapvisualiser/pkg/laps"
)

const (
	XAxisLabel  = "Lap Number"
	YAxisLabel  = "Lap Time (seconds)"
	LegendTitle = "Compound"

	// dotWidth is the radius of a lap marker in pixels.
	dotWidth = 3.0
)

// Dark colour scheme so that the white HARD compound stays visible.
var (
	figureBackground = drawing.Color{R: 0x29, G: 0x26, B: 0x25, A: 0xff}
	plotBackground   = drawing.Color{R: 0x1e, G: 0x1c, B: 0x1b, A: 0xff}
	textColor        = drawing.Color{R: 0xf1, G: 0xf1, B: 0xf3, A: 0xff}
	axisColor        = drawing.Color{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// Series holds the laps driven on one compound.
type Series struct {
	Compound   string
	Color      drawing.Color
	LapNumbers []float64
	LapTimes   []float64
}

// Panel is one scatter plot of a driver's race.
type Panel struct {
	Title  string
	Name   string
	Series []Series
}

// Title formats the heading of a panel, e.g. "VER(Verstappen) - Bahrain Grand Prix 2023".
func Title(code, lastName, venue string, year int) string {
	return fmt.Sprintf("%s(%s) - %s %d", code, lastName, venue, year)
}

// NewPanel groups ls by compound, one series per compound present.
func NewPanel(title, name string, ls laps.Laps) Panel {
	p := Panel{Title: title, Name: name}
	for _, c := range ls.Compounds() {
		group := ls.PickCompound(c)
		p.Series = append(p.Series, Series{
			Compound:   c,
			Color:      compound.Color(c),
			LapNumbers: group.LapNumbers(),
			LapTimes:   group.LapSeconds(),
		})
	}
	return p
}

func (p Panel) Empty() bool {
	for _, s := range p.Series {
		if len(s.LapNumbers) > 0 {
			return false
		}
	}
	return true
}

// bounds returns the padded ranges of both axes. Padding keeps single lap
// panels from having a zero width range.
func (p Panel) bounds() (xMin, xMax, yMin, yMax float64) {
	xMin, yMin = math.Inf(1), math.Inf(1)
	xMax, yMax = math.Inf(-1), math.Inf(-1)
	for _, s := range p.Series {
		for i := range s.LapNumbers {
			xMin = math.Min(xMin, s.LapNumbers[i])
			xMax = math.Max(xMax, s.LapNumbers[i])
			yMin = math.Min(yMin, s.LapTimes[i])
			yMax = math.Max(yMax, s.LapTimes[i])
		}
	}
	yPad := math.Max((yMax-yMin)*0.05, 0.5)
	return xMin - 1, xMax + 1, yMin - yPad, yMax + yPad
}

// Chart builds the go-chart definition of the panel.
func (p Panel) Chart(width, height int) gochart.Chart {
	xMin, xMax, yMin, yMax := p.bounds()

	series := make([]gochart.Series, 0, len(p.Series))
	for _, s := range p.Series {
		series = append(series, gochart.ContinuousSeries{
			Name:    s.Compound,
			XValues: s.LapNumbers,
			YValues: s.LapTimes,
			Style: gochart.Style{
				StrokeWidth: gochart.Disabled,
				DotWidth:    dotWidth,
				DotColor:    s.Color,
			},
		})
	}

	axisStyle := gochart.Style{
		FontColor:   textColor,
		StrokeColor: axisColor,
	}
	ch := gochart.Chart{
		Title:      p.Title,
		TitleStyle: gochart.Style{FontColor: textColor, FontSize: 12},
		Width:      width,
		Height:     height,
		Background: gochart.Style{
			FillColor: figureBackground,
			Padding:   gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		Canvas: gochart.Style{FillColor: plotBackground},
		XAxis: gochart.XAxis{
			Name:           XAxisLabel,
			NameStyle:      gochart.Style{FontColor: textColor},
			Style:          axisStyle,
			Range:          &gochart.ContinuousRange{Min: xMin, Max: xMax},
			ValueFormatter: lapFormatter,
		},
		YAxis: gochart.YAxis{
			Name:           YAxisLabel,
			NameStyle:      gochart.Style{FontColor: textColor},
			Style:          axisStyle,
			Range:          &gochart.ContinuousRange{Min: yMin, Max: yMax},
			ValueFormatter: secondsFormatter,
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{legend(LegendTitle, p.Series)}
	return ch
}

func lapFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}

func secondsFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.1f", f)
	}
	return ""
}
