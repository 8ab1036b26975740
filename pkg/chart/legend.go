package chart

import (
	gochart "github.com/wcharczuk/go-chart/v2"
)

const (
	legendFontSize = 9.0
	legendMargin   = 10
	legendPadding  = 6
	legendSpacing  = 4
)

// legend draws a titled box in the upper right corner of the plot with one
// marker per series. go-chart's own legend has no title and draws line
// samples, which do not fit a scatter plot.
func legend(title string, series []Series) gochart.Renderable {
	return func(r gochart.Renderer, cb gochart.Box, defaults gochart.Style) {
		if len(series) == 0 {
			return
		}
		r.SetFont(defaults.GetFont())
		r.SetFontSize(legendFontSize)
		r.SetFontColor(textColor)

		markerSpace := int(dotWidth*2) + legendPadding
		titleBox := r.MeasureText(title)
		width := titleBox.Width()
		lineHeight := titleBox.Height()
		for _, s := range series {
			tb := r.MeasureText(s.Compound)
			width = max(width, tb.Width()+markerSpace)
			lineHeight = max(lineHeight, tb.Height())
		}

		right := cb.Right - legendMargin
		left := right - width - 2*legendPadding
		top := cb.Top + legendMargin
		bottom := top + 2*legendPadding + (len(series)+1)*lineHeight + len(series)*legendSpacing

		r.SetFillColor(plotBackground)
		r.SetStrokeColor(axisColor)
		r.SetStrokeWidth(1)
		r.MoveTo(left, top)
		r.LineTo(right, top)
		r.LineTo(right, bottom)
		r.LineTo(left, bottom)
		r.LineTo(left, top)
		r.FillStroke()

		y := top + legendPadding + lineHeight
		r.SetFontColor(textColor)
		r.Text(title, left+legendPadding+(width-titleBox.Width())/2, y)

		for _, s := range series {
			y += lineHeight + legendSpacing
			r.SetFillColor(s.Color)
			r.SetStrokeColor(s.Color)
			r.Circle(dotWidth, left+legendPadding+int(dotWidth), y-lineHeight/2)
			r.FillStroke()

			r.SetFontColor(textColor)
			r.Text(s.Compound, left+legendPadding+markerSpace, y)
		}
	}
}
