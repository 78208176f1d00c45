package render

const (
	minChartWidth  = 16
	minChartHeight = 7
	// rows below the plot: axis, tick labels, x label, status line
	bottomRows = 4
)

// Layout is the screen geometry of one chart frame.
type Layout struct {
	Width, Height int
	// AxisCol is the column of the y axis; y tick labels sit left of it.
	AxisCol int
	// AxisRow is the row of the x axis.
	AxisRow   int
	PlotLeft  int
	PlotTop   int
	PlotCols  int
	PlotRows  int
	TickRow   int
	XLabelRow int
	StatusRow int
}

// computeLayout fits the plot around y tick labels of the given width.
// ok is false when the screen is too small to draw a chart.
func computeLayout(w, h, tickLabelWidth int) (Layout, bool) {
	if w < minChartWidth || h < minChartHeight {
		return Layout{Width: w, Height: h, StatusRow: h - 1}, false
	}
	if tickLabelWidth < 1 {
		tickLabelWidth = 1
	}
	if maxLabel := w / 3; tickLabelWidth > maxLabel {
		tickLabelWidth = maxLabel
	}

	l := Layout{
		Width:     w,
		Height:    h,
		AxisCol:   tickLabelWidth,
		PlotLeft:  tickLabelWidth + 1,
		PlotTop:   1,
		AxisRow:   h - bottomRows,
		TickRow:   h - 3,
		XLabelRow: h - 2,
		StatusRow: h - 1,
	}
	l.PlotCols = w - l.PlotLeft - 1
	l.PlotRows = l.AxisRow - l.PlotTop
	if l.PlotCols < 4 || l.PlotRows < 2 {
		return l, false
	}
	return l, true
}
