package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/expplot/internal/chart"
	textutil "github.com/kk-code-lab/expplot/internal/textutil"
)

const legendSwatch = "━━ "

// ChartView paints a chart.Figure onto a terminal screen.
type ChartView struct {
	screen     tcell.Screen
	theme      ColorTheme
	lastLayout Layout
	hasLayout  bool
}

// NewChartView creates a view drawing on screen.
func NewChartView(screen tcell.Screen) *ChartView {
	return &ChartView{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// LastLayout returns the geometry used by the most recent Render, if it drew
// a chart.
func (v *ChartView) LastLayout() (Layout, bool) {
	return v.lastLayout, v.hasLayout
}

// Render draws fig with status on the bottom row and shows the frame.
func (v *ChartView) Render(fig *chart.Figure, status string) {
	v.screen.Clear()
	w, h := v.screen.Size()
	if fig == nil {
		fig = chart.NewFigure()
	}

	xr, yr := fig.XRange(), fig.YRange()
	xTicks := tickValues(xr, tickCount)
	yTicks := tickValues(yr, tickCount)
	yLabels := make([]string, len(yTicks))
	tickWidth := 0
	for i, val := range yTicks {
		yLabels[i] = formatTick(val, yr)
		if lw := textutil.DisplayWidth(yLabels[i]); lw > tickWidth {
			tickWidth = lw
		}
	}

	layout, ok := computeLayout(w, h, tickWidth)
	v.lastLayout, v.hasLayout = layout, ok
	if !ok {
		v.drawTooSmall(w, h)
		v.drawStatusLine(layout, status)
		v.screen.Show()
		return
	}

	v.drawHeader(fig, layout)
	v.drawAxes(layout)
	v.drawYTicks(layout, yTicks, yLabels, yr)
	v.drawXTicks(layout, xTicks, xr)
	v.drawXLabel(fig.XLabel, layout)
	v.drawPlot(fig, layout, xr, yr)
	v.drawStatusLine(layout, status)

	v.screen.Show()
}

func (v *ChartView) drawTooSmall(w, h int) {
	if h <= 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(v.theme.TickFg)
	v.drawTextLine(0, 0, w, fitLabel("terminal too small", w), style)
}

// drawHeader puts the y label on the left of the top row and the legend on
// the right.
func (v *ChartView) drawHeader(fig *chart.Figure, l Layout) {
	base := tcell.StyleDefault.Foreground(v.theme.LabelFg)

	legend := v.legendEntries(fig)
	legendWidth := 0
	for _, e := range legend {
		legendWidth += textutil.DisplayWidth(legendSwatch+e.text) + 1
	}
	if legendWidth > l.Width/2 {
		legend = nil
		legendWidth = 0
	}

	labelWidth := l.Width - legendWidth
	if fig.YLabel != "" && labelWidth > 0 {
		v.drawTextLine(0, 0, labelWidth, fitLabel(fig.YLabel, labelWidth), base.Bold(true))
	}

	x := l.Width - legendWidth
	for _, e := range legend {
		x = v.drawTextLine(x, 0, l.Width-x, legendSwatch, tcell.StyleDefault.Foreground(e.color))
		x = v.drawTextLine(x, 0, l.Width-x, e.text, base)
		x++
	}
}

type legendEntry struct {
	text  string
	color tcell.Color
}

// legendEntries lists labelled series once per distinct label, in the color
// of the first series carrying it.
func (v *ChartView) legendEntries(fig *chart.Figure) []legendEntry {
	var entries []legendEntry
	seen := make(map[string]bool)
	for i, s := range fig.Series {
		if s.Style.Label == "" || seen[s.Style.Label] {
			continue
		}
		seen[s.Style.Label] = true
		entries = append(entries, legendEntry{
			text:  textutil.SanitizeTerminalText(s.Style.Label),
			color: v.theme.seriesColor(i, s.Style.Color),
		})
	}
	return entries
}

func (v *ChartView) drawAxes(l Layout) {
	style := tcell.StyleDefault.Foreground(v.theme.AxisFg)
	for y := l.PlotTop; y < l.AxisRow; y++ {
		v.screen.SetContent(l.AxisCol, y, '│', nil, style)
	}
	v.screen.SetContent(l.AxisCol, l.AxisRow, '└', nil, style)
	for x := l.PlotLeft; x < l.PlotLeft+l.PlotCols; x++ {
		v.screen.SetContent(x, l.AxisRow, '─', nil, style)
	}
}

func (v *ChartView) drawYTicks(l Layout, values []float64, labels []string, yr chart.Range) {
	axis := tcell.StyleDefault.Foreground(v.theme.AxisFg)
	text := tcell.StyleDefault.Foreground(v.theme.TickFg)
	pixH := l.PlotRows * brailleDotsY
	for i, val := range values {
		frac := (val - yr.Lo) / yr.Span()
		py := int(math.Round(frac * float64(pixH-1)))
		row := l.PlotTop + l.PlotRows - 1 - py/brailleDotsY
		if row < l.PlotTop || row >= l.AxisRow {
			continue
		}
		v.screen.SetContent(l.AxisCol, row, '┤', nil, axis)
		label := textutil.TruncateToWidth(labels[i], l.AxisCol)
		start := l.AxisCol - textutil.DisplayWidth(label)
		v.drawTextLine(start, row, l.AxisCol-start, label, text)
	}
}

func (v *ChartView) drawXTicks(l Layout, values []float64, xr chart.Range) {
	axis := tcell.StyleDefault.Foreground(v.theme.AxisFg)
	text := tcell.StyleDefault.Foreground(v.theme.TickFg)
	pixW := l.PlotCols * brailleDotsX
	nextFree := 0
	for _, val := range values {
		frac := (val - xr.Lo) / xr.Span()
		px := int(math.Round(frac * float64(pixW-1)))
		col := l.PlotLeft + px/brailleDotsX
		if col < l.PlotLeft || col >= l.PlotLeft+l.PlotCols {
			continue
		}
		v.screen.SetContent(col, l.AxisRow, '┬', nil, axis)

		label := formatTick(val, xr)
		lw := textutil.DisplayWidth(label)
		start := col - lw/2
		if start+lw > l.Width {
			start = l.Width - lw
		}
		if start < nextFree {
			continue
		}
		v.drawTextLine(start, l.TickRow, lw, label, text)
		nextFree = start + lw + 1
	}
}

func (v *ChartView) drawXLabel(label string, l Layout) {
	if label == "" {
		return
	}
	avail := l.PlotCols
	text := fitLabel(label, avail)
	start := l.PlotLeft + (avail-textutil.DisplayWidth(text))/2
	v.drawTextLine(start, l.XLabelRow, avail, text, tcell.StyleDefault.Foreground(v.theme.LabelFg).Bold(true))
}

func (v *ChartView) drawPlot(fig *chart.Figure, l Layout, xr, yr chart.Range) {
	grid := newBrailleGrid(l.PlotCols, l.PlotRows)
	pixW := float64(grid.pixelWidth() - 1)
	pixH := float64(grid.pixelHeight() - 1)

	project := func(x, y float64) (float64, float64, bool) {
		px := (x - xr.Lo) / xr.Span() * pixW
		py := (y - yr.Lo) / yr.Span() * pixH
		if !finite(px) || !finite(py) {
			return 0, 0, false
		}
		return px, py, true
	}

	for si, s := range fig.Series {
		havePrev := false
		var prevX, prevY float64
		for i := range s.XS {
			px, py, ok := project(s.XS[i], s.YS[i])
			if !ok {
				havePrev = false
				continue
			}
			if havePrev {
				grid.line(prevX, prevY, px, py, si)
			} else {
				grid.line(px, py, px, py, si)
			}
			if s.Style.Marker != 0 {
				grid.mark(int(math.Round(px)), int(math.Round(py)), si, s.Style.Marker)
			}
			prevX, prevY, havePrev = px, py, true
		}
	}

	for row := 0; row < grid.rows; row++ {
		for col := 0; col < grid.cols; col++ {
			ch, si, drawn := grid.cell(col, row)
			if !drawn {
				continue
			}
			color := v.theme.seriesColor(si, fig.Series[si].Style.Color)
			v.screen.SetContent(l.PlotLeft+col, l.PlotTop+row, ch, nil, tcell.StyleDefault.Foreground(color))
		}
	}
}

func (v *ChartView) drawStatusLine(l Layout, status string) {
	if l.StatusRow < 0 {
		return
	}
	style := tcell.StyleDefault.Background(v.theme.FooterBg).Foreground(v.theme.FooterFg)
	end := v.drawTextLine(0, l.StatusRow, l.Width, fitLabel(status, l.Width), style)
	v.fillRow(end, l.Width, l.StatusRow, style)
}

func finite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}
