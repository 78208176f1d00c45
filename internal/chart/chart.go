package chart

import (
	"math"

	"github.com/kk-code-lab/expplot/internal/expdata"
)

// Style is passed through to every DrawSeries call.
type Style struct {
	// Color is a color name understood by the surface; empty lets the
	// surface pick one per series.
	Color string
	// Marker, when non-zero, is drawn at every data point.
	Marker rune
	// Label is legend text for the series.
	Label string
}

// Surface is what Render needs from a plotting backend. xs and ys are
// parallel; NaN in either marks a break in the line.
type Surface interface {
	DrawSeries(xs, ys []float64, style Style)
	SetXLabel(label string)
	SetYLabel(label string)
	SetXLim(lo, hi float64)
	SetYLim(lo, hi float64)
}

// Render draws res on surface and returns it. A nil surface is replaced by
// a new *Figure owned by the caller.
func Render(res *expdata.Result, surface Surface, style Style) Surface {
	if surface == nil {
		surface = NewFigure()
	}
	if res == nil {
		return surface
	}

	for _, block := range res.Blocks {
		surface.DrawSeries(block.XS(), block.YS(), style)
	}

	surface.SetXLabel(res.XLabel)
	surface.SetYLabel(res.YLabel)
	if lo, hi, ok := limitPair(res.XLim); ok {
		surface.SetXLim(lo, hi)
	}
	if lo, hi, ok := limitPair(res.YLim); ok {
		surface.SetYLim(lo, hi)
	}
	return surface
}

// Plot loads path and renders it, see Render.
func Plot(path string, surface Surface, perBlock bool, style Style) (Surface, error) {
	res, err := expdata.Load(path, perBlock)
	if err != nil {
		return surface, err
	}
	return Render(res, surface, style), nil
}

// limitPair picks the range to apply from accumulated scale values: the last
// complete pair. Fewer than two values leave the axis automatic.
func limitPair(lim []float64) (float64, float64, bool) {
	n := len(lim) - len(lim)%2
	if n < 2 {
		return 0, 0, false
	}
	lo, hi := lim[n-2], lim[n-1]
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, 0, false
	}
	return lo, hi, true
}
