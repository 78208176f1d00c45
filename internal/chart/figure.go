package chart

import "math"

const autoRangePadding = 0.05

// Series is one recorded DrawSeries call.
type Series struct {
	XS, YS []float64
	Style  Style
}

// Range is an axis interval. Lo may exceed Hi for an inverted axis.
type Range struct {
	Lo, Hi float64
}

// Span returns Hi - Lo.
func (r Range) Span() float64 {
	return r.Hi - r.Lo
}

// Figure is an in-memory Surface. It keeps what was drawn so any backend can
// paint it later.
type Figure struct {
	Series []Series
	XLabel string
	YLabel string

	xlim, ylim       Range
	hasXLim, hasYLim bool
}

// NewFigure returns an empty figure.
func NewFigure() *Figure {
	return &Figure{}
}

func (f *Figure) DrawSeries(xs, ys []float64, style Style) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	f.Series = append(f.Series, Series{
		XS:    append([]float64(nil), xs[:n]...),
		YS:    append([]float64(nil), ys[:n]...),
		Style: style,
	})
}

func (f *Figure) SetXLabel(label string) { f.XLabel = label }

func (f *Figure) SetYLabel(label string) { f.YLabel = label }

func (f *Figure) SetXLim(lo, hi float64) {
	f.xlim = Range{Lo: lo, Hi: hi}
	f.hasXLim = true
}

func (f *Figure) SetYLim(lo, hi float64) {
	f.ylim = Range{Lo: lo, Hi: hi}
	f.hasYLim = true
}

// Clear drops series, labels and limits.
func (f *Figure) Clear() {
	*f = Figure{}
}

// ExplicitLimits reports the limits set through SetXLim / SetYLim.
func (f *Figure) ExplicitLimits() (x Range, hasX bool, y Range, hasY bool) {
	return f.xlim, f.hasXLim, f.ylim, f.hasYLim
}

// DataBounds returns the extent of all finite points. ok is false when no
// series has a drawable point.
func (f *Figure) DataBounds() (x, y Range, ok bool) {
	x = Range{Lo: math.Inf(1), Hi: math.Inf(-1)}
	y = x
	for _, s := range f.Series {
		for i := range s.XS {
			px, py := s.XS[i], s.YS[i]
			if !finite(px) || !finite(py) {
				continue
			}
			ok = true
			x.Lo = math.Min(x.Lo, px)
			x.Hi = math.Max(x.Hi, px)
			y.Lo = math.Min(y.Lo, py)
			y.Hi = math.Max(y.Hi, py)
		}
	}
	if !ok {
		return Range{}, Range{}, false
	}
	return x, y, true
}

// XRange is the x interval to display.
func (f *Figure) XRange() Range {
	if f.hasXLim {
		return widen(f.xlim)
	}
	x, _, ok := f.DataBounds()
	if !ok {
		return Range{Lo: 0, Hi: 1}
	}
	return widen(pad(x))
}

// YRange is the y interval to display.
func (f *Figure) YRange() Range {
	if f.hasYLim {
		return widen(f.ylim)
	}
	_, y, ok := f.DataBounds()
	if !ok {
		return Range{Lo: 0, Hi: 1}
	}
	return widen(pad(y))
}

func pad(r Range) Range {
	d := r.Span() * autoRangePadding
	return Range{Lo: r.Lo - d, Hi: r.Hi + d}
}

// widen turns a degenerate or non-finite interval into a usable one.
func widen(r Range) Range {
	if !finite(r.Lo) || !finite(r.Hi) {
		return Range{Lo: 0, Hi: 1}
	}
	if r.Lo == r.Hi {
		return Range{Lo: r.Lo - 0.5, Hi: r.Hi + 0.5}
	}
	return r
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
