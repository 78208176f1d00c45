package render

import "math"

const (
	brailleBase    = 0x2800
	brailleDotsX   = 2
	brailleDotsY   = 4
	noSeriesMarker = -1
)

// dot bit for sub-cell column x (0..1) and row y (0..3), top to bottom
var brailleBits = [brailleDotsX][brailleDotsY]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// brailleGrid is a plot area in sub-cell resolution. Pixel (0,0) is the
// bottom-left dot.
type brailleGrid struct {
	cols, rows int
	bits       []uint8
	series     []int
	markers    []rune
}

func newBrailleGrid(cols, rows int) *brailleGrid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	g := &brailleGrid{
		cols:    cols,
		rows:    rows,
		bits:    make([]uint8, cols*rows),
		series:  make([]int, cols*rows),
		markers: make([]rune, cols*rows),
	}
	for i := range g.series {
		g.series[i] = noSeriesMarker
	}
	return g
}

func (g *brailleGrid) pixelWidth() int  { return g.cols * brailleDotsX }
func (g *brailleGrid) pixelHeight() int { return g.rows * brailleDotsY }

// cellIndex maps a pixel to its cell, or -1 when outside.
func (g *brailleGrid) cellIndex(px, py int) int {
	if px < 0 || py < 0 || px >= g.pixelWidth() || py >= g.pixelHeight() {
		return -1
	}
	col := px / brailleDotsX
	row := g.rows - 1 - py/brailleDotsY
	return row*g.cols + col
}

func (g *brailleGrid) set(px, py, series int) {
	idx := g.cellIndex(px, py)
	if idx < 0 {
		return
	}
	subY := brailleDotsY - 1 - py%brailleDotsY
	g.bits[idx] |= brailleBits[px%brailleDotsX][subY]
	g.series[idx] = series
}

func (g *brailleGrid) mark(px, py, series int, marker rune) {
	idx := g.cellIndex(px, py)
	if idx < 0 {
		return
	}
	g.markers[idx] = marker
	g.series[idx] = series
}

// cell returns the rune for a cell and the series that last touched it.
func (g *brailleGrid) cell(col, row int) (rune, int, bool) {
	idx := row*g.cols + col
	if m := g.markers[idx]; m != 0 {
		return m, g.series[idx], true
	}
	if g.bits[idx] == 0 {
		return ' ', noSeriesMarker, false
	}
	return rune(brailleBase + int(g.bits[idx])), g.series[idx], true
}

// line draws from (x0,y0) to (x1,y1) in pixel space, clipped to the grid.
func (g *brailleGrid) line(x0, y0, x1, y1 float64, series int) {
	maxX := float64(g.pixelWidth() - 1)
	maxY := float64(g.pixelHeight() - 1)
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, 0, 0, maxX, maxY)
	if !ok {
		return
	}

	ix0, iy0 := int(math.Round(x0)), int(math.Round(y0))
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))

	dx := absInt(ix1 - ix0)
	dy := -absInt(iy1 - iy0)
	sx, sy := 1, 1
	if ix0 > ix1 {
		sx = -1
	}
	if iy0 > iy1 {
		sy = -1
	}
	e := dx + dy
	for {
		g.set(ix0, iy0, series)
		if ix0 == ix1 && iy0 == iy1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ix0 += sx
		}
		if e2 <= dx {
			e += dx
			iy0 += sy
		}
	}
}

// clipSegment is Liang-Barsky against [minX,maxX]x[minY,maxY].
func clipSegment(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	if maxX < minX || maxY < minY {
		return 0, 0, 0, 0, false
	}
	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0
	edges := [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
