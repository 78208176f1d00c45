package expdata

import "math"

// Mode selects the shape of a parse result.
type Mode int

const (
	// ModeFlattened joins every block into one series, with a gap after each.
	ModeFlattened Mode = iota
	// ModePerBlock keeps one series per BLOCK ... BLOCKEND run.
	ModePerBlock
)

func (m Mode) String() string {
	if m == ModePerBlock {
		return "per-block"
	}
	return "flattened"
}

// Point is one coordinate pair. A Gap point breaks the drawn line; its X and
// Y carry no value.
type Point struct {
	X, Y float64
	Gap  bool
}

// GapPoint returns the line-break sentinel.
func GapPoint() Point {
	return Point{Gap: true}
}

// Block is an ordered run of points.
type Block []Point

// XS returns the x coordinates with NaN at gaps.
func (b Block) XS() []float64 {
	xs := make([]float64, len(b))
	for i, p := range b {
		if p.Gap {
			xs[i] = math.NaN()
			continue
		}
		xs[i] = p.X
	}
	return xs
}

// YS returns the y coordinates with NaN at gaps.
func (b Block) YS() []float64 {
	ys := make([]float64, len(b))
	for i, p := range b {
		if p.Gap {
			ys[i] = math.NaN()
			continue
		}
		ys[i] = p.Y
	}
	return ys
}

// Result is everything read from one datafile.
type Result struct {
	Mode Mode
	// Blocks holds one entry per sealed block, or a single flattened
	// series in ModeFlattened.
	Blocks []Block
	XLabel string
	YLabel string
	// XLim and YLim collect two values per XSCALE/YSCALE line.
	XLim []float64
	YLim []float64
}

// Series returns the flattened series regardless of the result's mode.
func (r *Result) Series() Block {
	if r == nil || len(r.Blocks) == 0 {
		return Block{}
	}
	if r.Mode == ModeFlattened {
		return r.Blocks[0]
	}
	return Flatten(r.Blocks)
}

// WithMode returns the result reshaped to mode. A flattened result cannot be
// split back into blocks and is returned as is.
func (r *Result) WithMode(mode Mode) *Result {
	if r == nil || r.Mode == mode || r.Mode == ModeFlattened {
		return r
	}
	out := *r
	out.Mode = ModeFlattened
	out.Blocks = []Block{Flatten(r.Blocks)}
	return &out
}
