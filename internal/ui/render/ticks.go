package render

import (
	"math"
	"strconv"

	"github.com/kk-code-lab/expplot/internal/chart"
)

const tickCount = 5

// tickValues returns evenly spaced values from r.Lo to r.Hi inclusive.
func tickValues(r chart.Range, n int) []float64 {
	if n < 2 {
		return []float64{r.Lo}
	}
	values := make([]float64, n)
	step := r.Span() / float64(n-1)
	for i := range values {
		values[i] = r.Lo + step*float64(i)
	}
	values[n-1] = r.Hi
	return values
}

// formatTick renders v compactly; values within rounding noise of zero
// print as 0.
func formatTick(v float64, r chart.Range) string {
	if math.Abs(v) < math.Abs(r.Span())*1e-9 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}
