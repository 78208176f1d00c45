package render

import "testing"

func TestComputeLayoutRegions(t *testing.T) {
	l, ok := computeLayout(80, 24, 5)
	if !ok {
		t.Fatalf("expected a chart on 80x24")
	}
	if l.AxisCol != 5 || l.PlotLeft != 6 || l.PlotCols != 73 {
		t.Fatalf("unexpected horizontal layout %+v", l)
	}
	if l.PlotTop != 1 || l.AxisRow != 20 || l.PlotRows != 19 {
		t.Fatalf("unexpected vertical layout %+v", l)
	}
	if l.TickRow != 21 || l.XLabelRow != 22 || l.StatusRow != 23 {
		t.Fatalf("unexpected footer rows %+v", l)
	}
}

func TestComputeLayoutTooSmall(t *testing.T) {
	if _, ok := computeLayout(10, 24, 3); ok {
		t.Fatalf("expected narrow terminal to be rejected")
	}
	if _, ok := computeLayout(80, 5, 3); ok {
		t.Fatalf("expected short terminal to be rejected")
	}
}

func TestComputeLayoutCapsTickLabelWidth(t *testing.T) {
	l, ok := computeLayout(30, 10, 25)
	if !ok {
		t.Fatalf("expected chart to fit")
	}
	if l.AxisCol != 10 {
		t.Fatalf("tick label width should be capped to a third of the screen, got %d", l.AxisCol)
	}
}
