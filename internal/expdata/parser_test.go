package expdata

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func pts(xy ...float64) Block {
	b := Block{}
	for i := 0; i+1 < len(xy); i += 2 {
		b = append(b, Point{X: xy[i], Y: xy[i+1]})
	}
	return b
}

func assertBlocks(t *testing.T, got, want []Block) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d blocks, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Fatalf("block %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseLinesCollectsCoordinatePairs(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []Block
	}{
		{
			name:  "numeric pair appended",
			lines: []string{"BLOCK", "1.5 2.5", "BLOCKEND"},
			want:  []Block{pts(1.5, 2.5)},
		},
		{
			name:  "non-numeric line skipped",
			lines: []string{"BLOCK", "abc def", "1 2", "BLOCKEND"},
			want:  []Block{pts(1, 2)},
		},
		{
			name:  "half numeric line skipped",
			lines: []string{"BLOCK", "1.0 x", "x 1.0", "BLOCKEND"},
			want:  []Block{{}},
		},
		{
			name:  "extra columns ignored",
			lines: []string{"BLOCK", "1 2 3 4", "BLOCKEND"},
			want:  []Block{pts(1, 2)},
		},
		{
			name:  "tabs and surrounding whitespace",
			lines: []string{"  BLOCK\t", "\t3.0\t  4.0  \r", "BLOCKEND \n"},
			want:  []Block{pts(3, 4)},
		},
		{
			name:  "exponent notation",
			lines: []string{"BLOCK", "1.2E+03 -4.5e-2", "BLOCKEND"},
			want:  []Block{pts(1200, -0.045)},
		},
		{
			name:  "plotted columns line becomes gap",
			lines: []string{"BLOCK", "1 2", "$ PLOTTED COLUMNS ARE X Y", "3 4", "BLOCKEND"},
			want:  []Block{{{X: 1, Y: 2}, GapPoint(), {X: 3, Y: 4}}},
		},
		{
			name:  "pairs outside a block ignored",
			lines: []string{"1 2", "BLOCK", "3 4", "BLOCKEND", "5 6"},
			want:  []Block{pts(3, 4)},
		},
		{
			name:  "single token lines ignored",
			lines: []string{"BLOCK", "7", "", "BLOCKEND"},
			want:  []Block{{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ParseLines(tt.lines, ModePerBlock)
			assertBlocks(t, res.Blocks, tt.want)
		})
	}
}

func TestParseLinesClipToggle(t *testing.T) {
	res := ParseLines([]string{
		"BLOCK",
		"CLIP OFF",
		"1.0 2.0",
		"CLIP ON",
		"3.0 4.0",
		"BLOCKEND",
	}, ModePerBlock)
	assertBlocks(t, res.Blocks, []Block{pts(3, 4)})
}

func TestParseLinesClipPersistsAcrossBlocks(t *testing.T) {
	res := ParseLines([]string{
		"BLOCK", "1 1", "CLIP OFF", "2 2", "BLOCKEND",
		"BLOCK", "3 3", "$ PLOTTED COLUMNS", "BLOCKEND",
		"CLIP ON",
		"BLOCK", "4 4", "BLOCKEND",
	}, ModePerBlock)
	assertBlocks(t, res.Blocks, []Block{pts(1, 1), {}, pts(4, 4)})
}

func TestParseLinesScales(t *testing.T) {
	res := ParseLines([]string{"XSCALE 0 100", "YSCALE -5 5"}, ModeFlattened)
	if !reflect.DeepEqual(res.XLim, []float64{0, 100}) {
		t.Fatalf("xlim = %v", res.XLim)
	}
	if !reflect.DeepEqual(res.YLim, []float64{-5, 5}) {
		t.Fatalf("ylim = %v", res.YLim)
	}
}

func TestParseLinesRepeatedScaleAccumulates(t *testing.T) {
	res := ParseLines([]string{"XSCALE 0 1", "XSCALE 2 3", "YSCALE a 1"}, ModeFlattened)
	if !reflect.DeepEqual(res.XLim, []float64{0, 1, 2, 3}) {
		t.Fatalf("xlim = %v", res.XLim)
	}
	if len(res.YLim) != 0 {
		t.Fatalf("non-numeric YSCALE should be skipped, got %v", res.YLim)
	}
}

func TestParseLinesLabelsLastWins(t *testing.T) {
	res := ParseLines([]string{
		"XTEXT first",
		"XTEXT   Temperature \t (K)",
		"YTEXT Gibbs energy",
		"XTEXT",
	}, ModeFlattened)
	if res.XLabel != "Temperature (K)" {
		t.Fatalf("xlabel = %q", res.XLabel)
	}
	if res.YLabel != "Gibbs energy" {
		t.Fatalf("ylabel = %q", res.YLabel)
	}
}

func TestParseLinesDefaults(t *testing.T) {
	res := ParseLines(nil, ModePerBlock)
	if res.XLabel != "" || res.YLabel != "" {
		t.Fatalf("expected empty labels, got %q %q", res.XLabel, res.YLabel)
	}
	if res.XLim == nil || res.YLim == nil || len(res.XLim) != 0 || len(res.YLim) != 0 {
		t.Fatalf("expected empty non-nil limits, got %v %v", res.XLim, res.YLim)
	}
	if res.Blocks == nil || len(res.Blocks) != 0 {
		t.Fatalf("expected no blocks, got %v", res.Blocks)
	}
}

func TestParseLinesUnbalancedMarkers(t *testing.T) {
	var notes []string
	p := Parser{Debugf: func(format string, args ...interface{}) {
		notes = append(notes, fmt.Sprintf(format, args...))
	}}

	res := p.ParseLines([]string{
		"BLOCKEND",
		"BLOCK", "1 1",
		"BLOCK", "2 2",
		"BLOCKEND",
		"BLOCKEND",
		"BLOCK", "9 9",
	}, ModePerBlock)

	assertBlocks(t, res.Blocks, []Block{pts(2, 2)})
	if len(notes) != 4 {
		t.Fatalf("expected 4 trace notes, got %d: %q", len(notes), notes)
	}
	if !strings.HasPrefix(notes[0], "line 1: BLOCKEND") {
		t.Fatalf("unexpected first note %q", notes[0])
	}
}

func TestParseCountsBlocksInBothModes(t *testing.T) {
	var lines []string
	for i := 0; i < 3; i++ {
		lines = append(lines, "BLOCK", fmt.Sprintf("%d %d", i, i*10), "BLOCKEND")
	}

	perBlock := ParseLines(lines, ModePerBlock)
	if len(perBlock.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(perBlock.Blocks))
	}

	flat := ParseLines(lines, ModeFlattened)
	if len(flat.Blocks) != 1 {
		t.Fatalf("flattened result should hold one series, got %d", len(flat.Blocks))
	}
	gaps := 0
	for _, p := range flat.Blocks[0] {
		if p.Gap {
			gaps++
		}
	}
	if gaps != 3 {
		t.Fatalf("expected 3 gap delimiters, got %d", gaps)
	}
	if !reflect.DeepEqual(flat.Series(), perBlock.Series()) {
		t.Fatalf("Series differs between modes: %v vs %v", flat.Series(), perBlock.Series())
	}
}

func TestParseIsRepeatable(t *testing.T) {
	input := "XTEXT T\nBLOCK\nCLIP OFF\n1 2\nBLOCKEND\nBLOCK\n3 4\nBLOCKEND\n"

	first, err := Parse(strings.NewReader(input), ModePerBlock)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	second, err := Parse(strings.NewReader(input), ModePerBlock)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ:\n%+v\n%+v", first, second)
	}
	// clip state from the first call must not leak into the second
	assertBlocks(t, second.Blocks, []Block{{}, {}})
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestParsePropagatesReadErrors(t *testing.T) {
	sentinel := errors.New("disk on fire")
	_, err := Parse(failingReader{err: sentinel}, ModeFlattened)
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}

func TestParseSurvivesVeryLongLines(t *testing.T) {
	input := "XTEXT T\nBLOCK\n1 2\n$ " + strings.Repeat("x", 2<<20) + "\n3 4\nBLOCKEND"

	res, err := Parse(strings.NewReader(input), ModePerBlock)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	assertBlocks(t, res.Blocks, []Block{pts(1, 2, 3, 4)})
	if res.XLabel != "T" {
		t.Fatalf("xlabel = %q", res.XLabel)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		token string
		want  float64
		ok    bool
	}{
		{"1.5", 1.5, true},
		{"-0", 0, true},
		{"1e3", 1000, true},
		{"abc", 0, false},
		{"1,5", 0, false},
		{"", 0, false},
		{"0x1p4", 0, false},
		{"-0X10", 0, false},
		{"+0x1.8p1", 0, false},
		{"0.5", 0.5, true},
	}
	for _, tt := range tests {
		got, ok := parseNumber(tt.token)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("parseNumber(%q) = (%v, %v), want (%v, %v)", tt.token, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResultWithMode(t *testing.T) {
	lines := []string{"XTEXT T", "BLOCK", "1 2", "BLOCKEND", "BLOCK", "3 4", "BLOCKEND"}
	perBlock := ParseLines(lines, ModePerBlock)

	flat := perBlock.WithMode(ModeFlattened)
	if !reflect.DeepEqual(flat, ParseLines(lines, ModeFlattened)) {
		t.Fatalf("WithMode(flattened) = %+v", flat)
	}
	if len(perBlock.Blocks) != 2 {
		t.Fatalf("WithMode must not modify the receiver")
	}
	if perBlock.WithMode(ModePerBlock) != perBlock {
		t.Fatalf("same mode should return the receiver")
	}
	if flat.WithMode(ModePerBlock) != flat {
		t.Fatalf("flattened results cannot be split and should be returned unchanged")
	}
}
