package expdata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Datafile keywords.
const (
	keyBlock    = "BLOCK"
	keyBlockEnd = "BLOCKEND"
	keyXText    = "XTEXT"
	keyYText    = "YTEXT"
	keyClip     = "CLIP"
	keyXScale   = "XSCALE"
	keyYScale   = "YSCALE"
	keyPlotted  = "PLOTTED"
)

// Parser reads experimental datafiles. The zero value is ready to use.
type Parser struct {
	// Debugf, when set, receives a note for every line that is skipped or
	// that changes block state unexpectedly.
	Debugf func(format string, args ...interface{})
}

// Parse reads r to the end and returns its blocks and axis metadata.
// Only read errors are returned; malformed lines are skipped.
func Parse(r io.Reader, mode Mode) (*Result, error) {
	return Parser{}.Parse(r, mode)
}

// ParseLines parses lines that have already been split.
func ParseLines(lines []string, mode Mode) *Result {
	return Parser{}.ParseLines(lines, mode)
}

// Parse reads r line by line.
func (p Parser) Parse(r io.Reader, mode Mode) (*Result, error) {
	acc := newAccumulator(p.Debugf)

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading datafile line %d: %w", acc.lineNo+1, err)
		}
		if line != "" {
			acc.feed(strings.TrimSuffix(line, "\n"))
		}
		if err != nil {
			break
		}
	}

	return acc.result(mode), nil
}

// ParseLines parses an in-memory sequence of lines.
func (p Parser) ParseLines(lines []string, mode Mode) *Result {
	acc := newAccumulator(p.Debugf)
	for _, line := range lines {
		acc.feed(line)
	}
	return acc.result(mode)
}

// accumulator is the state of a single parse pass.
type accumulator struct {
	debugf func(string, ...interface{})
	lineNo int

	blocks  []Block
	current Block
	open    bool
	clip    bool

	xlab, ylab string
	xlim, ylim []float64
}

func newAccumulator(debugf func(string, ...interface{})) *accumulator {
	return &accumulator{
		debugf: debugf,
		clip:   true,
		xlim:   []float64{},
		ylim:   []float64{},
	}
}

func (a *accumulator) tracef(format string, args ...interface{}) {
	if a.debugf == nil {
		return
	}
	a.debugf("line %d: "+format, append([]interface{}{a.lineNo}, args...)...)
}

func (a *accumulator) feed(line string) {
	a.lineNo++
	fields := strings.Fields(line)

	if len(fields) >= 1 {
		switch fields[0] {
		case keyBlock:
			if a.open {
				a.tracef("BLOCK while a block is open, dropping %d unsealed points", len(a.current))
			}
			a.current = Block{}
			a.open = true
		case keyBlockEnd:
			if !a.open {
				a.tracef("BLOCKEND without an open block ignored")
				break
			}
			a.blocks = append(a.blocks, a.current)
			a.current = nil
			a.open = false
		}
	}

	if len(fields) >= 2 {
		switch {
		case fields[0] == keyXText:
			a.xlab = strings.Join(fields[1:], " ")
		case fields[0] == keyYText:
			a.ylab = strings.Join(fields[1:], " ")
		case fields[0] == keyClip && fields[1] == "ON":
			a.clip = true
		case fields[0] == keyClip && fields[1] == "OFF":
			a.clip = false
		case a.open && a.clip:
			a.collect(fields)
		}
	}

	if len(fields) >= 3 {
		switch fields[0] {
		case keyXScale:
			a.xlim = a.appendRange(a.xlim, fields)
		case keyYScale:
			a.ylim = a.appendRange(a.ylim, fields)
		}
	}
}

func (a *accumulator) collect(fields []string) {
	if fields[1] == keyPlotted {
		a.current = append(a.current, GapPoint())
		return
	}
	x, okX := parseNumber(fields[0])
	y, okY := parseNumber(fields[1])
	if !okX || !okY {
		a.tracef("skipping non-numeric line %q", strings.Join(fields, " "))
		return
	}
	a.current = append(a.current, Point{X: x, Y: y})
}

func (a *accumulator) appendRange(lim []float64, fields []string) []float64 {
	lo, okLo := parseNumber(fields[1])
	hi, okHi := parseNumber(fields[2])
	if !okLo || !okHi {
		a.tracef("skipping %s with non-numeric range %q %q", fields[0], fields[1], fields[2])
		return lim
	}
	return append(lim, lo, hi)
}

func (a *accumulator) result(mode Mode) *Result {
	if a.open {
		a.tracef("end of input with an open block, dropping %d unsealed points", len(a.current))
	}
	res := &Result{
		Mode:   mode,
		XLabel: a.xlab,
		YLabel: a.ylab,
		XLim:   a.xlim,
		YLim:   a.ylim,
	}
	if mode == ModeFlattened {
		res.Blocks = []Block{Flatten(a.blocks)}
	} else {
		res.Blocks = a.blocks
		if res.Blocks == nil {
			res.Blocks = []Block{}
		}
	}
	return res
}

// parseNumber converts a token to a float, reporting whether it is numeric.
// Hex literals are not numbers in datafiles.
func parseNumber(token string) (float64, bool) {
	digits := strings.TrimLeft(token, "+-")
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, false
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		// out-of-range literals still carry ±Inf or ±0
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}
