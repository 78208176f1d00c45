package expdata

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteTable writes res as whitespace-separated columns. Metadata goes into
// leading '#' comments, each point becomes an "x<TAB>y" row and each gap an
// empty row, which gnuplot and most spreadsheet importers treat as a break.
func WriteTable(w io.Writer, res *Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# mode: %s\n", res.Mode)
	if res.XLabel != "" {
		fmt.Fprintf(bw, "# x: %s\n", res.XLabel)
	}
	if res.YLabel != "" {
		fmt.Fprintf(bw, "# y: %s\n", res.YLabel)
	}
	if len(res.XLim) > 0 {
		fmt.Fprintf(bw, "# xlim: %s\n", formatValues(res.XLim))
	}
	if len(res.YLim) > 0 {
		fmt.Fprintf(bw, "# ylim: %s\n", formatValues(res.YLim))
	}

	for i, block := range res.Blocks {
		if res.Mode == ModePerBlock {
			fmt.Fprintf(bw, "# block %d\n", i+1)
		}
		for _, p := range block {
			if p.Gap {
				bw.WriteByte('\n')
				continue
			}
			bw.WriteString(formatValue(p.X))
			bw.WriteByte('\t')
			bw.WriteString(formatValue(p.Y))
			bw.WriteByte('\n')
		}
		if res.Mode == ModePerBlock {
			bw.WriteByte('\n')
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatValues(vs []float64) string {
	out := make([]byte, 0, len(vs)*8)
	for i, v := range vs {
		if i > 0 {
			out = append(out, ' ')
		}
		out = strconv.AppendFloat(out, v, 'g', -1, 64)
	}
	return string(out)
}
