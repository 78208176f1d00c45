package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	textutil "github.com/kk-code-lab/expplot/internal/textutil"
)

// drawTextLine writes text from startX on row y, stopping at maxWidth
// columns. Zero-width runes ride along as combining characters. It returns
// the column after the last drawn rune.
func (v *ChartView) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		mainc := runes[i]
		w := runewidth.RuneWidth(mainc)
		if x-startX+w > maxWidth {
			break
		}
		i++

		var combc []rune
		for i < len(runes) && runewidth.RuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		v.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

// fitLabel prepares file-supplied text for a field width columns wide.
func fitLabel(text string, width int) string {
	return textutil.TruncateToWidth(textutil.SanitizeTerminalText(text), width)
}

func (v *ChartView) fillRow(startX, endX, y int, style tcell.Style) {
	for x := startX; x < endX; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
}
