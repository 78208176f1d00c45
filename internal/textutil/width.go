package textutil

import "github.com/mattn/go-runewidth"

const ellipsis = "…"

// DisplayWidth reports the number of terminal columns text occupies.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateToWidth shortens text to at most width columns, marking the cut
// with an ellipsis.
func TruncateToWidth(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width <= runewidth.StringWidth(ellipsis) {
		return ellipsis
	}
	return runewidth.Truncate(text, width, ellipsis)
}
