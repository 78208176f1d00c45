package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines chart colors.
type ColorTheme struct {
	Background tcell.Color
	Foreground tcell.Color
	AxisFg     tcell.Color
	TickFg     tcell.Color
	LabelFg    tcell.Color
	FooterBg   tcell.Color
	FooterFg   tcell.Color
	// Series colors are used in order when a style names no color.
	Series []tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		AxisFg:     tcell.Color245,
		TickFg:     tcell.Color250,
		LabelFg:    tcell.ColorDefault,
		FooterBg:   tcell.Color236,
		FooterFg:   tcell.Color252,
		Series: []tcell.Color{
			tcell.Color33,  // blue
			tcell.Color208, // orange
			tcell.Color34,  // green
			tcell.Color160, // red
			tcell.Color135, // purple
			tcell.Color44,  // cyan
		},
	}
}

// seriesColor resolves the color for the i-th series.
func (t ColorTheme) seriesColor(i int, name string) tcell.Color {
	if name != "" {
		if c := tcell.GetColor(name); c != tcell.ColorDefault {
			return c
		}
	}
	if len(t.Series) == 0 {
		return t.Foreground
	}
	return t.Series[i%len(t.Series)]
}
