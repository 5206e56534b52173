package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Number gradient endpoints: cool for 1, hot for 8
var (
	numberColorLow  = colorful.Color{R: 0.23, G: 0.51, B: 0.96}
	numberColorHigh = colorful.Color{R: 0.94, G: 0.27, B: 0.27}
)

// GetNumberColor returns the foreground for an adjacency count 1..8
// Values outside the range clamp to the nearest end
func GetNumberColor(value int) tcell.Color {
	value = max(1, min(value, 8))
	t := float64(value-1) / 7.0

	c := numberColorLow.BlendHcl(numberColorHigh, t).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// numberStyles precomputes one style per adjacency count, index 0 unused
func numberStyles() [9]tcell.Style {
	var styles [9]tcell.Style
	for v := 1; v <= 8; v++ {
		styles[v] = tcell.StyleDefault.Foreground(GetNumberColor(v)).Bold(true)
	}
	return styles
}
