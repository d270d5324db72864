package paint

import (
	col "image/color"

	"github.com/mazznoer/csscolorparser"
)

// ParseColor resolves a CSS color string, falling back to black when the
// string does not parse.
func ParseColor(color string) col.Color {
	c, err := csscolorparser.Parse(color)
	if err != nil {
		return col.Black
	}
	r, g, b, a := c.RGBA255()
	return col.RGBA{r, g, b, a}
}
