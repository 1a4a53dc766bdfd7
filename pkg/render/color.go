// pkg/render/color.go
package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Palette holds the colors that are not carried by entities.
type Palette struct {
	Background color.RGBA
	Text       color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// CellColor converts an RGBA color to a terminal color. Alpha is ignored.
func CellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
