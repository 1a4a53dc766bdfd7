// pkg/render/terminal.go
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// TerminalRenderer draws sprites as colored cells. The play field is scaled to the
// whole screen, so one cell covers several world units.
type TerminalRenderer struct {
	screen  tcell.Screen
	palette Palette
}

func NewTerminalRenderer(screen tcell.Screen, palette Palette) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, palette: palette}
}

// Clear paints the whole screen with the background color.
func (r *TerminalRenderer) Clear() {
	style := tcell.StyleDefault.Background(CellColor(r.palette.Background))
	r.screen.SetStyle(style)
	r.screen.Clear()
}

// Draw paints sprites given in screen space of a fieldW x fieldH field.
// Every sprite covers at least one cell.
func (r *TerminalRenderer) Draw(sprites []Sprite, fieldW, fieldH float64) {
	cols, rows := r.screen.Size()
	if cols == 0 || rows == 0 || fieldW <= 0 || fieldH <= 0 {
		return
	}
	toCol := func(x float64) float64 { return x * float64(cols) / fieldW }
	toRow := func(y float64) float64 { return y * float64(rows) / fieldH }

	for _, s := range sprites {
		style := tcell.StyleDefault.Background(CellColor(s.Color))
		x0 := int(math.Floor(toCol(s.X)))
		y0 := int(math.Floor(toRow(s.Y)))
		x1 := max(int(math.Ceil(toCol(s.X+s.Width))), x0+1)
		y1 := max(int(math.Ceil(toRow(s.Y+s.Height))), y0+1)

		for y := max(y0, 0); y < min(y1, rows); y++ {
			for x := max(x0, 0); x < min(x1, cols); x++ {
				r.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

// Text writes a line of text starting at cell (x, y).
func (r *TerminalRenderer) Text(x, y int, text string) {
	style := tcell.StyleDefault.
		Background(CellColor(r.palette.Background)).
		Foreground(CellColor(r.palette.Text))
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// TextCentered writes a line of text centered on row y.
func (r *TerminalRenderer) TextCentered(y int, text string) {
	cols, _ := r.screen.Size()
	r.Text((cols-len([]rune(text)))/2, y, text)
}

// Show flushes the frame to the terminal.
func (r *TerminalRenderer) Show() {
	r.screen.Show()
}
