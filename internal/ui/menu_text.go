// internal/ui/menu_text.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the bitmap font used for every HUD text.
var DefaultFace font.Face = basicfont.Face7x13

// MenuText draws centered lines of text, one below the other.
type MenuText struct {
	Face  font.Face
	Color color.RGBA
}

func NewMenuText(textColor color.RGBA) *MenuText {
	return &MenuText{Face: DefaultFace, Color: textColor}
}

// Draw centers the block of lines on the screen. Lines are separated by '\n'.
func (m *MenuText) Draw(screen *ebiten.Image, body string) {
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	lineHeight := m.Face.Metrics().Height.Ceil()

	b := screen.Bounds()
	y := (b.Dy()-lineHeight*len(lines))/2 + m.Face.Metrics().Ascent.Ceil()
	for _, line := range lines {
		width := font.MeasureString(m.Face, line).Ceil()
		text.Draw(screen, line, m.Face, (b.Dx()-width)/2, y, m.Color)
		y += lineHeight
	}
}
