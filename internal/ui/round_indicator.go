// internal/ui/round_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-shooting-gallery/pkg/render"
)

// RoundIndicator отображает номер текущего раунда римскими цифрами.
type RoundIndicator struct {
	X, Y             int
	Face             font.Face
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewRoundIndicator создает новый индикатор раунда.
func NewRoundIndicator(x, y int, face font.Face, textColor color.RGBA) *RoundIndicator {
	return &RoundIndicator{
		X:                x,
		Y:                y,
		Face:             face,
		Color:            textColor,
		OutlineColor:     color.RGBA{0, 0, 0, 255},
		OutlineThickness: 1,
	}
}

// Draw отрисовывает индикатор на экране.
func (i *RoundIndicator) Draw(screen *ebiten.Image, round int) {
	label := render.RoundLabel(round)
	if label == "" {
		return
	}

	// Every tenth round is highlighted.
	textColor := i.Color
	if round%10 == 0 {
		textColor = color.RGBA{255, 0, 0, 255}
	}

	// Центрируем текст
	width := font.MeasureString(i.Face, label).Ceil()
	x := i.X - width/2

	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.Face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.Face, x, i.Y, textColor)
}
