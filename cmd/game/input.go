package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-shooting-gallery/internal/input"
)

var bindings = map[input.Action][]ebiten.Key{
	input.MoveLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.MoveRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	input.Fire:      {ebiten.KeySpace},
	input.Start:     {ebiten.KeySpace},
}

// keyboard reads the ebiten key state of the current frame.
type keyboard struct{}

func (keyboard) Pressed(a input.Action) bool {
	for _, k := range bindings[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (keyboard) JustReleased(a input.Action) bool {
	for _, k := range bindings[a] {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}
