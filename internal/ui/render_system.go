// internal/ui/render_system.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-shooting-gallery/internal/entity"
	"go-shooting-gallery/pkg/render"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

// Draw fills one rectangle per visible entity, back to front.
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	for _, sp := range render.Collect(s.ecs, float64(b.Dx()), float64(b.Dy())) {
		vector.DrawFilledRect(screen, float32(sp.X), float32(sp.Y), float32(sp.Width), float32(sp.Height), sp.Color, false)
	}
}
