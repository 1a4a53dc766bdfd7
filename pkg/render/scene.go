// pkg/render/scene.go
package render

import (
	"image/color"
	"sort"

	"go-shooting-gallery/internal/entity"
)

// Sprite is a filled rectangle in screen space: origin at the top-left corner, Y pointing down.
type Sprite struct {
	X, Y          float64
	Width, Height float64
	Z             float64
	Color         color.RGBA
}

// WorldToScreen maps a world point (origin at the center of the field, Y up)
// to screen space for a screen of the given size.
func WorldToScreen(x, y, screenW, screenH float64) (float64, float64) {
	return screenW*0.5 + x, screenH*0.5 - y
}

// Collect builds the sprites of every visible entity, ordered back to front.
// Entities of equal depth keep spawn order.
func Collect(ecs *entity.ECS, screenW, screenH float64) []Sprite {
	ids := entity.SortedIDs(ecs.Renderables)
	sprites := make([]Sprite, 0, len(ids))
	for _, id := range ids {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		r := ecs.Renderables[id]
		cx, cy := WorldToScreen(pos.X, pos.Y, screenW, screenH)
		sprites = append(sprites, Sprite{
			X:      cx - r.Width*0.5,
			Y:      cy - r.Height*0.5,
			Width:  r.Width,
			Height: r.Height,
			Z:      pos.Z,
			Color:  r.Color,
		})
	}
	sort.SliceStable(sprites, func(i, j int) bool { return sprites[i].Z < sprites[j].Z })
	return sprites
}
