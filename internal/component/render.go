// component/render.go
package component

import "image/color"

// Renderable — visual parameters handed through to whatever draws the entity.
// The simulation never reads them.
type Renderable struct {
	Color  color.RGBA
	Width  float64
	Height float64
}
