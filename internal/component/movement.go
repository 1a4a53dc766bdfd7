// internal/component/movement.go
package component

// Vec2 is a plain 2D pair used for velocities, offsets and screen fractions.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Position — world position of an entity. The origin is the center of the play field, +Y is up.
// Z only orders drawing and is never part of a collision test.
type Position struct {
	X, Y, Z float64
}

// XY drops the depth component.
func (p Position) XY() Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}
