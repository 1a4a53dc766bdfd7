// internal/component/player.go
package component

import "image/color"

// Player holds the ship's movement limits and gun settings.
type Player struct {
	MoveSpeed float64
	// MinPos and MaxPos are fractions of the window size, so the limits follow resizes.
	MinPos Vec2
	MaxPos Vec2

	ShootTimer   float64 // time left until the gun may fire again
	BetweenShots float64

	Muzzle         Vec2 // offset from the ship's position where bullets appear
	BulletVelocity Vec2
	BulletSize     float64
	BulletColor    color.RGBA
}
