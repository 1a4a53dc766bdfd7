// internal/component/projectile.go
package component

// Bullet — a projectile travelling at a constant velocity (units per second).
type Bullet struct {
	VX, VY float64
}
