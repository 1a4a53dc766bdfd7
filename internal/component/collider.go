// internal/component/collider.go
package component

// Collider — axis-aligned box described by its half extents around the owner's position.
// Read-only after spawn.
type Collider struct {
	HalfW, HalfH float64
}

// NewCollider builds a collider from a full width/height. Negative sizes are folded to zero
// so the half extents stay non-negative.
func NewCollider(width, height float64) *Collider {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Collider{HalfW: width * 0.5, HalfH: height * 0.5}
}

// Bounds returns the world-space min and max corners for a collider at pos.
func (c Collider) Bounds(pos Position) (minX, minY, maxX, maxY float64) {
	return pos.X - c.HalfW, pos.Y - c.HalfH, pos.X + c.HalfW, pos.Y + c.HalfH
}
