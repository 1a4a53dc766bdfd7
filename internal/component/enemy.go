// internal/component/enemy.go
package component

import "go-shooting-gallery/internal/types"

// Enemy is one member of the formation.
type Enemy struct {
	// Above is the neighbour recorded for this enemy by the row tracking at spawn
	// time: the next enemy placed in the same column. Destroying this enemy clears
	// the neighbour's HoldFire. It is only a lookup key and may be stale.
	Above types.EntityID
	// Behind is the enemy that recorded this one as its Above, i.e. the one waiting
	// for this enemy to leave the column before it may fire. Also a lookup key.
	Behind types.EntityID
	// HoldFire keeps the enemy from advancing its ShootCycle. Only the lowest
	// surviving enemy of a column fires.
	HoldFire bool
}

// ShootCycle counts down to the next shot and restarts from Reset.
type ShootCycle struct {
	Timer float64
	Reset float64
}
