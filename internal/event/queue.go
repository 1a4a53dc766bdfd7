// internal/event/queue.go
package event

import (
	"image/color"

	"go-shooting-gallery/internal/types"
)

// Queue holds messages produced during one tick. Producers push, consumers read Items,
// and the owner clears it before the next tick; nothing carries over.
type Queue[T any] struct {
	items []T
}

func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Items returns the messages in push order. The slice is only valid until Clear.
func (q *Queue[T]) Items() []T {
	return q.items
}

func (q *Queue[T]) Len() int {
	return len(q.items)
}

func (q *Queue[T]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
}

// Collision is an unordered pair of overlapping entities. A is the entity processed later.
type Collision struct {
	A, B types.EntityID
}

// Involves reports whether id is either side of the pair.
func (c Collision) Involves(id types.EntityID) bool {
	return c.A == id || c.B == id
}

// SpawnBullet asks the projectile system for a new bullet.
type SpawnBullet struct {
	VX, VY  float64
	X, Y    float64
	Color   color.RGBA
	Size    float64
	Hostile bool // fired by an enemy
}

// RoundOverSignal carries no data: the wave has no enemies left.
type RoundOverSignal struct{}

// Bus groups the per-tick queues of the simulation.
type Bus struct {
	Collisions Queue[Collision]
	Spawns     Queue[SpawnBullet]
	RoundOver  Queue[RoundOverSignal]
}

func NewBus() *Bus {
	return &Bus{}
}

// Reset discards every message of the previous tick.
func (b *Bus) Reset() {
	b.Collisions.Clear()
	b.Spawns.Clear()
	b.RoundOver.Clear()
}
