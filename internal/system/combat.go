// internal/system/combat.go
package system

import (
	"go-shooting-gallery/internal/entity"
	"go-shooting-gallery/internal/event"
	"go-shooting-gallery/internal/types"
)

// EnemyDamageSystem destroys enemies that were hit and passes the right to fire along the column.
type EnemyDamageSystem struct {
	ecs             *entity.ECS
	bus             *event.Bus
	eventDispatcher *event.Dispatcher
}

func NewEnemyDamageSystem(ecs *entity.ECS, bus *event.Bus, eventDispatcher *event.Dispatcher) *EnemyDamageSystem {
	return &EnemyDamageSystem{
		ecs:             ecs,
		bus:             bus,
		eventDispatcher: eventDispatcher,
	}
}

// OnCollisions destroys the enemy side of each pair: A when it is an enemy, otherwise B.
func (s *EnemyDamageSystem) OnCollisions() {
	for _, c := range s.bus.Collisions.Items() {
		if s.ecs.IsEnemy(c.A) {
			s.Kill(c.A)
		} else if s.ecs.IsEnemy(c.B) {
			s.Kill(c.B)
		}
	}
}

// Kill releases the neighbours of an enemy and marks it for removal.
// Killing an enemy that is already marked does nothing.
func (s *EnemyDamageSystem) Kill(id types.EntityID) {
	e, ok := s.ecs.Enemy(id)
	if !ok || s.ecs.Doomed(id) {
		return
	}

	// The recorded neighbour always gets to fire.
	if above, ok := s.ecs.Enemy(e.Above); ok {
		above.HoldFire = false
		above.Behind = e.Behind
	}

	// The enemy waiting behind takes over the column if this one was shooting,
	// otherwise it now waits on this one's neighbour.
	if behind, ok := s.ecs.Enemy(e.Behind); ok && !s.ecs.Doomed(e.Behind) {
		behind.Above = e.Above
		if !e.HoldFire {
			behind.HoldFire = false
		}
	}

	s.ecs.Despawn(id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: id})
}
